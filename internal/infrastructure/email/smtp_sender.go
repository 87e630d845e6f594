package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"visionmatch/pkg/config"
)

var ErrIncompleteConfig = errors.New("SMTP configuration is incomplete")

// SMTPSender delivers plain-text mail through an authenticated relay,
// upgrading to TLS when the server offers STARTTLS.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string

	tlsConfig *tls.Config
	dialer    net.Dialer
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.User,
		password:  cfg.Password,
		from:      cfg.FromEmail,
		tlsConfig: &tls.Config{ServerName: cfg.Host},
		dialer:    net.Dialer{Timeout: 30 * time.Second},
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if s.host == "" || s.username == "" || s.password == "" || s.from == "" {
		return ErrIncompleteConfig
	}

	msg, err := buildMessage(s.from, to, subject, body)
	if err != nil {
		return err
	}

	if err := s.deliver(ctx, to, msg); err != nil {
		return fmt.Errorf("email sending failed: %w", err)
	}
	return nil
}

func (s *SMTPSender) deliver(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(s.tlsConfig); err != nil {
			return err
		}
	}

	if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
		return err
	}
	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func buildMessage(from, to, subject, body string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(body)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
