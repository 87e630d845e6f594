package email

import (
	"bufio"
	"context"
	"encoding/base64"
	"io"
	"mime/quotedprintable"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionmatch/pkg/config"
)

// fakeSMTPServer speaks just enough ESMTP for net/smtp: EHLO with AUTH PLAIN,
// MAIL, RCPT, DATA and QUIT. It records the last session.
type fakeSMTPServer struct {
	listener net.Listener

	mu       sync.Mutex
	authLine string
	from     string
	rcpt     string
	data     string
	done     chan struct{}
}

func newFakeSMTPServer(t *testing.T) *fakeSMTPServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeSMTPServer{listener: ln, done: make(chan struct{})}
	go s.serve()
	t.Cleanup(func() { ln.Close() })
	return s
}

func (s *fakeSMTPServer) port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

func (s *fakeSMTPServer) serve() {
	conn, err := s.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	defer close(s.done)

	r := bufio.NewReader(conn)
	write := func(line string) { io.WriteString(conn, line+"\r\n") }

	write("220 localhost ESMTP ready")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		cmd := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			write("250-localhost")
			write("250 AUTH PLAIN")
		case strings.HasPrefix(cmd, "AUTH"):
			s.mu.Lock()
			s.authLine = line
			s.mu.Unlock()
			write("235 2.7.0 Authentication successful")
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			s.mu.Lock()
			s.from = line[len("MAIL FROM:"):]
			s.mu.Unlock()
			write("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			s.mu.Lock()
			s.rcpt = line[len("RCPT TO:"):]
			s.mu.Unlock()
			write("250 OK")
		case cmd == "DATA":
			write("354 End data with <CR><LF>.<CR><LF>")
			var data strings.Builder
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				data.WriteString(l)
			}
			s.mu.Lock()
			s.data = data.String()
			s.mu.Unlock()
			write("250 OK queued")
		case cmd == "QUIT":
			write("221 Bye")
			return
		default:
			write("502 Command not implemented")
		}
	}
}

func TestSMTPSenderSend(t *testing.T) {
	server := newFakeSMTPServer(t)
	sender := NewSMTPSender(config.SMTPConfig{
		Host:      "127.0.0.1",
		Port:      server.port(),
		User:      "mailer",
		Password:  "secret",
		FromEmail: "noreply@visionmatch.test",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := sender.Send(ctx, "client@example.com", "💰 Payment Successful | VisionMatch", "Hello Asha,\nTotal Paid: ₹12,980\n")
	require.NoError(t, err)

	select {
	case <-server.done:
	case <-time.After(5 * time.Second):
		t.Fatal("smtp session did not finish")
	}

	server.mu.Lock()
	defer server.mu.Unlock()

	assert.Equal(t, "<noreply@visionmatch.test>", server.from)
	assert.Equal(t, "<client@example.com>", server.rcpt)

	creds := strings.TrimPrefix(server.authLine, "AUTH PLAIN ")
	decoded, err := base64.StdEncoding.DecodeString(creds)
	require.NoError(t, err)
	assert.Equal(t, "\x00mailer\x00secret", string(decoded))

	headers, body, found := strings.Cut(server.data, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "To: client@example.com")
	assert.Contains(t, headers, "Subject: =?utf-8?q?")
	assert.Contains(t, headers, "Content-Transfer-Encoding: quoted-printable")

	plain, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(body)))
	require.NoError(t, err)
	assert.Contains(t, string(plain), "Total Paid: ₹12,980")
}

func TestSMTPSenderIncompleteConfig(t *testing.T) {
	sender := NewSMTPSender(config.SMTPConfig{Host: "127.0.0.1", Port: 2525})

	err := sender.Send(context.Background(), "client@example.com", "subject", "body")
	assert.ErrorIs(t, err, ErrIncompleteConfig)
}

func TestSMTPSenderUnreachableRelay(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	sender := NewSMTPSender(config.SMTPConfig{
		Host:      "127.0.0.1",
		Port:      port,
		User:      "mailer",
		Password:  "secret",
		FromEmail: "noreply@visionmatch.test",
	})

	err = sender.Send(context.Background(), "client@example.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email sending failed")
}
