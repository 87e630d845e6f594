package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionmatch/internal/adapter/api"
	"visionmatch/internal/adapter/repository/memory"
	"visionmatch/internal/domain/entity"
	ws "visionmatch/internal/infrastructure/websocket"
	"visionmatch/internal/usecase"
)

type stubImageStore struct {
	uploaded int
}

func (s *stubImageStore) UploadReferenceImage(_ context.Context, requestID, _ string, file io.Reader) (string, error) {
	io.Copy(io.Discard, file)
	s.uploaded++
	return "https://storage.googleapis.com/vm/public/requests/" + requestID + "/a.png", nil
}

func seed(t *testing.T, repo *memory.ProjectRequestRepository, id string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entity.ProjectRequest{
		ID: id, ClientID: "client-1", CreatorID: "creator-1", Status: entity.RequestStatusPendingCreator,
	}))
}

func multipartImage(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="ref.png"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadReferenceImage(t *testing.T) {
	requests := memory.NewProjectRequestRepository()
	seed(t, requests, "req_img00001")
	images := &stubImageStore{}
	h := NewProjectRequestHandler(usecase.NewProjectRequestUseCase(requests, memory.NewCreatorRepository(), images), nil)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.POST("/api/projects/request/:id/reference-images", h.UploadReferenceImage)

	body, contentType := multipartImage(t, "image/png", []byte("\x89PNG"))
	req := httptest.NewRequest(http.MethodPost, "/api/projects/request/req_img00001/reference-images", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "public/requests/req_img00001/")
	assert.Equal(t, 1, images.uploaded)

	var created struct {
		Data entity.ReferenceImage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "ref.png", created.Data.Name)
	assert.NotEmpty(t, created.Data.ID)

	stored, err := requests.GetByID(context.Background(), "req_img00001")
	require.NoError(t, err)
	require.Len(t, stored.ReferenceImages, 1)
	assert.Equal(t, created.Data, stored.ReferenceImages[0])

	body, contentType = multipartImage(t, "application/pdf", []byte("%PDF"))
	req = httptest.NewRequest(http.MethodPost, "/api/projects/request/req_img00001/reference-images", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, images.uploaded)
}

func TestCreateRequestRejectsNonScalarDuration(t *testing.T) {
	requests := memory.NewProjectRequestRepository()
	h := NewProjectRequestHandler(usecase.NewProjectRequestUseCase(requests, memory.NewCreatorRepository(), nil), nil)

	e := echo.New()
	e.Validator = api.NewValidator()
	e.POST("/api/projects/request", h.CreateRequest)

	for name, tc := range map[string]struct {
		body string
		code int
	}{
		"number":       {`{"clientId":"c1","creatorId":"k1","duration":4,"packageId":7,"packagePrice":9000}`, http.StatusCreated},
		"string":       {`{"clientId":"c1","creatorId":"k1","duration":"full day","packageId":"pkg-1","packagePrice":"₹9,000"}`, http.StatusCreated},
		"object":       {`{"clientId":"c1","creatorId":"k1","duration":{"hours":4}}`, http.StatusBadRequest},
		"package list": {`{"clientId":"c1","creatorId":"k1","packageId":[1]}`, http.StatusBadRequest},
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/projects/request", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func TestLiveMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := ws.NewManager()
	manager.Start(ctx)

	requests := memory.NewProjectRequestRepository()
	seed(t, requests, "req_live0001")
	requestUseCase := usecase.NewProjectRequestUseCase(requests, memory.NewCreatorRepository(), nil)
	negotiationUseCase := usecase.NewNegotiationUseCase(requests, memory.NewNegotiationMessageRepository(), manager)

	e := echo.New()
	e.GET("/api/projects/:id/messages/live", NewWebSocketHandler(manager, requestUseCase, []string{"*"}).LiveMessages)
	srv := httptest.NewServer(e)
	defer srv.Close()

	base := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, resp, err := gorillaws.DefaultDialer.Dial(base+"/api/projects/req_missing0/messages/live", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	conn, _, err := gorillaws.DefaultDialer.Dial(base+"/api/projects/req_live0001/messages/live", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return manager.Subscribers("req_live0001") == 1 }, 2*time.Second, 10*time.Millisecond)

	offer := 4200.0
	_, err = negotiationUseCase.SendMessage(context.Background(), "req_live0001", usecase.SendMessageInput{
		Sender: entity.SenderCreator, SenderID: "creator-1", Type: entity.MessageTypeOffer, Price: &offer,
	})
	require.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var message entity.NegotiationMessage
	require.NoError(t, json.Unmarshal(payload, &message))
	assert.Equal(t, entity.MessageTypeOffer, message.Type)
	require.NotNil(t, message.Price)
	assert.Equal(t, 4200.0, *message.Price)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://visionmatch.app"})

	allowed := httptest.NewRequest(http.MethodGet, "/", nil)
	allowed.Header.Set("Origin", "https://visionmatch.app")
	assert.True(t, check(allowed))

	denied := httptest.NewRequest(http.MethodGet, "/", nil)
	denied.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(denied))

	assert.True(t, originChecker([]string{"*"})(denied))
}
