package assistantHandler

import (
	"camonk/internal/api/assistant"
	"camonk/internal/middleware"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssistantService struct {
	content string
	chunks  []string
	err     error
}

func (f *fakeAssistantService) MagicWrite(ctx context.Context, req assistant.MagicWriteRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", assistant.ErrTitleRequired
	}
	return f.content, f.err
}

func (f *fakeAssistantService) StreamMagicWrite(ctx context.Context, req assistant.MagicWriteRequest, onChunk func(string) error) error {
	if strings.TrimSpace(req.Title) == "" {
		return assistant.ErrTitleRequired
	}
	for _, c := range f.chunks {
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return f.err
}

func newTestApp(svc *fakeAssistantService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := middleware.New(logger)
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, svc).Start(app)
	return app
}

func postMagicWrite(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/assistant/magic-write", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestMagicWriteEndpoint(t *testing.T) {
	app := newTestApp(&fakeAssistantService{content: "Generated paragraph"})

	status, body := postMagicWrite(t, app, `{"title":"GST basics","description":"filing"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"content":"Generated paragraph"}`, body)
}

func TestMagicWriteEndpointErrors(t *testing.T) {
	app := newTestApp(&fakeAssistantService{err: assistant.ErrGenerationFailed})

	status, body := postMagicWrite(t, app, `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Please enter a title first."}`, body)

	status, body = postMagicWrite(t, app, `{"title":"GST basics"}`)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.JSONEq(t, `{"error":"AI content generation failed. Please check your API key."}`, body)

	status, body = postMagicWrite(t, app, `{"title":"`+strings.Repeat("a", 300)+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "VALIDATION_ERROR")
}

func TestMagicWriteWebSocketRequiresUpgrade(t *testing.T) {
	app := newTestApp(&fakeAssistantService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/assistant/ws", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func dialStream(t *testing.T, svc *fakeAssistantService) *websocket.Conn {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app := newTestApp(svc)
	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/assistant/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func readFrames(t *testing.T, conn *websocket.Conn) []assistant.StreamFrame {
	t.Helper()

	var frames []assistant.StreamFrame
	for {
		var frame assistant.StreamFrame
		require.NoError(t, conn.ReadJSON(&frame))
		frames = append(frames, frame)
		if frame.Done || frame.Error != "" {
			return frames
		}
	}
}

func TestMagicWriteWebSocketStreamsChunks(t *testing.T) {
	conn := dialStream(t, &fakeAssistantService{chunks: []string{"Hello ", "world"}})

	require.NoError(t, conn.WriteJSON(assistant.MagicWriteRequest{Title: "GST basics"}))
	assert.Equal(t, []assistant.StreamFrame{
		{Chunk: "Hello "},
		{Chunk: "world"},
		{Done: true},
	}, readFrames(t, conn))

	require.NoError(t, conn.WriteJSON(assistant.MagicWriteRequest{}))
	assert.Equal(t, []assistant.StreamFrame{
		{Error: "Please enter a title first."},
	}, readFrames(t, conn))
}

func TestMagicWriteWebSocketHidesUnexpectedErrors(t *testing.T) {
	conn := dialStream(t, &fakeAssistantService{chunks: []string{"partial"}, err: errors.New("upstream reset")})

	require.NoError(t, conn.WriteJSON(assistant.MagicWriteRequest{Title: "GST basics"}))
	assert.Equal(t, []assistant.StreamFrame{
		{Chunk: "partial"},
		{Error: "AI content generation failed. Please check your API key."},
	}, readFrames(t, conn))
}
