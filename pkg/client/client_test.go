package client

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nougat/internal/app"
	"nougat/internal/nougat"
	u "nougat/internal/utils"
)

func startService(t *testing.T, mock bool) *Client {
	t.Helper()
	cfg := u.DefaultConfig()
	cfg.Extraction.MockMode = mock
	srv := app.SetupApp(cfg, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Listener(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	return New("http://" + ln.Addr().String() + "/")
}

func TestClient_StatusAndExtract(t *testing.T) {
	c := startService(t, true)
	ctx := context.Background()

	st, err := c.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, Status{Status: "ok", Service: "nougat-extraction", MockMode: true}, st)

	latex, err := c.Extract(ctx, "resume.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, nougat.MockLaTeX, latex)

	latex, err = c.Extract(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, nougat.MockLaTeX, latex)
}

func TestClient_ExtractFile(t *testing.T) {
	c := startService(t, false)

	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644))

	latex, err := c.ExtractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, nougat.PlaceholderLaTeX, latex)

	_, err = c.ExtractFile(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClient_APIError(t *testing.T) {
	srv := fiber.New()
	srv.Post("/extract", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fiber.Map{"code": 422, "message": "field 'file' is required"},
		})
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Listener(ln) }()
	defer func() { _ = srv.Shutdown() }()

	_, err = New("http://"+ln.Addr().String()).Extract(context.Background(), "x.pdf", nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "field 'file' is required", apiErr.Message)
}

func TestClient_CanceledContext(t *testing.T) {
	c := New("http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Status(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_CancelDuringRequest(t *testing.T) {
	srv := fiber.New()
	srv.Get("/", func(c *fiber.Ctx) error {
		time.Sleep(time.Second)
		return c.JSON(Status{Status: "ok"})
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Listener(ln) }()
	defer func() { _ = srv.Shutdown() }()

	c := New("http://" + ln.Addr().String())
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	start := time.Now()
	_, err = c.Status(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestClient_ExpiredDeadline(t *testing.T) {
	c := startService(t, true)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := c.Extract(ctx, "resume.pdf", []byte("x"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Unreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	c.Timeout = 500 * time.Millisecond

	_, err := c.Extract(context.Background(), "x.pdf", []byte("x"))
	assert.Error(t, err)
}
