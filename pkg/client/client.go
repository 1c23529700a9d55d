// Package client talks to a running nougat-extraction service.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultTimeout bounds a request when the context carries no deadline.
const DefaultTimeout = 30 * time.Second

// Status mirrors the body of GET /.
type Status struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	MockMode bool   `json:"mock_mode"`
}

// Extraction mirrors the body of POST /extract.
type Extraction struct {
	LaTeX string `json:"latex"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nougat: status %d: %s", e.StatusCode, e.Message)
}

// Client is safe for concurrent use.
type Client struct {
	BaseURL string
	Timeout time.Duration
}

// New returns a client for the service at baseURL, e.g. http://localhost:8000.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: DefaultTimeout,
	}
}

// Status calls GET /.
func (c *Client) Status(ctx context.Context) (Status, error) {
	var out Status
	err := c.do(ctx, fiber.Get(c.BaseURL+"/"), &out)
	return out, err
}

// Extract uploads data as a PDF named filename and returns the LaTeX.
func (c *Client) Extract(ctx context.Context, filename string, data []byte) (string, error) {
	if filename == "" {
		filename = "resume.pdf"
	}
	a := fiber.Post(c.BaseURL + "/extract")
	a.FileData(&fiber.FormFile{Fieldname: "file", Name: filename, Content: data})
	a.MultipartForm(nil)

	var out Extraction
	if err := c.do(ctx, a, &out); err != nil {
		return "", err
	}
	return out.LaTeX, nil
}

// ExtractFile reads path and uploads it.
func (c *Client) ExtractFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return c.Extract(ctx, filepath.Base(path), data)
}

type result struct {
	code int
	body []byte
	errs []error
}

// do sends a and decodes a 2xx JSON body into out. The call returns as soon as
// ctx is done; the in-flight request is still bounded by the agent timeout.
func (c *Client) do(ctx context.Context, a *fiber.Agent, out interface{}) error {
	if err := ctx.Err(); err != nil {
		fiber.ReleaseAgent(a)
		return err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		until := time.Until(dl)
		if until <= 0 {
			fiber.ReleaseAgent(a)
			return context.DeadlineExceeded
		}
		timeout = min(timeout, until)
	}
	a.Timeout(timeout)

	done := make(chan result, 1)
	go func() {
		code, body, errs := a.Bytes()
		done <- result{code: code, body: body, errs: errs}
	}()

	var res result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-done:
	}

	if len(res.errs) > 0 {
		return errors.Join(res.errs...)
	}
	if res.code < 200 || res.code > 299 {
		return newAPIError(res.code, res.body)
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func newAPIError(code int, body []byte) *APIError {
	var env struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		msg = env.Error.Message
	}
	return &APIError{StatusCode: code, Message: msg}
}
