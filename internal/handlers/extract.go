package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"nougat/internal/nougat"
	u "nougat/internal/utils"
)

// StatusResponse is the body of GET /.
type StatusResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	MockMode bool   `json:"mock_mode"`
}

// ExtractResponse is the body of POST /extract.
type ExtractResponse struct {
	LaTeX string `json:"latex"`
}

// ExtractionService bundles configuration and the extractor chosen at startup.
type ExtractionService struct {
	Config    *u.Config
	Extractor nougat.Extractor
}

// NewExtractionService creates a service whose extractor follows cfg's mock mode.
func NewExtractionService(cfg u.Config) *ExtractionService {
	return &ExtractionService{
		Config:    &cfg,
		Extractor: nougat.New(cfg.Extraction.MockMode),
	}
}

// HandleStatus reports service identity and the resolved mock flag.
func (svc *ExtractionService) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(StatusResponse{
		Status:   "ok",
		Service:  u.ServiceName,
		MockMode: svc.Config.Extraction.MockMode,
	})
}

// HandleExtract accepts a multipart upload under "file" and returns LaTeX.
func (svc *ExtractionService) HandleExtract(c *fiber.Ctx) error {
	doc, err := documentFromRequest(c)
	if err != nil {
		return err
	}

	latex, err := svc.Extractor.Extract(c.UserContext(), doc)
	if err != nil {
		u.Error("LaTeX extraction failed", "filename", doc.Filename, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "LaTeX extraction failed")
	}

	u.Info("LaTeX extracted",
		"filename", doc.Filename,
		"size", doc.Size,
		"mock_mode", svc.Config.Extraction.MockMode,
		"request_id", requestID(c),
	)
	return c.JSON(ExtractResponse{LaTeX: latex})
}

// documentFromRequest reads the upload metadata without touching its content.
// A "file" part sent with an empty filename is parsed as a form value, so it is
// accepted from there too. The returned Open func is only valid until the
// handler returns.
func documentFromRequest(c *fiber.Ctx) (nougat.Document, error) {
	if fh, err := c.FormFile("file"); err == nil {
		return nougat.Document{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(fiber.HeaderContentType),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		}, nil
	}

	if form, err := c.MultipartForm(); err == nil {
		if values := form.Value["file"]; len(values) > 0 {
			value := values[0]
			return nougat.Document{
				Size: int64(len(value)),
				Open: func() (io.ReadCloser, error) {
					return io.NopCloser(strings.NewReader(value)), nil
				},
			}, nil
		}
	}

	return nougat.Document{}, fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid upload: multipart field 'file' is required")
}

func requestID(c *fiber.Ctx) string {
	if id := c.Get(fiber.HeaderXRequestID); id != "" {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
