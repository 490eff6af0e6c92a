package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingosnap/translate-backend/internal/models"
)

// The MIME type declared to the model is always JPEG, whatever the client
// actually picked. Stripped PNG/WebP payloads still go out labeled
// image/jpeg; the mobile clients depend on this, so it is not format-sniffed.
const imageMimeType = "image/jpeg"

const (
	dataURIScheme   = "data:"
	base64Separator = ";base64,"
	pdfDataURI      = "data:application/pdf;base64,"
)

// requestMode picks the translation mode for a validated request. An image
// always wins over text; a PDF payload is detected by its data-URI header.
func requestMode(req *models.TranslateRequest) string {
	switch {
	case !req.HasImage():
		return ModeText
	case strings.HasPrefix(req.Image, pdfDataURI):
		return ModeDocument
	default:
		return ModeImage
	}
}

func (s *TranslateService) invokeModel(ctx context.Context, mode string, req *models.TranslateRequest) (string, error) {
	switch mode {
	case ModeText:
		return s.model.GenerateText(ctx, textPrompt(req.TargetLang, req.Text))

	case ModeImage:
		return s.model.GenerateFromImage(ctx, imagePrompt(req.TargetLang), imageMimeType, stripDataURI(req.Image))

	case ModeDocument:
		payload, err := renderPDFPage(stripDataURI(req.Image))
		if err != nil {
			return "", fmt.Errorf("failed to render pdf: %w", err)
		}
		return s.model.GenerateFromImage(ctx, imagePrompt(req.TargetLang), imageMimeType, payload)

	default:
		return "", fmt.Errorf("unsupported mode {%s}", mode)
	}
}

// stripDataURI drops a `data:<mediatype>;base64,` header, keeping only the
// raw base64 payload. Image pickers emit either form; the model API accepts
// only the raw payload. Already-raw input passes through unchanged.
func stripDataURI(payload string) string {
	if !strings.HasPrefix(payload, dataURIScheme) {
		return payload
	}
	if i := strings.Index(payload, base64Separator); i >= 0 {
		return payload[i+len(base64Separator):]
	}
	return payload
}
