package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/lingosnap/translate-backend/internal/metrics"
	"github.com/lingosnap/translate-backend/internal/models"
)

// ErrEmptyResult marks a model call that succeeded on the wire but produced
// no usable text. The HTTP layer collapses it into the same generic failure
// as provider errors; callers inside the process can still tell them apart
// with errors.Is.
var ErrEmptyResult = errors.New("model returned empty result")

// Model is the generative backend the service translates through.
type Model interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateFromImage(ctx context.Context, prompt, mimeType, imageBase64 string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type TranslateService struct {
	logger *log.Logger
	model  Model
	cache  Cache
}

func NewTranslateService(logger *log.Logger, model Model) *TranslateService {
	return &TranslateService{
		logger: logger,
		model:  model,
	}
}

func (s *TranslateService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// Translate performs one translation: select mode, render the prompt, make a
// single model call, trim the output. An empty result after trimming is a
// failure, never an empty success.
func (s *TranslateService) Translate(ctx context.Context, req *models.TranslateRequest) (*models.TranslateResponse, error) {
	mode := requestMode(req)

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, getCacheKey(mode, req))
		if err != nil {
			s.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			s.logger.Println("served from cache")
			return &models.TranslateResponse{Text: cached}, nil
		}
	}

	start := time.Now()
	raw, err := s.invokeModel(ctx, mode, req)
	if err != nil {
		metrics.TranslationsTotal(mode, "error")
		metrics.TranslationDuration(mode, "error", time.Since(start))
		return nil, err
	}

	translated := strings.TrimSpace(raw)
	if translated == "" {
		metrics.TranslationsTotal(mode, "empty")
		metrics.TranslationDuration(mode, "empty", time.Since(start))
		return nil, ErrEmptyResult
	}

	metrics.TranslationsTotal(mode, "ok")
	metrics.TranslationDuration(mode, "ok", time.Since(start))

	if s.cache != nil {
		if err := s.cache.Set(ctx, getCacheKey(mode, req), translated); err != nil {
			s.logger.Printf("failed to set cache: %v\n", err)
		}
	}
	return &models.TranslateResponse{Text: translated}, nil
}

// getCacheKey hashes mode, target language and payload with a length prefix
// per field, so no pair of distinct requests can concatenate to the same
// bytes.
func getCacheKey(mode string, req *models.TranslateRequest) string {
	payload := req.Text
	if req.HasImage() {
		payload = req.Image
	}

	h := sha256.New()
	for _, field := range []string{mode, req.TargetLang, payload} {
		fmt.Fprintf(h, "%d:", len(field))
		io.WriteString(h, field)
	}
	return hex.EncodeToString(h.Sum(nil))
}
