package models

import "errors"

// Fixed validation messages; the mobile client matches on these verbatim.
var (
	ErrMissingTargetLang = errors.New("Missing targetLang")
	ErrMissingText       = errors.New("Missing text")
)

// TranslateRequest represents request for translate endpoint
type TranslateRequest struct {
	Text       string `json:"text" example:"hello world"`
	Image      string `json:"image" example:"data:image/jpeg;base64,/9j/4AAQ..."`
	TargetLang string `json:"targetLang" validate:"required" example:"zh-CN"`
}

// Validate checks required fields in the order the endpoint rejects them:
// targetLang always, text only when no image is attached. An image request
// never requires text.
func (r TranslateRequest) Validate() error {
	if r.TargetLang == "" {
		return ErrMissingTargetLang
	}
	if r.Image == "" && r.Text == "" {
		return ErrMissingText
	}
	return nil
}

// HasImage reports whether the request should be handled in image mode.
// Image takes priority over text when both are present.
func (r TranslateRequest) HasImage() bool {
	return r.Image != ""
}

type TranslateResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
