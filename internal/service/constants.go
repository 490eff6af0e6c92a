package service

import "fmt"

const (
	ModeText     = "text"
	ModeImage    = "image"
	ModeDocument = "document"
)

// The model is framed as a translation engine so it does not wrap results in
// conversational filler. targetLang and the source text are interpolated
// verbatim, with no escaping and no allow-list: the prompt trusts the caller,
// which is a known injection surface carried over from the original contract.
const (
	textPromptTemplate = `You are a professional translation engine.
Translate the following text into %s. Preserve the original meaning.
Do not add explanations. Do not add quotation marks.
Output ONLY the translated text.

Text: %s`

	imagePromptTemplate = `You are a professional translation engine.
Read all text in the provided image and translate it into %s. Preserve the original meaning.
Do not add explanations. Do not add quotation marks.
Output ONLY the translated text.`
)

// textPrompt renders the text-mode instruction. Deterministic: same inputs,
// same bytes.
func textPrompt(targetLang, text string) string {
	return fmt.Sprintf(textPromptTemplate, targetLang, text)
}

// imagePrompt renders the OCR+translate instruction for image mode.
func imagePrompt(targetLang string) string {
	return fmt.Sprintf(imagePromptTemplate, targetLang)
}
