// Package langdetect identifies the language of raw input text using a
// statistical trigram classifier, restricted to a configured catalogue of
// supported languages.
package langdetect

import (
	"strings"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"

	"teaching-server/internal/domain"
)

const (
	// Minimum analyzable input length in runes.
	minTextLength = 3

	// Confidence is a detector-success signal, not a calibrated probability:
	// a fixed high value when the classifier returns a determinate result,
	// a fixed low value otherwise.
	highConfidence = 0.8
	lowConfidence  = 0.5
)

// iso3ToCode maps the classifier's ISO 639-3 output onto the supported
// two-letter codes. Anything outside this table resolves to the default.
var iso3ToCode = map[string]string{
	"eng": "en",
	"kan": "kn",
	"hin": "hi",
	"tam": "ta",
	"tel": "te",
	"mal": "ml",
	"mar": "mr",
	"ben": "bn",
	"guj": "gu",
}

// DefaultCatalogue returns the built-in supported-language catalogue.
// Deployments may pass their own catalogue to New instead.
func DefaultCatalogue() []domain.Language {
	return []domain.Language{
		{Code: "en", Name: "English", NativeName: "English"},
		{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
		{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
		{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
		{Code: "te", Name: "Telugu", NativeName: "తెలుగు"},
		{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം"},
		{Code: "mr", Name: "Marathi", NativeName: "मराठी"},
		{Code: "bn", Name: "Bengali", NativeName: "বাংলা"},
		{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી"},
	}
}

// Detector classifies text into one of the supported languages. It is
// stateless apart from the read-only catalogue and safe for concurrent use.
type Detector struct {
	catalogue   []domain.Language
	supported   map[string]struct{}
	defaultCode string
}

// New creates a Detector over the given catalogue. defaultCode is used for
// undetermined or unsupported classifier results and must be present in the
// catalogue.
func New(catalogue []domain.Language, defaultCode string) *Detector {
	supported := make(map[string]struct{}, len(catalogue))
	for _, lang := range catalogue {
		supported[lang.Code] = struct{}{}
	}
	return &Detector{
		catalogue:   catalogue,
		supported:   supported,
		defaultCode: defaultCode,
	}
}

// Detect identifies the language of text. Text shorter than the minimum
// analyzable length, or yielding no determinate classifier result, falls
// back to the default language with the low-confidence value.
func (d *Detector) Detect(text string) domain.Detection {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minTextLength {
		return domain.Detection{Language: d.defaultCode, Confidence: lowConfidence}
	}

	info := whatlanggo.Detect(trimmed)
	if !info.IsReliable() {
		return domain.Detection{Language: d.defaultCode, Confidence: lowConfidence}
	}

	// Determinate result: high confidence even when the concrete language is
	// outside the supported set and the code resolves to the default.
	language := d.defaultCode
	if code, ok := iso3ToCode[whatlanggo.LangToString(info.Lang)]; ok {
		if _, supported := d.supported[code]; supported {
			language = code
		}
	}
	return domain.Detection{Language: language, Confidence: highConfidence}
}

// SupportedLanguages returns the static catalogue. The returned slice is a
// copy; callers may not mutate process-wide configuration.
func (d *Detector) SupportedLanguages() []domain.Language {
	out := make([]domain.Language, len(d.catalogue))
	copy(out, d.catalogue)
	return out
}
