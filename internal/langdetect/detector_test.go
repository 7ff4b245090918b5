package langdetect_test

import (
	"testing"

	"teaching-server/internal/domain"
	"teaching-server/internal/langdetect"

	"github.com/stretchr/testify/assert"
)

func newDetector() *langdetect.Detector {
	return langdetect.New(langdetect.DefaultCatalogue(), "en")
}

func TestDetector_Detect_English(t *testing.T) {
	d := newDetector()

	text := "Photosynthesis is the process by which green plants convert sunlight, water and carbon dioxide into glucose and oxygen."
	detection := d.Detect(text)

	assert.Equal(t, "en", detection.Language)
	assert.Equal(t, 0.8, detection.Confidence)
}

func TestDetector_Detect_Hindi(t *testing.T) {
	d := newDetector()

	text := "प्रकाश संश्लेषण वह प्रक्रिया है जिसके द्वारा पौधे सूर्य के प्रकाश से भोजन बनाते हैं और ऑक्सीजन छोड़ते हैं।"
	detection := d.Detect(text)

	assert.Equal(t, "hi", detection.Language)
	assert.Equal(t, 0.8, detection.Confidence)
}

func TestDetector_Detect_ShortTextFallsBack(t *testing.T) {
	d := newDetector()

	for _, text := range []string{"", "hi", "  a  "} {
		detection := d.Detect(text)
		assert.Equal(t, "en", detection.Language, "text %q", text)
		assert.Equal(t, 0.5, detection.Confidence, "text %q", text)
	}
}

func TestDetector_Detect_UnsupportedLanguageResolvesToDefault(t *testing.T) {
	d := newDetector()

	// Russian is determinate for the classifier but outside the catalogue.
	text := "Фотосинтез — это процесс, посредством которого зелёные растения преобразуют солнечный свет в химическую энергию."
	detection := d.Detect(text)

	assert.Equal(t, "en", detection.Language)
}

func TestDetector_SupportedLanguages(t *testing.T) {
	catalogue := []domain.Language{
		{Code: "en", Name: "English", NativeName: "English"},
		{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
	}
	d := langdetect.New(catalogue, "en")

	langs := d.SupportedLanguages()
	assert.Equal(t, catalogue, langs)

	// The catalogue is read-only configuration; mutating the returned slice
	// must not leak back.
	langs[0].Code = "xx"
	assert.Equal(t, "en", d.SupportedLanguages()[0].Code)
}
