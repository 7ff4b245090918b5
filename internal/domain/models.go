package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus describes the lifecycle state of an InputRequest.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusProcessing RequestStatus = "processing"
	StatusCompleted  RequestStatus = "completed"
	StatusFailed     RequestStatus = "failed"
)

// DifficultyLevel selects the rendering strategy for explanations.
type DifficultyLevel string

const (
	DifficultyBeginner DifficultyLevel = "beginner"
	DifficultyExam     DifficultyLevel = "exam"
	DifficultyDeep     DifficultyLevel = "deep"
)

// Valid reports whether the level is one of the known rendering strategies.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyExam, DifficultyDeep:
		return true
	}
	return false
}

// InputType describes the kind of user input. Only topic queries exist today.
type InputType string

const InputTypeTopic InputType = "topic"

// Language is one entry of the supported-language catalogue.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

// Detection is the result of language identification on raw input text.
type Detection struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// InputRequest is one user-initiated topic query.
type InputRequest struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	InputText          string          `json:"inputText" db:"input_text"`
	InputLanguage      string          `json:"inputLanguage" db:"input_language"`
	DetectedLanguage   string          `json:"detectedLanguage" db:"detected_language"`
	LanguageConfidence float64         `json:"languageConfidence" db:"language_confidence"`
	InputType          InputType       `json:"inputType" db:"input_type"`
	DifficultyLevel    DifficultyLevel `json:"difficultyLevel" db:"difficulty_level"`
	OutputLanguage     string          `json:"outputLanguage" db:"output_language"`
	Status             RequestStatus   `json:"status" db:"status"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
}

// KeyTerm is a term surfaced by topic analysis together with a short definition.
type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// ExampleType enumerates the canonical example kinds. The three canonical
// types always appear first, in this order, in a generated example list.
type ExampleType string

const (
	ExampleEveryday    ExampleType = "everyday"
	ExampleNumerical   ExampleType = "numerical"
	ExampleApplication ExampleType = "application"
)

// Example is one worked example attached to an explanation.
type Example struct {
	Type    ExampleType `json:"type"`
	Content string      `json:"content"`
}

// Analysis is the structured breakdown of a topic produced by the first
// generation stage. Every list is ordered for presentation.
type Analysis struct {
	CoreConcepts   []string  `json:"coreConcepts"`
	Prerequisites  []string  `json:"prerequisites"`
	KeyTerms       []KeyTerm `json:"keyTerms"`
	Misconceptions []string  `json:"misconceptions"`
	Applications   []string  `json:"applications"`
}

// Explanation is the generated teaching content for one request.
type Explanation struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	RequestID       uuid.UUID       `json:"requestId" db:"request_id"`
	Topic           string          `json:"topic" db:"topic"`
	DifficultyLevel DifficultyLevel `json:"difficultyLevel" db:"difficulty_level"`
	OutputLanguage  string          `json:"outputLanguage" db:"output_language"`
	CoreConcepts    []string        `json:"coreConcepts" db:"core_concepts"`
	Prerequisites   []string        `json:"prerequisites" db:"prerequisites"`
	KeyTerms        []KeyTerm       `json:"keyTerms" db:"key_terms"`
	ExplanationText string          `json:"explanationText" db:"explanation_text"`
	Examples        []Example       `json:"examples" db:"examples"`
	Summary         string          `json:"summary,omitempty" db:"summary"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}

// Scene is one unit of a teaching script. Scene numbers are 1-based and
// strictly increasing with no gaps; duration is whole seconds.
type Scene struct {
	SceneNumber       int      `json:"sceneNumber"`
	Duration          int      `json:"duration"`
	VisualDescription string   `json:"visualDescription"`
	Narration         string   `json:"narration"`
	OnScreenText      []string `json:"onScreenText"`
	CharacterAction   string   `json:"characterAction"`
}

// TeachingScript is the narrated scene sequence for one explanation.
// TotalScenes always equals len(Scenes) and EstimatedDuration the sum of
// scene durations; both are computed at persistence time.
type TeachingScript struct {
	ID                uuid.UUID `json:"id" db:"id"`
	ExplanationID     uuid.UUID `json:"explanationId" db:"explanation_id"`
	Scenes            []Scene   `json:"scenes" db:"script_data"`
	TotalScenes       int       `json:"totalScenes" db:"total_scenes"`
	EstimatedDuration int       `json:"estimatedDuration" db:"estimated_duration"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// GeneratedContent is the combined output of the four generation stages.
type GeneratedContent struct {
	Analysis    Analysis
	Explanation string
	Examples    []Example
	Scenes      []Scene
}

// TotalDuration returns the summed duration of all scenes in seconds.
func TotalDuration(scenes []Scene) int {
	total := 0
	for _, s := range scenes {
		total += s.Duration
	}
	return total
}
