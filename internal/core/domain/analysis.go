package domain

import "time"

// Analysis is the stored outcome of analysing one uploaded ebook.
type Analysis struct {
	// ID is the unique identifier for the analysis.
	ID string `json:"id"`

	// Name is the display name of the upload.
	Name string `json:"name"`

	// TokenCount is the number of lemmas kept by normalisation.
	TokenCount int `json:"token_count"`

	// Result is the topic report; Assignments[0] is the upload itself.
	Result AnalysisResult `json:"result"`

	// CreatedAt is when the analysis ran.
	CreatedAt time.Time `json:"created_at"`
}

// Assignment returns the topic assigned to the uploaded document.
func (a Analysis) Assignment() TopicAssignment {
	if len(a.Result.Assignments) == 0 {
		return TopicAssignment{TopicID: NoTopic}
	}
	return a.Result.Assignments[0]
}

// Outcome classifies how an analysis ended, for metrics and logs.
type Outcome string

// Analysis outcomes.
const (
	OutcomeOK               Outcome = "ok"
	OutcomeNoTopic          Outcome = "no_topic"
	OutcomeDecodingError    Outcome = "decoding_error"
	OutcomeInvalidInput     Outcome = "invalid_input"
	OutcomeAttributionError Outcome = "attribution_error"
	OutcomeError            Outcome = "error"
)
