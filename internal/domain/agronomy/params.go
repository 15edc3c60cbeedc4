package agronomy

// Params defines the tunable thresholds of the scoring engine. The scoring
// curves and weight profiles are fixed tables and are not part of Params.
type Params struct {
	// FeedbackThreshold is the sub-score below which an advisory is emitted
	FeedbackThreshold float64

	// SuccessScore is the minimum overall score counted as a successful harvest
	SuccessScore int

	// StrictLevels rejects levels outside 1-3 instead of scoring them as level 1
	StrictLevels bool
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	FeedbackThreshold float64
	SuccessScore      int
	StrictLevels      bool
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		FeedbackThreshold: 0.7,
		SuccessScore:      50,
		StrictLevels:      false,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero values keep the defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.FeedbackThreshold > 0 && config.FeedbackThreshold <= 1 {
		params.FeedbackThreshold = config.FeedbackThreshold
	}
	if config.SuccessScore > 0 && config.SuccessScore <= 100 {
		params.SuccessScore = config.SuccessScore
	}
	params.StrictLevels = config.StrictLevels

	return params
}
