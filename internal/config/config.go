package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	Batch   BatchConfig   `mapstructure:"batch" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// EngineConfig tunes the scoring engine thresholds.
type EngineConfig struct {
	FeedbackThreshold float64 `mapstructure:"feedback_threshold" validate:"gt=0,lte=1"`
	SuccessScore      int     `mapstructure:"success_score" validate:"gt=0,lte=100"`
	StrictLevels      bool    `mapstructure:"strict_levels"`
}

// CatalogConfig locates additional crop profile files. The embedded
// default catalog is always loaded unless SkipDefaults is set.
type CatalogConfig struct {
	Dir          string `mapstructure:"dir" validate:"omitempty,dir"`
	Pattern      string `mapstructure:"pattern" validate:"required"`
	SkipDefaults bool   `mapstructure:"skip_defaults"`
}

// BatchConfig sizes the batch simulation worker pool.
type BatchConfig struct {
	Workers   int `mapstructure:"workers" validate:"gt=0,lte=64"`
	QueueSize int `mapstructure:"queue_size" validate:"gt=0"`
}

// OutputConfig selects how command results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}
