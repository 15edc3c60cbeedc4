package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/cropsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// Default units applied when a file leaves them out
const (
	defaultWaterUnit       = "mm/saison"
	defaultNutrientUnit    = "kg/ha"
	defaultTemperatureUnit = "°C"
	defaultYieldUnit       = "t/ha"
)

// fileRecord is the on-disk shape of a catalog file.
type fileRecord struct {
	Crops []cropRecord `yaml:"crops" validate:"required,min=1,dive"`
}

type cropRecord struct {
	Name        string           `yaml:"name" validate:"required"`
	Description string           `yaml:"description" validate:"max=500"`
	Category    string           `yaml:"category" validate:"required,oneof=cereale legume tubercule oleagineux fruit"`
	Difficulty  string           `yaml:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	GrowthDays  int              `yaml:"growth_days" validate:"gte=1"`
	Parameters  parametersRecord `yaml:"parameters"`
	Yields      yieldsRecord     `yaml:"yields"`
}

type parametersRecord struct {
	Water       amountRecord      `yaml:"water"`
	Nitrogen    amountRecord      `yaml:"nitrogen"`
	Phosphorus  amountRecord      `yaml:"phosphorus"`
	Potassium   amountRecord      `yaml:"potassium"`
	PH          phRecord          `yaml:"ph"`
	Temperature temperatureRecord `yaml:"temperature"`
}

type amountRecord struct {
	Min     float64 `yaml:"min" validate:"gte=0"`
	Optimal float64 `yaml:"optimal" validate:"gte=0"`
	Max     float64 `yaml:"max" validate:"gte=0"`
	Unit    string  `yaml:"unit"`
}

type phRecord struct {
	Min     float64 `yaml:"min" validate:"gte=0,lte=14"`
	Optimal float64 `yaml:"optimal" validate:"gte=0,lte=14"`
	Max     float64 `yaml:"max" validate:"gte=0,lte=14"`
}

type temperatureRecord struct {
	Min     float64 `yaml:"min" validate:"gte=-50,lte=60"`
	Optimal float64 `yaml:"optimal" validate:"gte=-50,lte=60"`
	Max     float64 `yaml:"max" validate:"gte=-50,lte=60"`
	Unit    string  `yaml:"unit"`
}

type yieldsRecord struct {
	Min  float64 `yaml:"min" validate:"gte=0"`
	Avg  float64 `yaml:"avg" validate:"gte=0"`
	Max  float64 `yaml:"max" validate:"gt=0"`
	Unit string  `yaml:"unit"`
}

var validate = validator.New()

// Parse decodes and validates one catalog file. source names the file in
// error messages. Unknown keys are rejected. Every profile is checked
// against the struct constraints and the domain invariants; failures are
// returned as *domain.ConfigurationError.
func Parse(data []byte, source string) ([]*domain.CropProfile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file fileRecord
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: decode catalog: %w", source, err)
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("%s: %w", source, describeValidation(file, err))
	}

	profiles := make([]*domain.CropProfile, 0, len(file.Crops))
	for _, rec := range file.Crops {
		profile := rec.toProfile()
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", source, asConfigurationError(profile.Name, err))
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r cropRecord) toProfile() *domain.CropProfile {
	p := r.Parameters
	return &domain.CropProfile{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Category:    domain.Category(r.Category),
		Difficulty:  r.Difficulty,
		GrowthDays:  r.GrowthDays,
		Parameters: domain.CropParameters{
			Water:       p.Water.toRange(defaultWaterUnit),
			Nitrogen:    p.Nitrogen.toRange(defaultNutrientUnit),
			Phosphorus:  p.Phosphorus.toRange(defaultNutrientUnit),
			Potassium:   p.Potassium.toRange(defaultNutrientUnit),
			PH:          domain.Range{Min: p.PH.Min, Optimal: p.PH.Optimal, Max: p.PH.Max},
			Temperature: p.Temperature.toRange(),
		},
		Yields: domain.Yields{
			Min:  r.Yields.Min,
			Avg:  r.Yields.Avg,
			Max:  r.Yields.Max,
			Unit: orDefault(r.Yields.Unit, defaultYieldUnit),
		},
	}
}

func (a amountRecord) toRange(unit string) domain.Range {
	return domain.Range{Min: a.Min, Optimal: a.Optimal, Max: a.Max, Unit: orDefault(a.Unit, unit)}
}

func (t temperatureRecord) toRange() domain.Range {
	return domain.Range{Min: t.Min, Optimal: t.Optimal, Max: t.Max, Unit: orDefault(t.Unit, defaultTemperatureUnit)}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// describeValidation turns the first validator failure into a
// ConfigurationError naming the crop and field.
func describeValidation(file fileRecord, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	first := verrs[0]
	crop := ""
	// Namespace looks like fileRecord.Crops[2].Parameters.Water.Min
	if idx := cropIndex(first.Namespace()); idx >= 0 && idx < len(file.Crops) {
		crop = file.Crops[idx].Name
	}

	return &domain.ConfigurationError{
		Crop:  crop,
		Field: first.Namespace(),
		Err:   fmt.Errorf("%w: failed on %q", domain.ErrValidation, first.Tag()),
	}
}

func cropIndex(namespace string) int {
	start := strings.Index(namespace, "[")
	end := strings.Index(namespace, "]")
	if start < 0 || end <= start {
		return -1
	}
	idx, err := strconv.Atoi(namespace[start+1 : end])
	if err != nil {
		return -1
	}
	return idx
}

func asConfigurationError(crop string, err error) error {
	if domain.IsConfigurationError(err) {
		return err
	}
	return &domain.ConfigurationError{Crop: crop, Field: "profile", Err: err}
}
