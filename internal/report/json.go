package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/phrazzld/cropsim/internal/domain"
)

// JSONRenderer writes each result as one JSON document.
type JSONRenderer struct {
	indent bool
}

// NewJSONRenderer creates a JSONRenderer
func NewJSONRenderer(indent bool) *JSONRenderer {
	return &JSONRenderer{indent: indent}
}

// Crops writes the crop list.
func (r *JSONRenderer) Crops(w io.Writer, crops []*domain.CropProfile) error {
	return r.write(w, struct {
		Crops []*domain.CropProfile `json:"crops"`
	}{Crops: crops})
}

// Simulation writes one simulation report.
func (r *JSONRenderer) Simulation(w io.Writer, s Simulation) error {
	return r.write(w, s)
}

// Check writes one parameter check.
func (r *JSONRenderer) Check(w io.Writer, c Check) error {
	return r.write(w, c)
}

// Batch writes the batch outcomes and summary.
func (r *JSONRenderer) Batch(w io.Writer, b Batch) error {
	return r.write(w, b)
}

func (r *JSONRenderer) write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
