// Package catalog owns the crop reference data. It loads crop profiles from
// an embedded default catalog and from YAML files on disk, validates them
// once at load time, and serves read-only lookups to the scoring engine.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/phrazzld/cropsim/internal/domain"
)

//go:embed crops.yaml
var defaultCatalog []byte

// DefaultPattern matches every YAML file below the catalog directory.
const DefaultPattern = "**/*.{yaml,yml}"

var (
	// ErrCropNotFound is returned when no crop has the requested name.
	ErrCropNotFound = errors.New("crop not found")

	// ErrDuplicateCrop is returned when two profiles share a name.
	ErrDuplicateCrop = errors.New("duplicate crop name")
)

// Options controls where Load looks for crop profiles.
type Options struct {
	// Dir is an optional directory searched for extra catalog files.
	Dir string
	// Pattern is the doublestar glob matched against paths relative to Dir.
	Pattern string
	// SkipDefaults leaves out the embedded default catalog.
	SkipDefaults bool
	// Logger receives load diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// Catalog is an immutable set of validated crop profiles, safe for
// concurrent use.
type Catalog struct {
	byName map[string]*domain.CropProfile
	sorted []*domain.CropProfile
}

// Load builds a catalog from the embedded defaults and every file under
// opts.Dir matching opts.Pattern. Files are read in lexical order. Any
// invalid profile or duplicate name fails the whole load.
func Load(opts Options) (*Catalog, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "catalog")

	var profiles []*domain.CropProfile

	if !opts.SkipDefaults {
		defaults, err := Parse(defaultCatalog, "default catalog")
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, defaults...)
		log.Debug("loaded default catalog", "crops", len(defaults))
	}

	if opts.Dir != "" {
		extra, err := loadDir(os.DirFS(opts.Dir), opts.Dir, opts.Pattern, log)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, extra...)
	}

	c, err := New(profiles...)
	if err != nil {
		return nil, err
	}

	log.Info("crop catalog ready", "crops", c.Len(), "dir", opts.Dir)

	return c, nil
}

func loadDir(fsys fs.FS, dir, pattern string, log *slog.Logger) ([]*domain.CropProfile, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q in %s: %w", pattern, dir, err)
	}
	sort.Strings(matches)

	var profiles []*domain.CropProfile
	for _, path := range matches {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog file %s: %w", path, err)
		}

		parsed, err := Parse(data, path)
		if err != nil {
			log.Error("invalid catalog file", "file", path, "error", err)
			return nil, err
		}

		log.Debug("loaded catalog file", "file", path, "crops", len(parsed))
		profiles = append(profiles, parsed...)
	}

	if len(matches) == 0 {
		log.Warn("no catalog files matched", "dir", dir, "pattern", pattern)
	}

	return profiles, nil
}

// New builds a catalog from already decoded profiles. Each profile is
// validated and copied; names are compared case-insensitively.
func New(profiles ...*domain.CropProfile) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]*domain.CropProfile, len(profiles)),
		sorted: make([]*domain.CropProfile, 0, len(profiles)),
	}

	for _, p := range profiles {
		if p == nil {
			return nil, domain.ErrNilCrop
		}
		if err := p.Validate(); err != nil {
			return nil, asConfigurationError(p.Name, err)
		}

		key := normalize(p.Name)
		if key == "" {
			return nil, &domain.ConfigurationError{Field: "name", Err: domain.ErrValidation}
		}
		if _, exists := c.byName[key]; exists {
			return nil, &domain.ConfigurationError{Crop: p.Name, Field: "name", Err: ErrDuplicateCrop}
		}

		clone := *p
		c.byName[key] = &clone
		c.sorted = append(c.sorted, &clone)
	}

	sort.Slice(c.sorted, func(i, j int) bool {
		a, b := c.sorted[i], c.sorted[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})

	return c, nil
}

// Get returns a copy of the named crop profile.
func (c *Catalog) Get(name string) (*domain.CropProfile, error) {
	p, ok := c.byName[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCropNotFound, name)
	}
	clone := *p
	return &clone, nil
}

// List returns copies of every profile sorted by category, then name.
func (c *Catalog) List() []*domain.CropProfile {
	return c.filter(func(*domain.CropProfile) bool { return true })
}

// ByCategory returns copies of the profiles in one category, sorted by name.
func (c *Catalog) ByCategory(category domain.Category) []*domain.CropProfile {
	return c.filter(func(p *domain.CropProfile) bool { return p.Category == category })
}

// Names returns every crop name in List order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sorted))
	for _, p := range c.sorted {
		names = append(names, p.Name)
	}
	return names
}

// Len returns the number of crops in the catalog.
func (c *Catalog) Len() int {
	return len(c.sorted)
}

func (c *Catalog) filter(keep func(*domain.CropProfile) bool) []*domain.CropProfile {
	out := make([]*domain.CropProfile, 0, len(c.sorted))
	for _, p := range c.sorted {
		if keep(p) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
