// Package catalog looks up exercises by identifier.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/hperssn/drill/internal/domain"
)

var ErrExerciseNotFound = errors.New("exercise not found")

//go:embed exercises.yaml
var builtin []byte

type catalogFile struct {
	Exercises []domain.Exercise `yaml:"exercises"`
}

// Catalog is an immutable set of exercises keyed by ID.
type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]int
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(builtin)
}

// Load reads a YAML catalog from path. An empty path yields the default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog. IDs must be unique.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}

	c := &Catalog{
		exercises: file.Exercises,
		byID:      make(map[string]int, len(file.Exercises)),
	}
	for i, ex := range file.Exercises {
		if err := ex.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, ex.ID)
		}
		c.byID[ex.ID] = i
	}
	return c, nil
}

func (c *Catalog) Lookup(id string) (domain.Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Exercise{}, fmt.Errorf("%w: %q", ErrExerciseNotFound, id)
	}
	return c.exercises[i], nil
}

// List returns exercises in file order, optionally restricted to category.
func (c *Catalog) List(category domain.Category) []domain.Exercise {
	if category == "" {
		return slices.Clone(c.exercises)
	}
	var out []domain.Exercise
	for _, ex := range c.exercises {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}
