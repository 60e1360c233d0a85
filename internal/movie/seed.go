package movie

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSeed is returned when seed data breaks the collection invariants.
var ErrInvalidSeed = errors.New("invalid seed")

// seedFile is the on-disk layout of a seed file:
//
//	movies:
//	  - id: 1
//	    title: Interstellar
type seedFile struct {
	Movies []Movie `yaml:"movies"`
}

// LoadSeed reads seed movies from a YAML file. An empty path yields DefaultSeed.
func LoadSeed(path string) ([]Movie, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultSeed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	for i := range f.Movies {
		f.Movies[i].Title = strings.TrimSpace(f.Movies[i].Title)
	}
	if err := ValidateSeed(f.Movies); err != nil {
		return nil, fmt.Errorf("seed %s: %w", path, err)
	}
	return f.Movies, nil
}

// ValidateSeed checks that every ID is positive and unique and every title is
// non-blank. An empty seed is valid.
func ValidateSeed(movies []Movie) error {
	seen := make(map[int]bool, len(movies))
	for i, m := range movies {
		if m.ID <= 0 {
			return fmt.Errorf("%w: entry %d has non-positive id %d", ErrInvalidSeed, i, m.ID)
		}
		if seen[m.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, m.ID)
		}
		seen[m.ID] = true
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("%w: entry %d (id %d) has an empty title", ErrInvalidSeed, i, m.ID)
		}
	}
	return nil
}
