// Package catalog supplies the embedded default theme catalog along
// with loading and validation of catalog documents.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/daythemes/theme"
)

//go:embed themes.yaml
var defaultSource []byte

// Default returns the embedded catalog. The embedded document is
// covered by this package's tests, so a decode failure here is a
// programmer error.
func Default() theme.Catalog {
	cat, err := Parse(defaultSource)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded themes.yaml is invalid: %v", err))
	}
	return cat
}

// DefaultSource returns a copy of the embedded catalog document.
func DefaultSource() []byte {
	return append([]byte(nil), defaultSource...)
}

// Load decodes a catalog document from r.
func Load(r io.Reader) (theme.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return theme.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document and checks the invariants the
// engine depends on: rule names unique across all four lists, and a
// single everyday fallback entry.
func Parse(data []byte) (theme.Catalog, error) {
	var cat theme.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return theme.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := checkInvariants(cat); err != nil {
		return theme.Catalog{}, err
	}
	return cat, nil
}

func checkInvariants(cat theme.Catalog) error {
	seen := make(map[string]bool)
	for _, list := range [][]theme.ThemeRule{cat.Seasonal, cat.Holidays, cat.Cultural, cat.Everyday} {
		for _, tr := range list {
			if tr.Name == "" {
				return errors.New("catalog: rule with empty name")
			}
			if seen[tr.Name] {
				return fmt.Errorf("catalog: duplicate rule name %q", tr.Name)
			}
			seen[tr.Name] = true
		}
	}

	if n := len(cat.Everyday); n != 1 {
		return fmt.Errorf("catalog: everyday must hold exactly one entry, got %d", n)
	}
	return nil
}
