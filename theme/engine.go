package theme

import (
	"slices"
	"sort"
	"time"
)

// Options filters which opt-in themes are candidates during resolution.
type Options struct {
	// EnabledCultures lists opt-in theme names the caller has turned on.
	EnabledCultures []string

	// UserRegion is the caller's region identifier, matched against a
	// rule's region list.
	UserRegion string
}

// Engine resolves themes for civil dates against a fixed catalog.
// It holds no per-call state, so concurrent use is safe.
type Engine struct {
	catalog Catalog
}

// NewEngine creates an engine over the given catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

type match struct {
	theme ResolvedTheme
	days  int
}

// ResolveThemes returns every theme active on date, ordered from most
// to least specific: ascending estimated duration, catalog order on
// ties. When nothing matches, it returns exactly the catalog's everyday
// entry. The result is empty only when the catalog has no everyday
// entry, which is a configuration defect rather than a runtime fault.
func (e *Engine) ResolveThemes(date time.Time, opts Options) []ResolvedTheme {
	year := date.Year()

	var matches []match
	for _, group := range []struct {
		category Category
		rules    []ThemeRule
	}{
		{CategorySeasonal, e.catalog.Seasonal},
		{CategoryHolidays, e.catalog.Holidays},
		{CategoryCultural, e.catalog.Cultural},
	} {
		for _, tr := range group.rules {
			if !e.available(tr, opts) {
				continue
			}
			if !IsActive(tr.Rule, date) {
				continue
			}
			matches = append(matches, match{
				theme: resolve(tr, group.category),
				days:  DurationDays(tr.Rule, year),
			})
		}
	}

	if len(matches) == 0 {
		if len(e.catalog.Everyday) == 0 {
			return []ResolvedTheme{}
		}
		return []ResolvedTheme{resolve(e.catalog.Everyday[0], CategoryEveryday)}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].days < matches[j].days
	})

	themes := make([]ResolvedTheme, len(matches))
	for i, m := range matches {
		themes[i] = m.theme
	}
	return themes
}

// ResolvePrimaryTheme returns the most specific theme active on date,
// or nil when resolution produced nothing (possible only when the
// catalog lacks an everyday entry).
func (e *Engine) ResolvePrimaryTheme(date time.Time, opts Options) *ResolvedTheme {
	themes := e.ResolveThemes(date, opts)
	if len(themes) == 0 {
		return nil
	}
	return &themes[0]
}

// available applies the opt-in policy. Rules enabled by default are
// always candidates; enabled: false rules require the caller to list
// them by name or to be in one of the rule's regions.
func (e *Engine) available(tr ThemeRule, opts Options) bool {
	if tr.IsEnabled() {
		return true
	}
	if slices.Contains(opts.EnabledCultures, tr.Name) {
		return true
	}
	return opts.UserRegion != "" && slices.Contains(tr.Region, opts.UserRegion)
}

// resolve projects a matched rule into the output shape. Metadata is
// copied so callers cannot reach back into the catalog.
func resolve(tr ThemeRule, category Category) ResolvedTheme {
	rt := ResolvedTheme{
		Name:     tr.Name,
		Category: category,
		Rule:     tr.Rule,
	}
	if tr.Metadata != nil {
		md := *tr.Metadata
		rt.Metadata = &md
	}
	return rt
}
