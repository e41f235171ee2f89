package theme

// Category names the catalog list a theme rule belongs to.
type Category string

// Catalog categories.
const (
	CategorySeasonal Category = "seasonal"
	CategoryHolidays Category = "holidays"
	CategoryCultural Category = "cultural"
	CategoryEveryday Category = "everyday"
)

// Metadata carries optional descriptive fields for a theme rule.
type Metadata struct {
	ActualDate  string `yaml:"actualDate,omitempty" json:"actualDate,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ThemeRule binds a unique theme name to a date rule. Enabled defaults
// to true when unset. Rules with enabled: false are opt-in: they become
// candidates only when the caller names them in Options.EnabledCultures
// or when the caller's region appears in the rule's region list.
type ThemeRule struct {
	Name     string    `yaml:"name" json:"name"`
	Rule     DateRule  `yaml:"rule" json:"rule"`
	Enabled  *bool     `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Region   []string  `yaml:"region,omitempty" json:"region,omitempty"`
	Metadata *Metadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// IsEnabled reports whether the rule is on by default.
func (tr ThemeRule) IsEnabled() bool {
	return tr.Enabled == nil || *tr.Enabled
}

// Catalog is the full rule set, grouped by category. It is read-only
// configuration: the engine never mutates it, so one catalog value may
// back any number of concurrent resolutions.
//
// The everyday list is reserved for the fallback policy. It is expected
// to hold exactly one entry and is never evaluated against a date.
type Catalog struct {
	Seasonal []ThemeRule `yaml:"seasonal" json:"seasonal"`
	Holidays []ThemeRule `yaml:"holidays" json:"holidays"`
	Cultural []ThemeRule `yaml:"cultural" json:"cultural"`
	Everyday []ThemeRule `yaml:"everyday" json:"everyday"`
}

// ResolvedTheme is a matched theme rule projected with its source
// category.
type ResolvedTheme struct {
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Rule     DateRule  `json:"rule"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
