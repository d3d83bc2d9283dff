package domain

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog holds every piece of sample content shown by the app.
type Catalog struct {
	Landing   Landing   `yaml:"landing"`
	Learn     Learn     `yaml:"learn"`
	Certify   Certify   `yaml:"certify"`
	Match     Match     `yaml:"match"`
	Community Community `yaml:"community"`
	Dashboard Dashboard `yaml:"dashboard"`
}

// DefaultCatalog parses the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// LoadCatalog reads a catalog from path. An empty path returns the
// embedded catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("domain.LoadCatalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("domain.LoadCatalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes YAML catalog data and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the cross references a catalog must satisfy: every
// feature and quick action points at a known section and every course
// category is listed.
func (c *Catalog) Validate() error {
	for _, f := range c.Landing.Features {
		if !ValidSection(f.Section) {
			return fmt.Errorf("feature %q: unknown section %q", f.Title, f.Section)
		}
	}
	for _, a := range c.Dashboard.QuickActions {
		if !ValidSection(a.Section) {
			return fmt.Errorf("quick action %q: unknown section %q", a.Label, a.Section)
		}
	}
	for _, course := range c.Learn.Courses {
		if !c.Learn.HasCategory(course.Category) {
			return fmt.Errorf("course %q: unknown category %q", course.Title, course.Category)
		}
	}
	for _, j := range c.Match.Jobs {
		if j.Match < 0 || j.Match > 100 {
			return fmt.Errorf("job %q: match %d out of range", j.Title, j.Match)
		}
	}
	return nil
}
