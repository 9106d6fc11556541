// Package catalog holds the read-only reference data shared by the wizard
// and the generation result screen: garment types, inspirations, saved
// measurement profiles, measurement fields, fabrics and notions.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// OtherGarment is the garment type that requires a custom garment name.
const OtherGarment = "Other"

// Keys of the measurements every custom measurement set must provide.
var requiredMeasurements = []string{"bust", "waist", "hips"}

//go:embed catalog.yaml
var defaultYAML []byte

// Inspiration is a swatch in the inspiration library.
type Inspiration struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Profile is a saved set of body measurements, in inches.
type Profile struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Bust  string `yaml:"bust"`
	Waist string `yaml:"waist"`
	Hips  string `yaml:"hips"`
}

// MeasurementField describes one custom measurement input.
type MeasurementField struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Required bool   `yaml:"required"`
}

// Fabric is a recommended fabric shown once the pattern is ready.
type Fabric struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Color   string `yaml:"color"`
	Yardage string `yaml:"yardage"`
}

// Notion is a recommended notion or thread shown once the pattern is ready.
type Notion struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Detail   string `yaml:"detail"`
	Quantity string `yaml:"quantity"`
}

// Catalog is the full set of reference data. Treat it as immutable once
// loaded; both controllers share a single instance.
type Catalog struct {
	GarmentTypes   []string           `yaml:"garment_types"`
	Inspirations   []Inspiration      `yaml:"inspirations"`
	Profiles       []Profile          `yaml:"profiles"`
	Measurements   []MeasurementField `yaml:"measurements"`
	Fabrics        []Fabric           `yaml:"fabrics"`
	FabricSupplier string             `yaml:"fabric_supplier"`
	Notions        []Notion           `yaml:"notions"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads a catalog from a YAML file. An empty path returns the default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every section is populated and ids are unique.
func (c *Catalog) Validate() error {
	if len(c.GarmentTypes) == 0 {
		return fmt.Errorf("catalog has no garment types")
	}
	if !c.HasGarmentType(OtherGarment) {
		return fmt.Errorf("catalog garment types must include %q", OtherGarment)
	}
	if err := uniqueIDs("garment type", c.GarmentTypes); err != nil {
		return err
	}

	if len(c.Inspirations) == 0 {
		return fmt.Errorf("catalog has no inspirations")
	}
	ids := make([]string, 0, len(c.Inspirations))
	for _, i := range c.Inspirations {
		ids = append(ids, i.ID)
	}
	if err := uniqueIDs("inspiration", ids); err != nil {
		return err
	}

	if len(c.Profiles) == 0 {
		return fmt.Errorf("catalog has no profiles")
	}
	ids = ids[:0]
	for _, p := range c.Profiles {
		ids = append(ids, p.ID)
	}
	if err := uniqueIDs("profile", ids); err != nil {
		return err
	}

	if len(c.Measurements) == 0 {
		return fmt.Errorf("catalog has no measurements")
	}
	ids = ids[:0]
	for _, m := range c.Measurements {
		ids = append(ids, m.Key)
	}
	if err := uniqueIDs("measurement", ids); err != nil {
		return err
	}
	for _, key := range requiredMeasurements {
		m, ok := c.Measurement(key)
		if !ok || !m.Required {
			return fmt.Errorf("catalog is missing required measurement %q", key)
		}
	}
	for _, m := range c.Measurements {
		if m.Required && !isRequiredKey(m.Key) {
			return fmt.Errorf("measurement %q cannot be required, only bust, waist and hips are", m.Key)
		}
	}

	if len(c.Fabrics) == 0 {
		return fmt.Errorf("catalog has no fabrics")
	}
	if err := uniqueIDs("fabric", c.FabricIDs()); err != nil {
		return err
	}
	if len(c.Notions) == 0 {
		return fmt.Errorf("catalog has no notions")
	}
	return uniqueIDs("notion", c.NotionIDs())
}

func uniqueIDs(kind string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("catalog has a %s with an empty id", kind)
		}
		if seen[id] {
			return fmt.Errorf("catalog has duplicate %s %q", kind, id)
		}
		seen[id] = true
	}
	return nil
}

// HasGarmentType reports whether name is one of the catalog garment types.
func (c *Catalog) HasGarmentType(name string) bool {
	for _, g := range c.GarmentTypes {
		if g == name {
			return true
		}
	}
	return false
}

// Inspiration looks up an inspiration by id.
func (c *Catalog) Inspiration(id string) (Inspiration, bool) {
	for _, i := range c.Inspirations {
		if i.ID == id {
			return i, true
		}
	}
	return Inspiration{}, false
}

// Profile looks up a saved measurement profile by id.
func (c *Catalog) Profile(id string) (Profile, bool) {
	for _, p := range c.Profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// Measurement looks up a measurement field by key.
func (c *Catalog) Measurement(key string) (MeasurementField, bool) {
	for _, m := range c.Measurements {
		if m.Key == key {
			return m, true
		}
	}
	return MeasurementField{}, false
}

// RequiredMeasurements returns the keys a custom measurement set must fill.
// These are always bust, waist and hips.
func (c *Catalog) RequiredMeasurements() []string {
	return append([]string(nil), requiredMeasurements...)
}

func isRequiredKey(key string) bool {
	for _, k := range requiredMeasurements {
		if k == key {
			return true
		}
	}
	return false
}

// Fabric looks up a fabric by id.
func (c *Catalog) Fabric(id string) (Fabric, bool) {
	for _, f := range c.Fabrics {
		if f.ID == id {
			return f, true
		}
	}
	return Fabric{}, false
}

// Notion looks up a notion by id.
func (c *Catalog) Notion(id string) (Notion, bool) {
	for _, n := range c.Notions {
		if n.ID == id {
			return n, true
		}
	}
	return Notion{}, false
}

// FabricIDs returns fabric ids in catalog order.
func (c *Catalog) FabricIDs() []string {
	ids := make([]string, 0, len(c.Fabrics))
	for _, f := range c.Fabrics {
		ids = append(ids, f.ID)
	}
	return ids
}

// NotionIDs returns notion ids in catalog order.
func (c *Catalog) NotionIDs() []string {
	ids := make([]string, 0, len(c.Notions))
	for _, n := range c.Notions {
		ids = append(ids, n.ID)
	}
	return ids
}

// YAML renders the catalog back to its YAML form.
func (c *Catalog) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return data, nil
}
