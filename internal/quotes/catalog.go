// Package quotes supplies the motivational one-liner appended to every
// plan, from an embedded default catalog or a user-provided YAML file.
package quotes

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed quotes.yaml
var defaultCatalog []byte

// Catalog is a set of quote strings loaded from YAML.
type Catalog struct {
	Quotes []string `yaml:"quotes"`
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	return parse(defaultCatalog)
}

// LoadFile parses a user catalog from the given path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading quote catalog: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing quote catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the catalog holds at least one non-blank quote.
func (c *Catalog) Validate() error {
	if len(c.Quotes) == 0 {
		return fmt.Errorf("quote catalog is empty")
	}
	for i, q := range c.Quotes {
		if q == "" {
			return fmt.Errorf("quote %d is blank", i)
		}
	}
	return nil
}

// Picker selects quotes at random from a catalog.
type Picker struct {
	quotes []string
	rng    *rand.Rand
}

// NewPicker creates a Picker over the catalog. A nil rng gets a
// time-seeded source; tests pass a fixed seed instead.
func NewPicker(c *Catalog, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{quotes: c.Quotes, rng: rng}
}

// Pick returns one quote from the catalog.
func (p *Picker) Pick() string {
	return p.quotes[p.rng.Intn(len(p.quotes))]
}
