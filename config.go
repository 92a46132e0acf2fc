package remedian

import (
	"cmp"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is a declarative Estimator configuration, suitable for embedding in application config files. Zero fields take
// their defaults.
type Config struct {
	// Base is the capacity of each level. Defaults to DefaultBase.
	Base int `yaml:"base" json:"base"`
	// Depth is the number of levels. Defaults to DefaultDepth.
	Depth int `yaml:"depth" json:"depth"`
}

// ParseConfig decodes a YAML Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return c, nil
}

// NewBuilderFromConfig returns a Builder for sample type T configured from c.
func NewBuilderFromConfig[T cmp.Ordered](c Config) Builder[T] {
	b := NewBuilder[T]()
	if c.Base != 0 {
		b.WithBase(c.Base)
	}
	if c.Depth != 0 {
		b.WithDepth(c.Depth)
	}
	return b
}
