package prefabs

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/pinkball/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadOr loads filename, logging and returning fallback if it is missing or broken.
func LoadOr[T any](filename string, fallback T) T {
	spec, err := LoadSpec[T](filename)
	if err != nil {
		log.Printf("%v; using built-in defaults", err)
		return fallback
	}
	return spec
}

// Color is a YAML scalar holding a color name or hex string.
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := common.ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

func NamedColor(name string) Color {
	return Color{RGBA: common.MustColor(name)}
}
