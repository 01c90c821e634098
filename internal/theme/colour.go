// Package theme holds the palette listings are painted with. A Theme is
// loaded from the "theme" section of the config file on top of the built-in
// Gruvbox Dark palette, so a config only names the colours it changes.
package theme

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Colour is either a 24-bit RGB value or one of the terminal's named colours
type Colour struct {
	rgb   [3]uint8
	named color.Attribute
	isRGB bool
}

// RGB returns a 24-bit colour
func RGB(r, g, b uint8) Colour {
	return Colour{rgb: [3]uint8{r, g, b}, isRGB: true}
}

// Named returns a colour from the terminal's own palette
func Named(attr color.Attribute) Colour {
	return Colour{named: attr}
}

var namedColours = map[string]color.Attribute{
	"black":        color.FgBlack,
	"red":          color.FgRed,
	"green":        color.FgGreen,
	"yellow":       color.FgYellow,
	"blue":         color.FgBlue,
	"purple":       color.FgMagenta,
	"magenta":      color.FgMagenta,
	"cyan":         color.FgCyan,
	"white":        color.FgWhite,
	"darkgray":     color.FgHiBlack,
	"darkgrey":     color.FgHiBlack,
	"lightblack":   color.FgHiBlack,
	"lightred":     color.FgHiRed,
	"lightgreen":   color.FgHiGreen,
	"lightyellow":  color.FgHiYellow,
	"lightblue":    color.FgHiBlue,
	"lightpurple":  color.FgHiMagenta,
	"lightmagenta": color.FgHiMagenta,
	"lightcyan":    color.FgHiCyan,
	"lightgray":    color.FgWhite,
	"lightgrey":    color.FgWhite,
}

// New builds a fatih colour for c with extra attributes such as Bold
func (c Colour) New(attrs ...color.Attribute) *color.Color {
	if c.isRGB {
		return color.RGB(int(c.rgb[0]), int(c.rgb[1]), int(c.rgb[2])).Add(attrs...)
	}
	return color.New(append([]color.Attribute{c.named}, attrs...)...)
}

// UnmarshalYAML accepts {r: 0-255, g: 0-255, b: 0-255} or a colour name
// such as "red" or "lightblue"
func (c *Colour) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		attr, ok := namedColours[strings.ToLower(strings.TrimSpace(node.Value))]
		if !ok {
			return fmt.Errorf("line %d: unknown colour name %q", node.Line, node.Value)
		}
		*c = Named(attr)
		return nil

	case yaml.MappingNode:
		var raw struct {
			R *int `yaml:"r"`
			G *int `yaml:"g"`
			B *int `yaml:"b"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		var rgb [3]uint8
		for i, v := range []*int{raw.R, raw.G, raw.B} {
			if v == nil {
				return fmt.Errorf("line %d: colour needs r, g and b", node.Line)
			}
			if *v < 0 || *v > 255 {
				return fmt.Errorf("line %d: colour component %d out of range 0-255", node.Line, *v)
			}
			rgb[i] = uint8(*v)
		}
		*c = RGB(rgb[0], rgb[1], rgb[2])
		return nil

	default:
		return fmt.Errorf("line %d: colour must be a name or {r, g, b}", node.Line)
	}
}
