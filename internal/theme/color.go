package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by Validate for colors that do not parse.
var ErrInvalidColor = errors.New("invalid color")

const contrastThreshold = 3.0

// Validate reports every palette or override color that is not a hex color.
// A bad value only produces a visual defect, so callers usually log it.
func (t Theme) Validate() error {
	var errs []error
	check := func(where, value string) {
		if _, err := colorful.Hex(value); err != nil {
			errs = append(errs, fmt.Errorf("%s %q: %w", where, value, ErrInvalidColor))
		}
	}

	for _, k := range t.primary.Shades() {
		check("primary."+string(k), t.primary.Shade(k))
	}
	check("background", t.background)
	if !strings.HasPrefix(t.text, "rgba(") {
		check("text", t.text)
	}
	check("divider", t.divider)

	for _, k := range t.Kinds() {
		for _, r := range t.overrides[k] {
			if strings.HasSuffix(r.Property, "color") {
				check(string(k)+" "+r.Selector, r.Value)
			}
		}
	}

	return errors.Join(errs...)
}

// ContrastText picks black or white text for background, preferring white
// whenever it reaches the contrast threshold.
func (t Theme) ContrastText(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return t.text
	}
	white, _ := colorful.Hex("#ffffff")
	if contrastRatio(white, c) >= contrastThreshold {
		return "#ffffff"
	}
	return "rgba(0, 0, 0, 0.87)"
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func contrastRatio(a, b colorful.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
