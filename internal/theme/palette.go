package theme

// Shade names a step of a color scale.
type Shade string

const (
	Shade50   Shade = "50"
	Shade100  Shade = "100"
	Shade200  Shade = "200"
	Shade300  Shade = "300"
	Shade400  Shade = "400"
	Shade500  Shade = "500"
	Shade600  Shade = "600"
	Shade700  Shade = "700"
	Shade800  Shade = "800"
	Shade900  Shade = "900"
	ShadeA100 Shade = "A100"
	ShadeA200 Shade = "A200"
	ShadeA400 Shade = "A400"
	ShadeA700 Shade = "A700"
)

var shadeOrder = []Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500, Shade600,
	Shade700, Shade800, Shade900, ShadeA100, ShadeA200, ShadeA400, ShadeA700,
}

// ColorScale is a named, read-only set of shades.
type ColorScale struct {
	name   string
	shades map[Shade]string
}

// NewScale builds a scale from shade values. Unknown shades are ignored.
func NewScale(name string, shades map[Shade]string) ColorScale {
	s := ColorScale{name: name, shades: make(map[Shade]string, len(shades))}
	for _, k := range shadeOrder {
		if v, ok := shades[k]; ok {
			s.shades[k] = v
		}
	}
	return s
}

// Name returns the scale name, e.g. "yellow".
func (s ColorScale) Name() string { return s.name }

// Shade returns the color for k, or "" when the scale lacks it.
func (s ColorScale) Shade(k Shade) string { return s.shades[k] }

// Main is the 500 shade.
func (s ColorScale) Main() string { return s.shades[Shade500] }

// Shades lists the shades present in the scale in canonical order.
func (s ColorScale) Shades() []Shade {
	out := make([]Shade, 0, len(s.shades))
	for _, k := range shadeOrder {
		if _, ok := s.shades[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Yellow is the Material yellow scale.
var Yellow = NewScale("yellow", map[Shade]string{
	Shade50:   "#fffde7",
	Shade100:  "#fff9c4",
	Shade200:  "#fff59d",
	Shade300:  "#fff176",
	Shade400:  "#ffee58",
	Shade500:  "#ffeb3b",
	Shade600:  "#fdd835",
	Shade700:  "#fbc02d",
	Shade800:  "#f9a825",
	Shade900:  "#f57f17",
	ShadeA100: "#ffff8d",
	ShadeA200: "#ffff00",
	ShadeA400: "#ffea00",
	ShadeA700: "#ffd600",
})

// Grey is the Material grey scale.
var Grey = NewScale("grey", map[Shade]string{
	Shade50:   "#fafafa",
	Shade100:  "#f5f5f5",
	Shade200:  "#eeeeee",
	Shade300:  "#e0e0e0",
	Shade400:  "#bdbdbd",
	Shade500:  "#9e9e9e",
	Shade600:  "#757575",
	Shade700:  "#616161",
	Shade800:  "#424242",
	Shade900:  "#212121",
	ShadeA100: "#f5f5f5",
	ShadeA200: "#eeeeee",
	ShadeA400: "#bdbdbd",
	ShadeA700: "#616161",
})
