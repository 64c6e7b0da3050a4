package palette

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Variant names one color-scheme flavor of the theme.
type Variant string

const (
	Latte     Variant = "latte"
	Frappe    Variant = "frappe"
	Macchiato Variant = "macchiato"
	Mocha     Variant = "mocha"
)

// LightVariant is the only variant rendered with a light appearance.
const LightVariant = Latte

// ErrUnknownVariant is returned when a name is not one of Variants().
var ErrUnknownVariant = errors.New("unknown variant")

// Variants returns the fixed set of variants in build order.
func Variants() []Variant {
	return []Variant{Latte, Frappe, Macchiato, Mocha}
}

// ParseVariant validates a variant name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: latte, frappe, macchiato, mocha)", ErrUnknownVariant, name)
}

// IsLight reports whether v is the light variant.
func (v Variant) IsLight() bool {
	return v == LightVariant
}

// Appearance returns "light" or "dark".
func (v Variant) Appearance() string {
	if v.IsLight() {
		return "light"
	}
	return "dark"
}

// Selector returns the CSS class selector for the variant's appearance.
func (v Variant) Selector() string {
	return "." + v.Appearance()
}

// Capitalized upper-cases the first letter and leaves the rest unchanged.
func (v Variant) Capitalized() string {
	// Casers carry state, so one is built per call.
	return cases.Title(language.English, cases.NoLower).String(string(v))
}

func (v Variant) String() string {
	return string(v)
}
