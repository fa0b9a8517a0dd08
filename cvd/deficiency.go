package cvd

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnsupportedCategory is returned for a Deficiency outside the known
// set. It is a caller bug and is never replaced by a default.
var ErrUnsupportedCategory = errors.New("cvd: unsupported category")

// Deficiency is a type of color vision deficiency.
//
// The values come in weak/blind pairs: odd values are the anomalous
// (weak) variant, the following even value the complete one.
type Deficiency uint8

const (
	// Protanomaly is red-weakness.
	Protanomaly Deficiency = iota + 1
	// Protanopia is red-blindness.
	Protanopia
	// Deuteranomaly is green-weakness.
	Deuteranomaly
	// Deuteranopia is green-blindness.
	Deuteranopia
	// Tritanomaly is blue-weakness.
	Tritanomaly
	// Tritanopia is blue-blindness.
	Tritanopia
	// Achromatomaly is partial monochromacy.
	Achromatomaly
	// Achromatopsia is complete monochromacy.
	Achromatopsia
)

var deficiencyNames = [...]string{
	Protanomaly:   "protanomaly",
	Protanopia:    "protanopia",
	Deuteranomaly: "deuteranomaly",
	Deuteranopia:  "deuteranopia",
	Tritanomaly:   "tritanomaly",
	Tritanopia:    "tritanopia",
	Achromatomaly: "achromatomaly",
	Achromatopsia: "achromatopsia",
}

var deficiencyDescriptions = [...]string{
	Protanomaly:   "red-weak",
	Protanopia:    "red-blind",
	Deuteranomaly: "green-weak",
	Deuteranopia:  "green-blind",
	Tritanomaly:   "blue-weak",
	Tritanopia:    "blue-blind",
	Achromatomaly: "partial monochromacy",
	Achromatopsia: "complete monochromacy",
}

// All returns every known deficiency in enum order.
func All() []Deficiency {
	return []Deficiency{
		Protanomaly, Protanopia,
		Deuteranomaly, Deuteranopia,
		Tritanomaly, Tritanopia,
		Achromatomaly, Achromatopsia,
	}
}

// Valid reports whether d is one of the known deficiencies.
func (d Deficiency) Valid() bool {
	return d >= Protanomaly && d <= Achromatopsia
}

// IsWeak reports whether d is the anomalous variant of its pair.
func (d Deficiency) IsWeak() bool {
	return d%2 == 1
}

// IsMonochromacy reports whether d is Achromatomaly or Achromatopsia.
func (d Deficiency) IsMonochromacy() bool {
	return d == Achromatomaly || d == Achromatopsia
}

// String returns the lower-case medical name, e.g. "deuteranopia".
func (d Deficiency) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Deficiency(%d)", uint8(d))
	}
	return deficiencyNames[d]
}

// Description returns a plain-language name, e.g. "green-blind".
func (d Deficiency) Description() string {
	if !d.Valid() {
		return ""
	}
	return deficiencyDescriptions[d]
}

// Title returns the name and description for display,
// e.g. "Deuteranopia (Green-Blind)".
func (d Deficiency) Title() string {
	if !d.Valid() {
		return d.String()
	}
	title := cases.Title(language.English)
	return title.String(d.String()) + " (" + title.String(d.Description()) + ")"
}

// ParseDeficiency looks up a deficiency by its medical name or its
// description. Matching ignores case.
func ParseDeficiency(name string) (Deficiency, error) {
	fold := cases.Fold()
	key := fold.String(name)
	for _, d := range All() {
		if key == fold.String(d.String()) || key == fold.String(d.Description()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedCategory, name)
}

func checkDeficiency(d Deficiency) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedCategory, d)
	}
	return nil
}
