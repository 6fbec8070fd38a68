package winepaint

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Family selects the gradient and tint treatment of a render.
type Family int

const (
	// FamilyAuto defers to Classify.
	FamilyAuto Family = iota
	FamilyRed
	FamilyRose
	FamilyWhite
)

// String returns the canonical lower-case family name.
func (f Family) String() string {
	switch f {
	case FamilyRed:
		return "red"
	case FamilyRose:
		return "rosé"
	case FamilyWhite:
		return "white"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode
// to FamilyAuto.
func (f *Family) UnmarshalText(text []byte) error {
	*f = ParseFamily(string(text))
	return nil
}

// ParseFamily maps a family name to a Family. Matching ignores case and
// accents: "Rosé", "ROSE" and "rose" are all FamilyRose. Anything
// unrecognised is FamilyAuto.
func ParseFamily(s string) Family {
	switch foldName(s) {
	case "red", "rot", "rotwein":
		return FamilyRed
	case "rose", "rosato", "rosado":
		return FamilyRose
	case "white", "weiss", "weisswein", "blanc":
		return FamilyWhite
	default:
		return FamilyAuto
	}
}

// foldName case-folds s (ß becomes ss), strips combining marks and
// collapses whitespace.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), cases.Fold(), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// Auto classification thresholds. These are a tunable heuristic on sRGB
// channel means, not a calibrated color model.
const (
	redBrightnessLimit  = 0.5
	roseBrightnessLimit = 0.7
	roseRedOverGreen    = 30
	roseGreenLimit      = 160
)

// Classify resolves the family for a render. An explicit family is returned
// unchanged; FamilyAuto is decided from the base color:
//
//   - red when mean brightness b < 0.5
//   - rosé when 0.5 <= b < 0.7, R > G+30 and G < 160
//   - white otherwise
func Classify(base RGB, explicit Family) Family {
	if explicit != FamilyAuto {
		return explicit
	}

	b := base.Brightness()
	switch {
	case b < redBrightnessLimit:
		return FamilyRed
	case b < roseBrightnessLimit &&
		int(base.R) > int(base.G)+roseRedOverGreen &&
		base.G < roseGreenLimit:
		return FamilyRose
	default:
		return FamilyWhite
	}
}
