package winepaint

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Attribute names one scalar field of an AttributeRecord.
type Attribute int

// Scalar attributes. The structural block and the aroma block are all
// normalized intensities in [0, 1].
const (
	Acidity Attribute = iota
	Body
	Tannin
	Depth
	Sweetness
	Oak
	Mineral
	Herbal
	Spice
	FruitCitrus
	FruitStone
	FruitTropical
	FruitRed
	FruitDark
	Effervescence

	numAttributes
)

var attributeNames = [numAttributes]string{
	Acidity:       "acidity",
	Body:          "body",
	Tannin:        "tannin",
	Depth:         "depth",
	Sweetness:     "sweetness",
	Oak:           "oak",
	Mineral:       "mineral",
	Herbal:        "herbal",
	Spice:         "spice",
	FruitCitrus:   "fruit_citrus",
	FruitStone:    "fruit_stone",
	FruitTropical: "fruit_tropical",
	FruitRed:      "fruit_red",
	FruitDark:     "fruit_dark",
	Effervescence: "effervescence",
}

// String returns the JSON key of the attribute.
func (a Attribute) String() string {
	if a < 0 || a >= numAttributes {
		return "attribute(" + strconv.Itoa(int(a)) + ")"
	}
	return attributeNames[a]
}

// attributeDefaults holds the value substituted for a missing or
// non-numeric field.
var attributeDefaults = [numAttributes]float64{
	Acidity:   0.5,
	Body:      0.5,
	Tannin:    0.2,
	Depth:     0.4,
	Sweetness: 0.1,
	Mineral:   0.2,
}

// AttributeRecord is the sensory and visual description of one wine.
// It is treated as immutable for the duration of a render.
//
// The zero value is not the default record: every field is zero and
// BaseColor is black, a valid color. Start from DefaultAttributes (or
// decode JSON, which does) to get the documented defaults for fields you
// do not set.
type AttributeRecord struct {
	// BaseColor is the flat liquid color before any gradient. The zero
	// RGB is black; DefaultBaseColor is applied only by DefaultAttributes
	// and the JSON decoder.
	BaseColor RGB

	// Family selects red, rosé or white treatment. FamilyAuto classifies
	// from BaseColor.
	Family Family

	Acidity   float64
	Body      float64
	Tannin    float64
	Depth     float64
	Sweetness float64

	Oak           float64
	Mineral       float64
	Herbal        float64
	Spice         float64
	FruitCitrus   float64
	FruitStone    float64
	FruitTropical float64
	FruitRed      float64
	FruitDark     float64

	Effervescence float64

	// ResidualSugar is in grams per liter. It is not clamped here; the
	// sugar bar clamps it when mapping to its log scale.
	ResidualSugar float64
}

// DefaultAttributes returns a record with every field at its documented
// default.
func DefaultAttributes() AttributeRecord {
	var r AttributeRecord
	r.BaseColor = DefaultBaseColor
	r.Family = FamilyAuto
	for a := Attribute(0); a < numAttributes; a++ {
		*r.field(a) = attributeDefaults[a]
	}
	return r
}

func (r *AttributeRecord) field(a Attribute) *float64 {
	switch a {
	case Acidity:
		return &r.Acidity
	case Body:
		return &r.Body
	case Tannin:
		return &r.Tannin
	case Depth:
		return &r.Depth
	case Sweetness:
		return &r.Sweetness
	case Oak:
		return &r.Oak
	case Mineral:
		return &r.Mineral
	case Herbal:
		return &r.Herbal
	case Spice:
		return &r.Spice
	case FruitCitrus:
		return &r.FruitCitrus
	case FruitStone:
		return &r.FruitStone
	case FruitTropical:
		return &r.FruitTropical
	case FruitRed:
		return &r.FruitRed
	case FruitDark:
		return &r.FruitDark
	case Effervescence:
		return &r.Effervescence
	}
	return nil
}

// Intensity returns the value of a scalar attribute, or 0 for an unknown
// attribute.
func (r AttributeRecord) Intensity(a Attribute) float64 {
	p := r.field(a)
	if p == nil {
		return 0
	}
	return *p
}

// Clamp returns a copy with every scalar in [0, 1]. NaN becomes the field
// default. ResidualSugar is left as is apart from NaN, infinities and
// negative values, which become 0. Clamping a clamped record is a no-op.
func (r AttributeRecord) Clamp() AttributeRecord {
	for a := Attribute(0); a < numAttributes; a++ {
		p := r.field(a)
		if math.IsNaN(*p) {
			*p = attributeDefaults[a]
		}
		*p = clamp01(*p)
	}
	if math.IsNaN(r.ResidualSugar) || math.IsInf(r.ResidualSugar, 0) || r.ResidualSugar < 0 {
		r.ResidualSugar = 0
	}
	return r
}

// jsonKeys lists accepted keys per attribute. The first entry is the one
// written by MarshalJSON; the rest are aliases used by upstream producers.
var jsonKeys = [numAttributes][]string{
	Acidity:       {"acidity"},
	Body:          {"body"},
	Tannin:        {"tannin"},
	Depth:         {"depth"},
	Sweetness:     {"sweetness"},
	Oak:           {"oak", "oak_intensity"},
	Mineral:       {"mineral", "mineral_intensity"},
	Herbal:        {"herbal", "herbal_intensity", "herbs"},
	Spice:         {"spice", "spice_intensity"},
	FruitCitrus:   {"fruit_citrus"},
	FruitStone:    {"fruit_stone"},
	FruitTropical: {"fruit_tropical"},
	FruitRed:      {"fruit_red"},
	FruitDark:     {"fruit_dark"},
	Effervescence: {"effervescence"},
}

// UnmarshalJSON decodes a record leniently. Missing, null or non-numeric
// fields take their default, numeric strings are accepted, and a malformed
// base color falls back to DefaultBaseColor. It only fails when data is not
// a JSON object.
func (r *AttributeRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = DefaultAttributes()

	for a := Attribute(0); a < numAttributes; a++ {
		for _, key := range jsonKeys[a] {
			if v, ok := decodeNumber(raw[key]); ok {
				*r.field(a) = v
				break
			}
		}
	}
	if v, ok := decodeNumber(raw["residual_sugar"]); ok {
		r.ResidualSugar = v
	}

	for _, key := range []string{"base_color", "base_color_hex"} {
		msg, present := raw[key]
		if !present || string(msg) == "null" {
			continue
		}
		if c, ok := decodeColor(msg); ok {
			r.BaseColor = c
			break
		}
		Logger().Warn("winepaint: malformed base color, using default",
			slog.String("key", key), slog.String("value", string(msg)))
	}

	for _, key := range []string{"wine_family", "wine_type"} {
		var s string
		if err := json.Unmarshal(raw[key], &s); err == nil && s != "" {
			r.Family = ParseFamily(s)
			break
		}
	}
	return nil
}

// MarshalJSON writes the canonical key names.
func (r AttributeRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, numAttributes+3)
	out["base_color"] = r.BaseColor.Hex()
	out["wine_family"] = r.Family.String()
	for a := Attribute(0); a < numAttributes; a++ {
		out[jsonKeys[a][0]] = r.Intensity(a)
	}
	out["residual_sugar"] = r.ResidualSugar
	return json.Marshal(out)
}

func decodeNumber(msg json.RawMessage) (float64, bool) {
	if len(msg) == 0 {
		return 0, false
	}
	var v any
	if err := json.Unmarshal(msg, &v); err != nil {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func decodeColor(msg json.RawMessage) (RGB, bool) {
	if len(msg) == 0 {
		return RGB{}, false
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return resolveColor(s)
	}
	var triple []float64
	if err := json.Unmarshal(msg, &triple); err == nil && len(triple) == 3 {
		var c [3]uint8
		for i, v := range triple {
			if math.IsNaN(v) {
				return RGB{}, false
			}
			c[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
		}
		return RGB{R: c[0], G: c[1], B: c[2]}, true
	}
	return RGB{}, false
}
