package winepaint

import (
	"encoding/json"
	"math"
	"testing"
)

func TestDefaultAttributes(t *testing.T) {
	r := DefaultAttributes()
	if r.BaseColor != DefaultBaseColor {
		t.Errorf("BaseColor = %v, want %v", r.BaseColor, DefaultBaseColor)
	}
	if r.Family != FamilyAuto {
		t.Errorf("Family = %v, want auto", r.Family)
	}
	want := map[Attribute]float64{
		Acidity: 0.5, Body: 0.5, Tannin: 0.2, Depth: 0.4, Sweetness: 0.1,
		Mineral: 0.2, Oak: 0, FruitDark: 0, Effervescence: 0,
	}
	for a, v := range want {
		if got := r.Intensity(a); got != v {
			t.Errorf("%v = %v, want %v", a, got, v)
		}
	}
	if r.ResidualSugar != 0 {
		t.Errorf("ResidualSugar = %v, want 0", r.ResidualSugar)
	}
}

func TestAttributeRecord_ZeroValueIsBlack(t *testing.T) {
	var zero AttributeRecord
	if zero.BaseColor != (RGB{}) {
		t.Errorf("zero BaseColor = %v, want black", zero.BaseColor)
	}
	if got := Classify(zero.BaseColor, zero.Family); got != FamilyRed {
		t.Errorf("zero record classifies as %v, want red", got)
	}

	tests := []struct {
		name string
		data string
		want RGB
	}{
		{"absent", `{}`, DefaultBaseColor},
		{"explicit black", `{"base_color": "#000000"}`, RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r AttributeRecord
			if err := json.Unmarshal([]byte(tt.data), &r); err != nil {
				t.Fatal(err)
			}
			if r.BaseColor != tt.want {
				t.Errorf("BaseColor = %v, want %v", r.BaseColor, tt.want)
			}
		})
	}
}

func TestAttributeRecord_Clamp(t *testing.T) {
	r := DefaultAttributes()
	r.Acidity = 1.7
	r.Body = -0.2
	r.Tannin = math.NaN()
	r.FruitRed = math.Inf(1)
	r.ResidualSugar = 900

	c := r.Clamp()
	if c.Acidity != 1 || c.Body != 0 || c.FruitRed != 1 {
		t.Errorf("clamped acidity/body/fruit_red = %v/%v/%v, want 1/0/1", c.Acidity, c.Body, c.FruitRed)
	}
	if c.Tannin != 0.2 {
		t.Errorf("NaN tannin clamped to %v, want default 0.2", c.Tannin)
	}
	if c.ResidualSugar != 900 {
		t.Errorf("ResidualSugar = %v, want it left at 900", c.ResidualSugar)
	}
	if cc := c.Clamp(); cc != c {
		t.Errorf("Clamp is not idempotent: %+v != %+v", cc, c)
	}
	if r.Acidity != 1.7 {
		t.Error("Clamp modified its receiver")
	}
}

func TestAttributeRecord_ClampSugar(t *testing.T) {
	for _, v := range []float64{-4, math.NaN(), math.Inf(1), math.Inf(-1)} {
		r := DefaultAttributes()
		r.ResidualSugar = v
		if got := r.Clamp().ResidualSugar; got != 0 {
			t.Errorf("Clamp(sugar=%v) = %v, want 0", v, got)
		}
	}
}

func TestAttributeRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, r AttributeRecord)
	}{
		{
			name: "empty object gives defaults",
			data: `{}`,
			check: func(t *testing.T, r AttributeRecord) {
				if r != DefaultAttributes() {
					t.Errorf("got %+v, want defaults", r)
				}
			},
		},
		{
			name: "original key names",
			data: `{"base_color_hex": "#8B1A1A", "wine_type": "red", "oak_intensity": 0.6,
				"mineral_intensity": "0.3", "herbal_intensity": 0.25, "spice_intensity": 0.4,
				"residual_sugar": 12.5}`,
			check: func(t *testing.T, r AttributeRecord) {
				if r.BaseColor != (RGB{0x8B, 0x1A, 0x1A}) || r.Family != FamilyRed {
					t.Errorf("color/family = %v/%v", r.BaseColor, r.Family)
				}
				if r.Oak != 0.6 || r.Mineral != 0.3 || r.Herbal != 0.25 || r.Spice != 0.4 {
					t.Errorf("aromas = %v %v %v %v", r.Oak, r.Mineral, r.Herbal, r.Spice)
				}
				if r.ResidualSugar != 12.5 {
					t.Errorf("ResidualSugar = %v", r.ResidualSugar)
				}
			},
		},
		{
			name: "canonical names win over aliases",
			data: `{"oak": 0.9, "oak_intensity": 0.1, "base_color": "#808080", "base_color_hex": "#000000"}`,
			check: func(t *testing.T, r AttributeRecord) {
				if r.Oak != 0.9 {
					t.Errorf("Oak = %v, want 0.9", r.Oak)
				}
				if r.BaseColor != (RGB{0x80, 0x80, 0x80}) {
					t.Errorf("BaseColor = %v", r.BaseColor)
				}
			},
		},
		{
			name: "malformed values fall back",
			data: `{"base_color": "#12", "acidity": "sour", "body": null, "tannin": [1], "depth": true}`,
			check: func(t *testing.T, r AttributeRecord) {
				if r.BaseColor != DefaultBaseColor {
					t.Errorf("BaseColor = %v, want default", r.BaseColor)
				}
				if r.Acidity != 0.5 || r.Body != 0.5 || r.Tannin != 0.2 {
					t.Errorf("acidity/body/tannin = %v/%v/%v, want defaults", r.Acidity, r.Body, r.Tannin)
				}
				if r.Depth != 1 {
					t.Errorf("Depth = %v, want 1 from true", r.Depth)
				}
			},
		},
		{
			name: "rgb triple and named color",
			data: `{"base_color": [139, 26, 300.2], "wine_family": "Rosé"}`,
			check: func(t *testing.T, r AttributeRecord) {
				if r.BaseColor != (RGB{139, 26, 255}) {
					t.Errorf("BaseColor = %v", r.BaseColor)
				}
				if r.Family != FamilyRose {
					t.Errorf("Family = %v", r.Family)
				}
			},
		},
		{
			name: "named color",
			data: `{"base_color": "Garnet"}`,
			check: func(t *testing.T, r AttributeRecord) {
				if r.BaseColor != namedColors["garnet"] {
					t.Errorf("BaseColor = %v", r.BaseColor)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r AttributeRecord
			if err := json.Unmarshal([]byte(tt.data), &r); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			tt.check(t, r)
		})
	}
}

func TestAttributeRecord_UnmarshalJSONRejectsNonObject(t *testing.T) {
	var r AttributeRecord
	if err := json.Unmarshal([]byte(`[1, 2]`), &r); err == nil {
		t.Error("Unmarshal(array) error = nil")
	}
}

func TestAttributeRecord_MarshalJSON(t *testing.T) {
	r := DefaultAttributes()
	r.BaseColor = RGB{0x7B, 0x2D, 0x26}
	r.Family = FamilyRed
	r.FruitDark = 0.8
	r.ResidualSugar = 4

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var back AttributeRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != r {
		t.Errorf("round trip = %+v, want %+v", back, r)
	}
}

func TestAttribute_String(t *testing.T) {
	if Mineral.String() != "mineral" || FruitDark.String() != "fruit_dark" {
		t.Errorf("names = %q %q", Mineral, FruitDark)
	}
	if got := Attribute(99).String(); got != "attribute(99)" {
		t.Errorf("Attribute(99) = %q", got)
	}
}
