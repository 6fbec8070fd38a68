package winepaint

import "testing"

func TestCanvasOffCanvas(t *testing.T) {
	c := NewCanvas(4)
	c.Fill(RGB{R: 10, G: 20, B: 30})

	points := []struct{ x, y int }{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, -100}}
	for _, p := range points {
		if got := c.At(p.x, p.y); got != ([3]float32{}) {
			t.Errorf("At(%d,%d) = %v, want zero", p.x, p.y, got)
		}
		c.Set(p.x, p.y, [3]float32{255, 255, 255})
		c.Blend(p.x, p.y, [3]float32{255, 255, 255}, 1)
	}
	for i := 0; i < len(c.Data()); i += 3 {
		if c.Data()[i] != 10 || c.Data()[i+1] != 20 || c.Data()[i+2] != 30 {
			t.Fatalf("off-canvas write changed sample %d", i/3)
		}
	}
}

func TestCanvasBlend(t *testing.T) {
	tests := []struct {
		name  string
		alpha float32
		want  float32
	}{
		{"transparent", 0, 100},
		{"half", 0.5, 150},
		{"opaque", 1, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(2)
			c.Set(1, 1, [3]float32{100, 100, 100})
			c.Blend(1, 1, [3]float32{200, 200, 200}, tt.alpha)
			if got := c.At(1, 1)[0]; !near(float64(got), float64(tt.want), 1e-4) {
				t.Errorf("Blend alpha %v = %v, want %v", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestCanvasQuantize(t *testing.T) {
	c := NewCanvas(1)
	c.Set(0, 0, [3]float32{-12.5, 127.9, 300})
	c.Quantize()
	want := [3]float32{0, 127, 255}
	if got := c.At(0, 0); got != want {
		t.Errorf("Quantize = %v, want %v", got, want)
	}
}

func TestCanvasToImage(t *testing.T) {
	c := NewCanvas(3)
	c.Set(2, 1, [3]float32{-5, 64.7, 999})
	img := c.ToImage()

	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	px := img.RGBAAt(2, 1)
	if px.R != 0 || px.G != 64 || px.B != 255 || px.A != 255 {
		t.Errorf("pixel = %+v", px)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			t.Fatalf("alpha at %d = %d, want opaque", i/4, img.Pix[i])
		}
	}
}

func TestCanvasClone(t *testing.T) {
	c := NewCanvas(2)
	c.Fill(RGB{R: 1, G: 2, B: 3})
	d := c.Clone()
	d.Set(0, 0, [3]float32{9, 9, 9})

	if c.At(0, 0)[0] != 1 {
		t.Error("Clone shares storage with the original")
	}
	if d.Size() != c.Size() {
		t.Errorf("Clone size = %d, want %d", d.Size(), c.Size())
	}
}
