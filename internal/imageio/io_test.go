package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: 200, A: 255})
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := testImage()
	data, err := EncodeBytes(img, png.BestSpeed)
	if err != nil {
		t.Fatalf("EncodeBytes() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}

	dec, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	got, ok := dec.(*image.RGBA)
	if !ok {
		t.Fatalf("decoded %T, want *image.RGBA", dec)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Error("decoded pixels differ from the source")
	}
}

func TestEncodePNG_Nil(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, nil, png.DefaultCompression); !errors.Is(err, ErrNilImage) {
		t.Errorf("EncodePNG(nil) error = %v, want ErrNilImage", err)
	}
}

func TestSavePNG_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")
	if err := SavePNG(path, testImage(), png.DefaultCompression); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("png.DecodeConfig() error = %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestSavePNG_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := SavePNG(filepath.Join(blocker, "out.png"), testImage(), png.DefaultCompression); err == nil {
		t.Error("SavePNG() under a regular file succeeded")
	}
}

func TestLoadJSON_Missing(t *testing.T) {
	var v map[string]float64
	err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"), &v)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadJSON(missing) error = %v, want ErrNotExist", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	var v map[string]float64
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty", "", ErrEmptyData},
		{"blank", "  \n", ErrEmptyData},
		{"valid", `{"body": 0.7}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecodeJSON([]byte(tt.data), &v)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeJSON() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if err := DecodeJSON([]byte("{"), &v); err == nil {
		t.Error("DecodeJSON(truncated) error = nil")
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wine.json")
	if err := os.WriteFile(path, []byte(`{"acidity": 0.8}`), 0o600); err != nil {
		t.Fatal(err)
	}
	var v map[string]float64
	if err := LoadJSON(path, &v); err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	if v["acidity"] != 0.8 {
		t.Errorf("acidity = %v, want 0.8", v["acidity"])
	}
}
