// Package imageio handles the files a render touches: it writes PNG images
// and reads JSON attribute documents.
package imageio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// I/O errors.
var (
	// ErrEmptyData is returned when a file or buffer holds no data.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrNilImage is returned when asked to encode a nil image.
	ErrNilImage = errors.New("imageio: nil image")
)

// EncodePNG writes img to w as PNG at the given compression level.
func EncodePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	if img == nil {
		return ErrNilImage
	}
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(w, img); err != nil {
		return fmt.Errorf("imageio: encode PNG: %w", err)
	}
	return nil
}

// EncodeBytes returns img encoded as PNG.
func EncodeBytes(img image.Image, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, level); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes img to path as PNG, creating missing parent directories.
// A partially written file is removed on failure.
func SavePNG(path string, img image.Image, level png.CompressionLevel) error {
	path = filepath.Clean(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("imageio: create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := EncodePNG(f, img, level); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("imageio: close file: %w", err)
	}
	return nil
}

// LoadJSON decodes the JSON document at path into v.
func LoadJSON(path string, v any) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: read file: %w", err)
	}
	return DecodeJSON(data, v)
}

// DecodeJSON decodes a JSON document into v.
func DecodeJSON(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("imageio: decode JSON: %w", err)
	}
	return nil
}
