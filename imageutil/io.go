package imageutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// Decoded is an image together with what was learned while decoding it.
type Decoded struct {
	Image       *image.NRGBA
	Format      string
	Orientation int
}

// LoadImage loads an image from the specified path, "-" meaning standard
// input. Supports PNG, JPEG, GIF, BMP, TIFF and WebP. EXIF orientation is
// applied, so the returned image is upright.
func LoadImage(path string) (*Decoded, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return DecodeImage(data)
}

// DecodeImage decodes an encoded image held in memory, see LoadImage.
func DecodeImage(data []byte) (*Decoded, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	orient := ExifOrientation(bytes.NewReader(data))
	return &Decoded{
		Image:       Orient(img, orient),
		Format:      format,
		Orientation: orient,
	}, nil
}

// SavePNG saves an image as PNG to the specified path.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return f.Close()
}
