package detection

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
)

var ErrUnsupportedImage = errors.New("unsupported image")

const (
	// MaxProcessWidth is the widest image handed to a detector.
	MaxProcessWidth = 640
	// MaxImagePixels bounds width*height before any pixel is decoded, since a
	// small compressed file can expand to gigabytes.
	MaxImagePixels = 40_000_000
)

// DecodeImage sniffs the content and decodes JPEG or PNG data of at most
// MaxImagePixels. It returns the detected MIME type alongside the image.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	mt := mimetype.Detect(data)

	var (
		decodeConfig func(io.Reader) (image.Config, error)
		decode       func(io.Reader) (image.Image, error)
	)
	switch {
	case mt.Is("image/jpeg"):
		decodeConfig, decode = jpeg.DecodeConfig, jpeg.Decode
	case mt.Is("image/png"):
		decodeConfig, decode = png.DecodeConfig, png.Decode
	default:
		return nil, mt.String(), fmt.Errorf("%w: %s (want image/jpeg or image/png)", ErrUnsupportedImage, mt.String())
	}

	cfg, err := decodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, mt.String(), fmt.Errorf("%w: decode %s header: %v", ErrUnsupportedImage, mt.String(), err)
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > MaxImagePixels {
		return nil, mt.String(), fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrUnsupportedImage, cfg.Width, cfg.Height, MaxImagePixels)
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, mt.String(), fmt.Errorf("%w: decode %s: %v", ErrUnsupportedImage, mt.String(), err)
	}
	return img, mt.String(), nil
}

// Preprocess scales img down to MaxProcessWidth keeping the aspect ratio.
// Narrower images are returned as is.
func Preprocess(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= MaxProcessWidth {
		return img
	}
	height := b.Dy() * MaxProcessWidth / b.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, MaxProcessWidth, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
