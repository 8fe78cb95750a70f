// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging turns uploaded avatars and task images into the single
// stored representation: a square PNG of a configured size.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // registers the jpeg decoder
	"image/png"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/models"
	"golang.org/x/image/draw"
)

var (
	ErrUnsupportedExtension = errors.New("please upload a jpg, jpeg or png image")
	ErrEmptyFile            = errors.New("please upload an image")
	ErrFileTooLarge         = errors.New("file is too large")
	ErrUndecodable          = errors.New("file is not a valid image")
	ErrImageTooLarge        = errors.New("image dimensions are too large")
)

// DefaultMaxPixels is used when the configuration sets no pixel limit.
const DefaultMaxPixels = 4096 * 4096

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Normalizer validates uploads and re-encodes them as size×size PNGs.
// It is safe for concurrent use.
type Normalizer struct {
	maxSize   int64
	maxPixels int64
	size      int
}

func NewNormalizer(cfg config.Uploads) *Normalizer {
	maxPixels := cfg.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	return &Normalizer{
		maxSize:   cfg.MaxSize,
		maxPixels: maxPixels,
		size:      cfg.ImageSize,
	}
}

// Normalize checks the extension (case-insensitive) and the size of upload,
// decodes it and scales it to cover a size×size square, cropping the
// overflow around the center.
//
// The dimensions are read from the header first: a small file may declare a
// huge image, and decoding allocates every pixel.
func (n *Normalizer) Normalize(upload models.Upload) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, ErrUnsupportedExtension
	}
	if len(upload.Data) == 0 {
		return nil, ErrEmptyFile
	}
	if n.maxSize > 0 && int64(len(upload.Data)) > n.maxSize {
		return nil, ErrFileTooLarge
	}

	header, format, err := image.DecodeConfig(bytes.NewReader(upload.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodable, err)
	}
	if format != "png" && format != "jpeg" {
		return nil, ErrUndecodable
	}
	if header.Width <= 0 || header.Height <= 0 {
		return nil, ErrUndecodable
	}
	if int64(header.Width)*int64(header.Height) > n.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, header.Width, header.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(upload.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodable, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, n.size, n.size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds()), draw.Src, nil)

	var buf bytes.Buffer
	if err = png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}

	return buf.Bytes(), nil
}

// coverRect returns the largest centered square inside b.
func coverRect(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w == h {
		return b
	}

	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
