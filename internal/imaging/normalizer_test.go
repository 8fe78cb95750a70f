// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/MKhiriev/task-manager/internal/config"
	"github.com/MKhiriev/task-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func newTestNormalizer() *Normalizer {
	return NewNormalizer(config.Uploads{MaxSize: 1 << 20, ImageSize: 250})
}

func TestNormalize_ProducesSquarePNG(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name   string
		upload models.Upload
	}{
		{name: "png", upload: models.Upload{Filename: "a.png", Data: encodePNG(t, testImage(40, 40))}},
		{name: "upper-case jpg", upload: models.Upload{Filename: "A.JPG", Data: encodeJPEG(t, testImage(300, 120))}},
		{name: "jpeg", upload: models.Upload{Filename: "photo.jpeg", Data: encodeJPEG(t, testImage(64, 500))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := n.Normalize(tt.upload)
			require.NoError(t, err)

			img, format, err := image.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, "png", format)
			assert.Equal(t, image.Rect(0, 0, 250, 250), img.Bounds())
		})
	}
}

func TestNormalize_Rejects(t *testing.T) {
	var gifBuf bytes.Buffer
	require.NoError(t, gif.Encode(&gifBuf, testImage(10, 10), nil))

	n := NewNormalizer(config.Uploads{MaxSize: 2048, ImageSize: 250})

	tests := []struct {
		name    string
		upload  models.Upload
		wantErr error
	}{
		{name: "gif extension", upload: models.Upload{Filename: "a.gif", Data: gifBuf.Bytes()}, wantErr: ErrUnsupportedExtension},
		{name: "no extension", upload: models.Upload{Filename: "avatar", Data: []byte{1}}, wantErr: ErrUnsupportedExtension},
		{name: "empty", upload: models.Upload{Filename: "a.png"}, wantErr: ErrEmptyFile},
		{name: "too large", upload: models.Upload{Filename: "a.png", Data: make([]byte, 2049)}, wantErr: ErrFileTooLarge},
		{name: "not an image", upload: models.Upload{Filename: "a.png", Data: []byte("hello")}, wantErr: ErrUndecodable},
		{name: "gif renamed to png", upload: models.Upload{Filename: "a.png", Data: gifBuf.Bytes()}, wantErr: ErrUndecodable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := n.Normalize(tt.upload)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// pngWithDimensions returns a valid 1×1 PNG whose header claims w×h pixels.
// Only the header is rewritten, so the file stays a few dozen bytes.
func pngWithDimensions(t *testing.T, w, h uint32) []byte {
	t.Helper()

	data := encodePNG(t, image.NewGray(image.Rect(0, 0, 1, 1)))
	// signature (8) + IHDR length (4) + "IHDR" (4), then width and height
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	// the CRC covers the chunk type and its 13 data bytes
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func TestNormalize_PixelLimit(t *testing.T) {
	t.Run("huge declared dimensions rejected before decoding", func(t *testing.T) {
		n := newTestNormalizer()
		data := pngWithDimensions(t, 16000, 16000)
		require.Less(t, len(data), 1<<10)

		out, err := n.Normalize(models.Upload{Filename: "bomb.png", Data: data})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, ErrImageTooLarge)
	})

	t.Run("configured limit", func(t *testing.T) {
		n := NewNormalizer(config.Uploads{MaxSize: 1 << 20, ImageSize: 250, MaxPixels: 100})

		_, err := n.Normalize(models.Upload{Filename: "a.png", Data: encodePNG(t, testImage(20, 20))})
		assert.ErrorIs(t, err, ErrImageTooLarge)

		_, err = n.Normalize(models.Upload{Filename: "a.png", Data: encodePNG(t, testImage(10, 10))})
		assert.NoError(t, err)
	})

	t.Run("default limit", func(t *testing.T) {
		assert.Equal(t, int64(DefaultMaxPixels), NewNormalizer(config.Uploads{}).maxPixels)
	})
}

func TestCoverRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 10, 10), coverRect(image.Rect(0, 0, 10, 10)))
	assert.Equal(t, image.Rect(5, 0, 15, 10), coverRect(image.Rect(0, 0, 20, 10)))
	assert.Equal(t, image.Rect(0, 5, 10, 15), coverRect(image.Rect(0, 0, 10, 20)))
}
