package security_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"go-pestcontrol-web/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestValidateAttachment(t *testing.T) {
	t.Run("valid png passes", func(t *testing.T) {
		res := security.ValidateAttachment("kitchen.png", encodePNG(t), "image/png")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Error)
		assert.Equal(t, ".png", res.Extension)
	})

	t.Run("valid jpeg passes", func(t *testing.T) {
		res := security.ValidateAttachment("kitchen.jpg", encodeJPEG(t), "image/jpeg")
		assert.True(t, res.Valid)
	})

	t.Run("oversized file rejected before anything else", func(t *testing.T) {
		big := make([]byte, 6<<20) // 6 MiB
		res := security.ValidateAttachment("big.png", big, "image/png")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "too large")
	})

	t.Run("disallowed extension rejected", func(t *testing.T) {
		res := security.ValidateAttachment("report.pdf", []byte("%PDF-1.7"), "application/pdf")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "not allowed")
	})

	t.Run("spoofed extension rejected by magic bytes", func(t *testing.T) {
		res := security.ValidateAttachment("photo.jpg", encodePNG(t), "image/jpeg")
		assert.False(t, res.Valid)
		assert.Contains(t, res.Error, "does not match extension")
	})

	t.Run("octet-stream MIME rejected", func(t *testing.T) {
		res := security.ValidateAttachment("photo.png", encodePNG(t), "application/octet-stream")
		assert.False(t, res.Valid)
	})

	t.Run("truncated image rejected by decode check", func(t *testing.T) {
		data := encodePNG(t)[:12] // magic bytes intact, header is not
		res := security.ValidateAttachment("photo.png", data, "image/png")
		assert.False(t, res.Valid)
	})
}
