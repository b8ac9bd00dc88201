package security

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	// Registered decoders for the attachment whitelist. The webp
	// decoder lives outside the standard library.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MaxAttachmentBytes caps the optional contact form photo at 5 MiB.
const MaxAttachmentBytes = 5 << 20

// FileValidationResult contains the result of attachment validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // MIME type reported by the client
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed image types
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".webp": {{0x52, 0x49, 0x46, 0x46}}, // RIFF header
}

// Allowed extensions (strict whitelist; photos only)
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Strict MIME types - application/octet-stream is NOT accepted
var strictMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateAttachment performs 4-layer validation on a contact form photo:
// 1. Size cap
// 2. Extension whitelist
// 3. Magic byte verification (content matches extension)
// 4. The bytes actually decode as an image header
func ValidateAttachment(filename string, data []byte, declaredMIME string) FileValidationResult {
	result := FileValidationResult{
		DetectedMIME: declaredMIME,
	}

	if int64(len(data)) > MaxAttachmentBytes {
		result.Error = fmt.Sprintf("file too large: max %d MiB", MaxAttachmentBytes>>20)
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedExtensions[ext] {
		result.Error = "file type not allowed: " + ext
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "file content does not match extension"
		return result
	}

	if declaredMIME != "" && !strictMIMETypes[declaredMIME] {
		result.Error = "MIME type not allowed: " + declaredMIME
		return result
	}

	// Final layer: the image header must parse. Catches truncated or
	// spoofed files that happen to carry the right prefix.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		result.Error = "file is not a decodable image"
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}
