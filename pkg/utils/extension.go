package utils

import "strings"

// extensionByMIME maps the MIME types this service is expected to see to
// their typical file extensions.
var extensionByMIME = map[string]string{
	"image/bmp":     ".bmp",
	"image/gif":     ".gif",
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/svg+xml": ".svg",
	"image/tiff":    ".tif",
	"image/webp":    ".webp",
	"image/x-icon":  ".ico",
	"image/heic":    ".heic",
	"image/avif":    ".avif",
}

// ExtensionByMIME returns a common file extension for a given MIME type.
// If no specific extension is known, it defaults to ".bin".
func ExtensionByMIME(mimeType string) string {
	// Remove parameters if present (e.g., "image/svg+xml; charset=utf-8")
	cleaned := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := extensionByMIME[cleaned]; ok {
		return ext
	}

	return ".bin"
}
