package constants

import "strings"

// Format is the closed set of document formats the extractor understands.
type Format string

const (
	PDF   Format = "PDF"
	DOCX  Format = "DOCX"
	IMAGE Format = "IMAGE"
	TEXT  Format = "TEXT"
)

// Formats holds the allowed file types for the format field in PredictJob.
var Formats = []string{string(PDF), string(DOCX), string(IMAGE), string(TEXT)}

// AllowedExtensions holds the default allowed file extensions for document upload.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"docx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
	"txt":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its Format. Unknown
// extensions map to TEXT: the extractor attempts a plain-text decode on
// anything it has no dedicated handler for.
func MapExtToFormat(ext string) Format {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "docx":
		return DOCX
	case "jpg", "jpeg", "png", "tiff":
		return IMAGE
	default:
		return TEXT
	}
}
