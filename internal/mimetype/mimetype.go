// Package mimetype normalizes source media types to the Crossref-approved
// mime type vocabulary.
package mimetype

import "strings"

// crossrefMimeTypes maps lowercased source media types to the value
// accepted by the deposit schema. Types map to themselves when already
// approved.
var crossrefMimeTypes = map[string]string{
	"application/pdf":               "application/pdf",
	"application/xml":               "application/xml",
	"application/json":              "application/json",
	"application/zip":               "application/zip",
	"application/msword":            "application/msword",
	"application/vnd.ms-excel":      "application/vnd.ms-excel",
	"application/vnd.ms-powerpoint": "application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/x-m":       "application/x-m",
	"application/x-r":       "application/x-r",
	"chemical/x-pdb":        "chemical/x-pdb",
	"image/gif":             "image/gif",
	"image/jpeg":            "image/jpeg",
	"image/png":             "image/png",
	"image/tiff":            "image/tiff",
	"text/csv":              "text/csv",
	"text/html":             "text/html",
	"text/plain":            "text/plain",
	"text/rtf":              "text/rtf",
	"text/tab-separated-values": "text/tab-separated-values",
	"video/avi":                 "video/avi",
	"video/mp4":                 "video/mp4",
	"video/mpeg":                "video/mpeg",
	"video/quicktime":           "video/quicktime",
	"audio/mpeg":                "audio/mpeg",
	"audio/wav":                 "audio/wav",

	// Common source aliases
	"text/xml":        "application/xml",
	"image/jpg":       "image/jpeg",
	"image/tif":       "image/tiff",
	"video/x-msvideo": "video/avi",
	"application/doc": "application/msword",
	"application/docx": "application/vnd.openxmlformats-officedocument." +
		"wordprocessingml.document",
	"application/xlsx": "application/vnd.openxmlformats-officedocument." +
		"spreadsheetml.sheet",
}

// Crossref returns the approved mime type for a source media type, or ""
// when there is no approved equivalent. Callers omit the format element
// entirely on "".
func Crossref(mimeType string) string {
	return crossrefMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))]
}
