package constants

import "strings"

// AllowedMediaTypes holds the media types the extraction provider accepts
// for document photos and scans.
var AllowedMediaTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/pdf": {},
}

// NormalizeMediaType lowercases and strips any media-type parameters
// (e.g. "image/JPEG; charset=binary" -> "image/jpeg").
func NormalizeMediaType(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// IsAllowedMediaType reports whether the declared media type can be sent
// to the extraction provider.
func IsAllowedMediaType(mt string) bool {
	_, ok := AllowedMediaTypes[NormalizeMediaType(mt)]
	return ok
}
