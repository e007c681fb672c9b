package base64

import (
	enc "encoding/base64"
	"fmt"
	"strings"
)

// DataURI encodes raw bytes into a self contained data URI. The memory storage
// backend stores uploads this way when the filesystem is read only.
func DataURI(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, enc.StdEncoding.EncodeToString(data))
}

// GetContentType extracts the MIME type from a data URI.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// IsDataURI reports whether src is a data URI rather than a URL or path.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}
