package validation

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DefaultMaxFileSize bounds how large a schema document may be.
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB

// Loader reads schema documents and parses them into generic value
// trees (mappings, sequences and scalars). Format dispatch is by
// filename suffix: .json, .yml and .yaml are supported.
type Loader struct {
	maxFileSize int64
}

// NewLoader creates a loader with the default size limit.
func NewLoader() *Loader {
	return &Loader{maxFileSize: DefaultMaxFileSize}
}

// WithMaxFileSize sets the maximum document size in bytes.
func (l *Loader) WithMaxFileSize(size int64) *Loader {
	l.maxFileSize = size
	return l
}

// Load reads and parses the file at path. On success it returns the
// value tree and the raw bytes that produced it. On failure it returns
// a single finding at the document root; loader failures are fatal for
// the file and suppress all rule validators.
func (l *Loader) Load(path string) (doc any, raw []byte, verr *Error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, rootError(KindNotFound, fmt.Sprintf("'%s' not found", path))
	}
	if info.Size() > l.maxFileSize {
		return nil, nil, rootError(KindParseError,
			fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), l.maxFileSize))
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".yml", ".yaml":
	default:
		return nil, nil, rootError(KindUnsupportedFormat,
			fmt.Sprintf("'%s' of type '%s' not supported", path, ext))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, rootError(KindNotFound, fmt.Sprintf("'%s' not found", path))
	}

	doc, perr := Parse(data, ext)
	if perr != nil {
		return nil, nil, perr
	}
	return doc, data, nil
}

// Parse decodes raw document bytes for the given (lowercase) extension
// into a generic value tree. JSON numbers are preserved as json.Number
// so integer attributes survive without float rounding.
func Parse(data []byte, ext string) (any, *Error) {
	var doc any
	switch ext {
	case ".json":
		dec := gojson.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, rootError(KindParseError, "error parsing file")
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, rootError(KindParseError, "error parsing file")
		}
	default:
		return nil, rootError(KindUnsupportedFormat,
			fmt.Sprintf("extension '%s' not supported", ext))
	}
	return doc, nil
}

func rootError(kind Kind, message string) *Error {
	return &Error{Type: kind, ErrorAt: Path{}.String(), Message: message}
}
