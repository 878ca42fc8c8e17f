package quiz

import (
	"sort"
	"strings"
)

// Codec serializes the quiz document format to and from bytes. Codecs
// register by file extension; decoding returns the raw document without
// normalizing or validating it.
type Codec interface {
	Decode(data []byte) (Quiz, error)
	Encode(z Quiz) ([]byte, error)
	// Ext is the canonical extension including the dot, e.g. ".json".
	Ext() string
}

// DefaultExt is the extension used when saving a topic whose name does not
// already carry one.
const DefaultExt = ".json"

var registry = map[string]Codec{}

// RegisterCodec binds a codec to an extension. Call from init.
func RegisterCodec(ext string, c Codec) { registry[strings.ToLower(ext)] = c }

// LookupCodec returns the codec registered for an extension, if any.
func LookupCodec(ext string) (Codec, bool) {
	c, ok := registry[strings.ToLower(ext)]
	return c, ok
}

// CodecExts lists every registered extension, sorted.
func CodecExts() []string {
	exts := make([]string, 0, len(registry))
	for e := range registry {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}
