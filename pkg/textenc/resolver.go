package textenc

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/emersion/go-message/charset"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Resolve decodes raw bytes of unknown provenance into text. Valid UTF-8
// passes through; otherwise statistical detection is tried, then a fixed
// candidate chain, then a replace-decode that always succeeds. It never
// fails and never panics.
func Resolve(raw []byte) string {
	// UTF-8 signature carries no content; strip it before any decoding so
	// it cannot leak into the resolved text.
	raw = bytes.TrimPrefix(raw, utf8BOM)

	// Valid UTF-8 is unambiguous; running it through the statistical
	// detector could only misdetect and mangle it.
	if utf8.Valid(raw) {
		return string(raw)
	}

	if text, ok := detectAndDecode(raw); ok {
		return text
	}
	if text, ok := decodeCandidates(raw); ok {
		return text
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

// detectAndDecode guesses the charset statistically and decodes by name.
func detectAndDecode(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil || result == nil || result.Charset == "" {
		return "", false
	}

	return decodeAs(result.Charset, raw)
}

// decodeAs decodes raw with a named charset, via the message charset registry.
func decodeAs(name string, raw []byte) (string, bool) {
	r, err := charset.Reader(strings.ToLower(name), bytes.NewReader(raw))
	if err != nil {
		return "", false
	}

	decoded, err := io.ReadAll(r)
	if err != nil || !utf8.Valid(decoded) {
		return "", false
	}

	return string(decoded), true
}

// decodeCandidates walks the fixed encoding chain, first success wins.
func decodeCandidates(raw []byte) (string, bool) {
	if utf8.Valid(raw) {
		return string(raw), true
	}

	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		if decoded, err := cm.NewDecoder().Bytes(raw); err == nil {
			return string(decoded), true
		}
	}

	return "", false
}
