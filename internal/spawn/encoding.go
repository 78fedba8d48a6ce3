package spawn

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// The unicode-stream overrides exist for targets that speak UTF-16 on
// their standard streams (the common case for Windows-unicode programs).
// Output and error are decoded to UTF-8 for the parent console; input is
// encoded the other way. BOM-aware, little-endian by default.

func utf8OutputWriter(w io.Writer) io.Writer {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	return transform.NewWriter(w, dec)
}

func utf16InputReader(r io.Reader) io.Reader {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	return transform.NewReader(r, enc)
}
