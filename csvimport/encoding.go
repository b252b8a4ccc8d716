package csvimport

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	// UTF8 content may start with a byte order mark, which is removed
	UTF8 = "utf-8"

	// Windows1256 is the Arabic code page used by older spreadsheet exports
	Windows1256 = "windows-1256"

	// Latin1 is ISO 8859-1
	Latin1 = "iso-8859-1"
)

// Decoder returns a function wrapping a reader so it yields UTF-8 for the
// named encoding. An empty name means UTF-8.
func Decoder(encoding string) (func(io.Reader) io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", UTF8, "utf8":
		return func(in io.Reader) io.Reader {
			return unicode.UTF8BOM.NewDecoder().Reader(in)
		}, nil
	case Windows1256, "cp1256":
		return func(in io.Reader) io.Reader {
			return charmap.Windows1256.NewDecoder().Reader(in)
		}, nil
	case Latin1, "latin1":
		return func(in io.Reader) io.Reader {
			return charmap.ISO8859_1.NewDecoder().Reader(in)
		}, nil
	default:
		return nil, fmt.Errorf("encoding [%s] not supported", encoding)
	}
}
