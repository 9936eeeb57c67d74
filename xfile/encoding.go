package xfile

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names the byte encoding of a file on disk.
type Encoding uint8

const (
	// UTF8 files are stored as-is.
	UTF8 Encoding = iota
	// Windows1252 files are decoded to UTF-8 on load.
	Windows1252
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case Windows1252:
		return "windows-1252"
	default:
		return fmt.Sprintf("Encoding(%d)", e)
	}
}

// ParseEncoding accepts "utf-8"/"utf8" and "windows-1252"/"cp1252",
// case-insensitively.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "windows-1252", "cp1252":
		return Windows1252, nil
	default:
		return UTF8, fmt.Errorf("xfile: unknown encoding %q", name)
	}
}

func decode(e Encoding, data []byte) ([]byte, error) {
	switch e {
	case UTF8:
		return data, nil
	case Windows1252:
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err == nil && out == nil {
			out = []byte{}
		}
		return out, err
	default:
		return nil, fmt.Errorf("xfile: unsupported encoding %s", e)
	}
}
