package xyz2sgf

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Format identifies one of the supported legacy formats. The zero value
// FormatAuto asks Convert to detect the format itself.
type Format int

const (
	FormatAuto Format = iota
	FormatGIB
	FormatNGF
	FormatUGF
)

func (f Format) String() string {
	switch f {
	case FormatGIB:
		return "gib"
	case FormatNGF:
		return "ngf"
	case FormatUGF:
		return "ugf"
	default:
		return "auto"
	}
}

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "", "auto":
		return FormatAuto, nil
	case "gib":
		return FormatGIB, nil
	case "ngf":
		return FormatNGF, nil
	case "ugf", "ugi":
		return FormatUGF, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q", name)
}

// Detect identifies the source format from the file name extension, falling
// back to the file's own signature when the extension says nothing. It
// never guesses: misrouting a file corrupts the output with no visible
// error.
func Detect(filename string, header []byte) (Format, error) {
	if len(header) == 0 {
		return FormatAuto, &DetectError{Filename: filename, Reason: "empty input"}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gib":
		return FormatGIB, nil
	case ".ngf":
		return FormatNGF, nil
	case ".ugf", ".ugi":
		return FormatUGF, nil
	}
	return sniff(filename, header)
}

// sniff inspects the first bytes for each format's signature. All three
// signatures are plain ASCII, so sniffing works on the raw bytes before any
// charset decoding.
func sniff(filename string, header []byte) (Format, error) {
	text := string(header)

	// UGF files open with a [Header] section.
	if strings.Contains(strings.ToUpper(text), "[HEADER]") {
		return FormatUGF, nil
	}

	// GIB files carry backslash-bracketed header properties and STO/INI
	// game lines.
	if strings.Contains(text, `\HS`) || strings.Contains(text, `\[GAME`) {
		return FormatGIB, nil
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "STO ") || strings.HasPrefix(trimmed, "INI ") {
			return FormatGIB, nil
		}
	}

	// NGF has no magic string; its second line is the bare board size.
	if len(lines) > 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(lines[1])); err == nil && n >= 1 && n <= 19 {
			return FormatNGF, nil
		}
	}

	return FormatAuto, &DetectError{Filename: filename, Reason: "no known format signature"}
}
