// Package xyz2sgf converts legacy Go game records in the GIB, NGF and
// UGF/UGI formats into SGF.
//
// A conversion is a pure pipeline over one input buffer:
// detect -> decode -> parse -> normalize -> serialize. The package keeps no
// state between calls, so independent files may be converted concurrently.
package xyz2sgf

// Options configures a single conversion. The zero value detects the
// format from the file content and treats the input as UTF-8.
type Options struct {
	// Format names the source format. FormatAuto lets Convert detect it
	// from the filename extension or the content signature.
	Format Format
	// Encoding names the source byte encoding. The default is strict
	// UTF-8: when the caller does not know the encoding, the conversion
	// fails rather than guessing.
	Encoding Encoding
	// Filename, when known, drives detection and error reporting.
	Filename string
}

// Convert turns one legacy game record into SGF text. Warnings are only
// produced for UGF input, whose recoverable per-record anomalies do not
// abort the conversion; a non-nil error means no SGF was produced.
func Convert(raw []byte, opts Options) (string, []Warning, error) {
	format := opts.Format
	if format == FormatAuto {
		var err error
		format, err = Detect(opts.Filename, raw)
		if err != nil {
			return "", nil, err
		}
	}
	if len(raw) == 0 {
		return "", nil, &DetectError{Filename: opts.Filename, Reason: "empty input"}
	}

	text, err := Decode(raw, opts.Encoding)
	if err != nil {
		return "", nil, err
	}

	var rec *GameRecord
	var warnings []Warning
	switch format {
	case FormatGIB:
		rec, err = parseGIB(text)
	case FormatNGF:
		rec, err = parseNGF(text)
	case FormatUGF:
		rec, warnings, err = parseUGF(text)
	default:
		return "", nil, &DetectError{Filename: opts.Filename, Reason: "unknown source format"}
	}
	if err != nil {
		return "", warnings, err
	}

	if err := normalizeRecord(rec, format); err != nil {
		return "", warnings, err
	}
	return Serialize(rec), warnings, nil
}
