package xyz2sgf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Encoding names a legacy byte encoding the codec adapter understands.
// The zero value is UTF-8, the default when no hint is given.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingLatin1
	EncodingEUCKR
	EncodingGBK
	EncodingShiftJIS
	EncodingEUCJP
)

func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "latin-1"
	case EncodingEUCKR:
		return "euc-kr"
	case EncodingGBK:
		return "gbk"
	case EncodingShiftJIS:
		return "shift-jis"
	case EncodingEUCJP:
		return "euc-jp"
	default:
		return "utf-8"
	}
}

// ParseEncoding maps a user-supplied encoding name to an Encoding. The
// empty string means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "euc-kr", "euckr", "cp949", "ks_c_5601-1987":
		return EncodingEUCKR, nil
	case "gbk", "cp936", "gb2312":
		return EncodingGBK, nil
	case "shift-jis", "shift_jis", "sjis", "cp932":
		return EncodingShiftJIS, nil
	case "euc-jp", "eucjp":
		return EncodingEUCJP, nil
	}
	return EncodingUTF8, fmt.Errorf("unknown encoding %q", name)
}

func (e Encoding) textEncoding() encoding.Encoding {
	switch e {
	case EncodingLatin1:
		return charmap.ISO8859_1
	case EncodingEUCKR:
		return korean.EUCKR
	case EncodingGBK:
		return simplifiedchinese.GBK
	case EncodingShiftJIS:
		return japanese.ShiftJIS
	case EncodingEUCJP:
		return japanese.EUCJP
	default:
		return nil
	}
}

// Decode converts raw file bytes to a UTF-8 string. Bytes invalid under the
// declared encoding are an error, never silently replaced: a replacement
// character in a player name is cosmetic, but the same slip in a move
// record would corrupt the game.
func Decode(raw []byte, enc Encoding) (string, error) {
	if enc == EncodingUTF8 {
		if !utf8.Valid(raw) {
			return "", &DecodeError{Encoding: enc.String(), Reason: "input is not valid UTF-8"}
		}
		return string(raw), nil
	}
	out, _, err := transform.Bytes(enc.textEncoding().NewDecoder(), raw)
	if err != nil {
		return "", &DecodeError{Encoding: enc.String(), Reason: err.Error()}
	}
	// The x/text decoders substitute U+FFFD for undecodable sequences
	// instead of failing.
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", &DecodeError{Encoding: enc.String(), Reason: "input contains byte sequences invalid in this encoding"}
	}
	return string(out), nil
}
