package xyz2sgf

import (
	"strconv"
	"strings"
)

// Serialize renders a normalized GameRecord as a single linear SGF game
// tree. It is total over valid records: every present field is emitted,
// fields SGF cannot represent are omitted, and nothing is ever emitted
// malformed. Output is always CA[UTF-8].
func Serialize(rec *GameRecord) string {
	var b strings.Builder

	b.WriteString("(;FF[4]GM[1]CA[UTF-8]")
	writeProp(&b, "SZ", strconv.Itoa(rec.BoardSize))

	if len(rec.Handicap) > 0 {
		writeProp(&b, "HA", strconv.Itoa(len(rec.Handicap)))
		b.WriteString("AB")
		for _, p := range rec.Handicap {
			b.WriteString("[" + sgfPoint(p) + "]")
		}
	}
	if rec.Komi != nil {
		writeProp(&b, "KM", strconv.FormatFloat(*rec.Komi, 'f', -1, 64))
	}
	writeTextProp(&b, "PB", rec.Black.Name)
	writeTextProp(&b, "BR", rec.Black.Rank)
	writeTextProp(&b, "PW", rec.White.Name)
	writeTextProp(&b, "WR", rec.White.Rank)
	writeTextProp(&b, "RE", rec.Result)
	writeTextProp(&b, "DT", rec.Info.Date)
	writeTextProp(&b, "EV", rec.Info.Event)
	writeTextProp(&b, "PC", rec.Info.Place)
	writeTextProp(&b, "RU", rec.Info.Rules)
	writeTextProp(&b, "C", rec.Info.Comment)

	for _, mv := range rec.Moves {
		switch mv.Kind {
		case Play:
			b.WriteString(";" + mv.Color.String() + "[" + sgfPoint(mv.Point) + "]")
		case Pass:
			b.WriteString(";" + mv.Color.String() + "[]")
		case Resign:
			// SGF has no resignation move; the RE property carries it.
		}
	}

	b.WriteString(")\n")
	return b.String()
}

// writeProp emits a property whose value needs no escaping.
func writeProp(b *strings.Builder, key, value string) {
	b.WriteString(key + "[" + value + "]")
}

// writeTextProp emits a text property with SGF escaping, or nothing at all
// when the value is empty.
func writeTextProp(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key + "[" + escapeText(value) + "]")
}

// escapeText backslash-escapes the two characters with structural meaning
// inside an SGF property value.
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\\' || r == ']' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sgfPoint encodes a point in SGF's two-letter scheme, "aa" at the top
// left. Valid for board sizes up to 26; parsers reject anything above 19.
func sgfPoint(p Point) string {
	return string([]byte{byte('a' + p.Col), byte('a' + p.Row)})
}

// parseSGFPoint is the inverse of sgfPoint.
func parseSGFPoint(s string) (Point, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'z' || s[1] < 'a' || s[1] > 'z' {
		return Point{}, false
	}
	return Point{Col: int(s[0] - 'a'), Row: int(s[1] - 'a')}, true
}
