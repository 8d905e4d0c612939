package xyz2sgf

import (
	"fmt"
	"strconv"
	"strings"
)

// parseGIB reads the Tygem GIB format: a header of \[NAME=VALUE\]
// properties followed by a game block of INI (handicap), STO (stone) and
// SKI (pass) lines. The format is undocumented; field meanings follow the
// behavior of existing converters on real Tygem files. Board size is always
// 19, the format has no size field.
func parseGIB(text string) (*GameRecord, error) {
	rec := &GameRecord{BoardSize: 19}
	lastNumber := -1

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lineno := i + 1

		switch {
		case strings.HasPrefix(line, `\[`):
			parseGIBHeader(rec, line)

		case strings.HasPrefix(line, "INI"):
			if len(rec.Moves) > 0 {
				return nil, &ParseError{Format: FormatGIB, Line: lineno, Field: "INI",
					Reason: "setup line after the first move"}
			}
			if err := parseGIBSetup(rec, line, lineno); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, "STO"):
			mv, err := parseGIBStone(line, lineno)
			if err != nil {
				return nil, err
			}
			if err := checkMoveNumber(FormatGIB, lineno, &lastNumber, mv.Number); err != nil {
				return nil, err
			}
			rec.Moves = append(rec.Moves, mv)

		case strings.HasPrefix(line, "SKI"):
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, &ParseError{Format: FormatGIB, Line: lineno, Field: "SKI",
					Reason: "too few fields"}
			}
			number, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{Format: FormatGIB, Line: lineno, Field: "SKI",
					Reason: fmt.Sprintf("bad move number %q", fields[2])}
			}
			if err := checkMoveNumber(FormatGIB, lineno, &lastNumber, number); err != nil {
				return nil, err
			}
			rec.Moves = append(rec.Moves, Move{Color: nextGIBColor(rec), Kind: Pass, Number: number})
		}
		// Anything else is a comment or an unknown tag; skipping it keeps
		// the parse alive across client-version differences.
	}

	if len(rec.Moves) == 0 {
		return nil, &ParseError{Format: FormatGIB, Field: "STO", Reason: "no move lines found"}
	}
	return rec, nil
}

// parseGIBHeader pulls every \[NAME=VALUE\] property out of one header
// line. Unknown properties are ignored.
func parseGIBHeader(rec *GameRecord, line string) {
	for {
		start := strings.Index(line, `\[`)
		if start < 0 {
			return
		}
		end := strings.Index(line[start:], `\]`)
		if end < 0 {
			return
		}
		segment := line[start+2 : start+end]
		line = line[start+end+2:]

		name, value, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.ToUpper(strings.TrimSpace(name)) {
		case "GAMEBLACKNAME":
			rec.Black.Name, rec.Black.Rank = splitNameRank(value)
		case "GAMEWHITENAME":
			rec.White.Name, rec.White.Rank = splitNameRank(value)
		case "GAMERESULT":
			if rec.Result == "" {
				rec.Result = value
			}
		case "GAMETAG", "GAMEINFOMAIN":
			// The coded result beats the free-text one when both appear.
			if r := gibTagResult(value); r != "" {
				rec.Result = r
			}
		case "GAMEGONGJE":
			// Komi in tenths of a point.
			if n, err := strconv.Atoi(value); err == nil {
				komi := float64(n) / 10
				rec.Komi = &komi
			}
		case "GAMEDATE":
			rec.Info.Date = value
		case "GAMEPLACE":
			rec.Info.Place = value
		case "GAMENAME":
			rec.Info.Event = value
		case "GAMECOMMENT":
			rec.Info.Comment = value
		}
	}
}

// parseGIBSetup reads the INI line. Field 3 is the handicap count; the
// stone positions come from the fixed 19x19 placement table.
func parseGIBSetup(rec *GameRecord, line string, lineno int) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return &ParseError{Format: FormatGIB, Line: lineno, Field: "INI", Reason: "too few fields"}
	}
	handicap, err := strconv.Atoi(fields[3])
	if err != nil {
		return &ParseError{Format: FormatGIB, Line: lineno, Field: "INI",
			Reason: fmt.Sprintf("bad handicap count %q", fields[3])}
	}
	if handicap < 0 || handicap > 9 {
		return &ParseError{Format: FormatGIB, Line: lineno, Field: "INI",
			Reason: fmt.Sprintf("handicap %d out of range", handicap)}
	}
	if handicap >= 2 {
		rec.Handicap = append([]Point(nil), handicapPoints19[handicap]...)
	}
	return nil
}

// parseGIBStone reads one "STO 0 <number> <color> <x> <y>" line, color 1
// for black and 2 for white, coordinates zero-indexed from the top left.
func parseGIBStone(line string, lineno int) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return Move{}, &ParseError{Format: FormatGIB, Line: lineno, Field: "STO", Reason: "too few fields"}
	}
	number, err := strconv.Atoi(fields[2])
	if err != nil {
		return Move{}, &ParseError{Format: FormatGIB, Line: lineno, Field: "STO",
			Reason: fmt.Sprintf("bad move number %q", fields[2])}
	}
	var color Color
	switch fields[3] {
	case "1":
		color = Black
	case "2":
		color = White
	default:
		return Move{}, &ParseError{Format: FormatGIB, Line: lineno, Field: "STO",
			Reason: fmt.Sprintf("bad color %q", fields[3])}
	}
	x, err1 := strconv.Atoi(fields[4])
	y, err2 := strconv.Atoi(fields[5])
	if err1 != nil || err2 != nil {
		return Move{}, &ParseError{Format: FormatGIB, Line: lineno, Field: "STO", Reason: "bad coordinates"}
	}
	return Move{Color: color, Kind: Play, Point: Point{Col: x, Row: y}, Number: number}, nil
}

// nextGIBColor infers the mover for a SKI line, which carries no color of
// its own: the opponent of the previous move, or the opening color.
func nextGIBColor(rec *GameRecord) Color {
	if len(rec.Moves) > 0 {
		return rec.Moves[len(rec.Moves)-1].Color.Opponent()
	}
	if len(rec.Handicap) > 0 {
		return White
	}
	return Black
}

// gibTagResult decodes the GRLT/ZIPSU result codes found inside GAMETAG and
// GAMEINFOMAIN values. GRLT gives the outcome kind, ZIPSU the winning
// margin in tenths of a point.
func gibTagResult(value string) string {
	grlt, zipsu := -1, 0
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(strings.ToUpper(field))
		if v, ok := strings.CutPrefix(field, "GRLT:"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				grlt = n
			}
		}
		if v, ok := strings.CutPrefix(field, "ZIPSU:"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				zipsu = n
			}
		}
	}

	margin := ""
	if zipsu > 0 {
		margin = strconv.FormatFloat(float64(zipsu)/10, 'f', -1, 64)
	}

	switch grlt {
	case 0:
		return "B+" + margin
	case 1:
		return "W+" + margin
	case 3:
		return "B+Resign"
	case 4:
		return "W+Resign"
	case 7:
		return "B+Time"
	case 8:
		return "W+Time"
	}
	return ""
}

// splitNameRank separates the "name(rank)" convention used by GIB player
// fields. Names without a parenthesized rank come back whole.
func splitNameRank(s string) (string, string) {
	s = strings.TrimSpace(s)
	open := strings.LastIndex(s, "(")
	if open > 0 && strings.HasSuffix(s, ")") {
		return strings.TrimSpace(s[:open]), strings.TrimSpace(s[open+1 : len(s)-1])
	}
	return s, ""
}
