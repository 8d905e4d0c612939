package xyz2sgf

import (
	"fmt"
	"strconv"
	"strings"
)

// NGF positional header layout, 0-indexed into the line list. The format is
// barely documented; the size and handicap positions are well established,
// the rest matches the files seen in the wild.
const (
	ngfLineTitle     = 0
	ngfLineSize      = 1
	ngfLineWhite     = 2
	ngfLineBlack     = 3
	ngfLineHandicap  = 5
	ngfLineKomi      = 7
	ngfLineDate      = 8
	ngfLineResult    = 10
	ngfLineMoveCount = 11
	ngfHeaderLines   = 12
)

// parseNGF reads the NGF format: a fixed positional header followed by PM
// move records. NGF is structurally strict, so any deviation from the
// header layout fails the parse.
func parseNGF(text string) (*GameRecord, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if len(lines) < ngfHeaderLines {
		return nil, &ParseError{Format: FormatNGF, Field: "header",
			Reason: fmt.Sprintf("header needs %d lines, file has %d", ngfHeaderLines, len(lines))}
	}

	size, err := strconv.Atoi(lines[ngfLineSize])
	if err != nil || size < 1 || size > 19 {
		return nil, &ParseError{Format: FormatNGF, Line: ngfLineSize + 1, Field: "board size",
			Reason: fmt.Sprintf("bad board size %q", lines[ngfLineSize])}
	}
	handicap, err := strconv.Atoi(lines[ngfLineHandicap])
	if err != nil || handicap < 0 || handicap > 9 {
		return nil, &ParseError{Format: FormatNGF, Line: ngfLineHandicap + 1, Field: "handicap",
			Reason: fmt.Sprintf("bad handicap count %q", lines[ngfLineHandicap])}
	}
	declared, err := strconv.Atoi(lines[ngfLineMoveCount])
	if err != nil {
		return nil, &ParseError{Format: FormatNGF, Line: ngfLineMoveCount + 1, Field: "move count",
			Reason: fmt.Sprintf("bad move count %q", lines[ngfLineMoveCount])}
	}

	rec := &GameRecord{BoardSize: size}
	rec.Info.Event = lines[ngfLineTitle]
	rec.Info.Date = lines[ngfLineDate]
	rec.Result = lines[ngfLineResult]
	rec.White.Name, rec.White.Rank = splitNGFPlayer(lines[ngfLineWhite])
	rec.Black.Name, rec.Black.Rank = splitNGFPlayer(lines[ngfLineBlack])
	if komi, err := strconv.ParseFloat(lines[ngfLineKomi], 64); err == nil {
		rec.Komi = &komi
	}

	if handicap >= 2 {
		// Like GIB, NGF records only the stone count; the placement table
		// is defined for 19x19 only.
		if size != 19 {
			return nil, &ParseError{Format: FormatNGF, Line: ngfLineHandicap + 1, Field: "handicap",
				Reason: fmt.Sprintf("handicap %d on a %dx%d board is not representable", handicap, size, size)}
		}
		rec.Handicap = append([]Point(nil), handicapPoints19[handicap]...)
	}

	lastNumber := -1
	for i, line := range lines {
		line = strings.ToUpper(line)
		if !strings.HasPrefix(line, "PM") {
			continue
		}
		mv, err := parseNGFMove(line, i+1)
		if err != nil {
			return nil, err
		}
		if err := checkMoveNumber(FormatNGF, i+1, &lastNumber, mv.Number); err != nil {
			return nil, err
		}
		rec.Moves = append(rec.Moves, mv)
	}

	if len(rec.Moves) == 0 {
		return nil, &ParseError{Format: FormatNGF, Field: "moves", Reason: "no move records found"}
	}
	if declared != len(rec.Moves) {
		return nil, &ParseError{Format: FormatNGF, Line: ngfLineMoveCount + 1, Field: "move count",
			Reason: fmt.Sprintf("header declares %d moves, file has %d", declared, len(rec.Moves))}
	}
	return rec, nil
}

// parseNGFMove reads one "PM<number><color><col><row>..." record. The
// letter 'B' encodes coordinate 1, so 'A' lands just off the board: the AA
// record is the pass sentinel and ZZ marks a resignation. Any other
// off-board coordinate is caught by range validation.
func parseNGFMove(line string, lineno int) (Move, error) {
	rest := strings.TrimSpace(line[2:])

	j := 0
	for j < len(rest) && (rest[j] >= '0' && rest[j] <= '9' || rest[j] == ' ') {
		j++
	}
	number, err := strconv.Atoi(strings.TrimSpace(rest[:j]))
	if err != nil {
		return Move{}, &ParseError{Format: FormatNGF, Line: lineno, Field: "move",
			Reason: "missing move number"}
	}
	rest = strings.TrimSpace(rest[j:])
	if len(rest) < 1 {
		return Move{}, &ParseError{Format: FormatNGF, Line: lineno, Field: "move",
			Reason: "truncated move record"}
	}

	var color Color
	switch rest[0] {
	case 'B':
		color = Black
	case 'W':
		color = White
	default:
		return Move{}, &ParseError{Format: FormatNGF, Line: lineno, Field: "move",
			Reason: fmt.Sprintf("bad color %q", rest[0])}
	}

	coords := strings.TrimSpace(rest[1:])
	if len(coords) < 2 {
		return Move{}, &ParseError{Format: FormatNGF, Line: lineno, Field: "move",
			Reason: "truncated coordinates"}
	}
	switch coords[:2] {
	case "AA":
		return Move{Color: color, Kind: Pass, Number: number}, nil
	case "ZZ":
		return Move{Color: color, Kind: Resign, Number: number}, nil
	}
	point := Point{Col: int(coords[0]) - 'B', Row: int(coords[1]) - 'B'}
	return Move{Color: color, Kind: Play, Point: point, Number: number}, nil
}

// splitNGFPlayer separates a "name rank" header field. The rank is only
// split off when the last word actually looks like one.
func splitNGFPlayer(s string) (string, string) {
	fields := strings.Fields(s)
	if len(fields) >= 2 && looksLikeRank(fields[len(fields)-1]) {
		return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
	}
	return strings.TrimSpace(s), ""
}
