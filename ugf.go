package xyz2sgf

import (
	"fmt"
	"strconv"
	"strings"
)

// parseUGF reads UGF/UGI files. This is the least reliable of the three
// formats: real files frequently omit header fields, reorder them or carry
// mangled move records, so everything recoverable becomes a Warning instead
// of an error and the caller gets whatever was decoded. Only a file with no
// usable game data at all fails outright.
func parseUGF(text string) (*GameRecord, []Warning, error) {
	rec := &GameRecord{}
	var warnings []Warning

	boardsize := 0
	handicap := -1
	coordType := ""
	winner := ""
	section := ""
	inData := false

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lineno := i + 1
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToUpper(line)
			if section == "[DATA]" && !inData {
				inData = true
				if boardsize == 0 {
					boardsize = 19
					warnings = append(warnings, Warning{Line: lineno, Reason: "header missing Size, assuming 19"})
				}
				if handicap < 0 {
					handicap = 0
					warnings = append(warnings, Warning{Line: lineno, Reason: "header missing Hdcp, assuming even game"})
				}
				if rec.Komi == nil {
					warnings = append(warnings, Warning{Line: lineno, Reason: "header missing komi"})
				}
				rec.BoardSize = boardsize
			}
			continue
		}

		switch section {
		case "[HEADER]":
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				warnings = append(warnings, Warning{Line: lineno, Reason: "header line without '='"})
				continue
			}
			value = strings.TrimSpace(value)

			switch strings.ToUpper(strings.TrimSpace(key)) {
			case "SIZE":
				n, err := strconv.Atoi(value)
				if err != nil || n < 1 || n > 19 {
					warnings = append(warnings, Warning{Line: lineno, Reason: fmt.Sprintf("bad board size %q", value)})
					continue
				}
				boardsize = n
			case "HDCP":
				// "Hdcp=<count>,<komi>"
				parts := strings.Split(value, ",")
				if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil && n >= 0 {
					handicap = n
				} else {
					warnings = append(warnings, Warning{Line: lineno, Reason: fmt.Sprintf("bad handicap %q", parts[0])})
				}
				if len(parts) > 1 {
					if komi, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
						rec.Komi = &komi
					} else {
						warnings = append(warnings, Warning{Line: lineno, Reason: fmt.Sprintf("bad komi %q", parts[1])})
					}
				}
			case "COORDINATETYPE":
				coordType = strings.ToUpper(value)
			case "PLAYERB":
				rec.Black.Name, rec.Black.Rank = splitUGFPlayer(value)
			case "PLAYERW":
				rec.White.Name, rec.White.Rank = splitUGFPlayer(value)
			case "PLACE":
				rec.Info.Place = value
			case "TITLE":
				rec.Info.Event = value
			case "DATE":
				rec.Info.Date = value
			case "RULE":
				rec.Info.Rules = value
			case "WINNER":
				winner = value
			}

		case "[DATA]":
			fields := strings.Split(strings.ToUpper(line), ",")
			if len(fields) < 2 || len(fields[0]) < 2 || len(fields[1]) < 1 {
				warnings = append(warnings, Warning{Line: lineno, Reason: "unreadable move record"})
				continue
			}
			var color Color
			switch fields[1][0] {
			case 'B':
				color = Black
			case 'W':
				color = White
			default:
				warnings = append(warnings, Warning{Line: lineno, Reason: fmt.Sprintf("unknown color %q", fields[1][0])})
				continue
			}
			node := ""
			if len(fields) > 2 {
				node = strings.TrimSpace(fields[2])
			}

			x := int(fields[0][0]) - 'A'
			y := int(fields[0][1]) - 'A'
			if coordType == "IGS" {
				// IGS-style files count rows from the bottom left.
				y = boardsize - 1 - y
			}

			if x < 0 || x >= boardsize || y < 0 || y >= boardsize {
				// Off-board coordinates ("YA" and friends) mean a pass.
				rec.Moves = append(rec.Moves, Move{Color: color, Kind: Pass, Number: len(rec.Moves) + 1})
				continue
			}
			if handicap >= 2 && color == Black && node == "0" && len(rec.Moves) == 0 && len(rec.Handicap) < handicap {
				rec.Handicap = append(rec.Handicap, Point{Col: x, Row: y})
				continue
			}
			rec.Moves = append(rec.Moves, Move{Color: color, Kind: Play, Point: Point{Col: x, Row: y}, Number: len(rec.Moves) + 1})
		}
	}

	if !inData {
		return nil, warnings, &ParseError{Format: FormatUGF, Field: "header", Reason: "no [Data] section found"}
	}
	if len(rec.Moves) == 0 && len(rec.Handicap) == 0 {
		return nil, warnings, &ParseError{Format: FormatUGF, Field: "moves", Reason: "no move records found"}
	}

	rec.Result = winner
	return rec, warnings, nil
}

// splitUGFPlayer separates the comma-delimited "name,rank,..." player
// fields. Trailing fields beyond the rank are ignored.
func splitUGFPlayer(s string) (string, string) {
	parts := strings.Split(s, ",")
	name := strings.TrimSpace(parts[0])
	rank := ""
	if len(parts) > 1 {
		rank = strings.TrimSpace(parts[1])
	}
	return name, rank
}
