package xyz2sgf

import (
	"fmt"
	"regexp"
	"strings"
)

// normalizeRecord validates every coordinate against the record's board
// size and rewrites result, date and rank strings into SGF-convention
// values. Metadata it does not recognize passes through verbatim: an
// unchanged original string beats a wrong guess.
func normalizeRecord(rec *GameRecord, format Format) error {
	for i, p := range rec.Handicap {
		if !inRange(p, rec.BoardSize) {
			return &ParseError{Format: format, Field: "handicap",
				Reason: fmt.Sprintf("handicap stone %d at (%d,%d) is outside a %dx%d board",
					i+1, p.Col, p.Row, rec.BoardSize, rec.BoardSize)}
		}
	}
	for _, mv := range rec.Moves {
		if mv.Kind != Play {
			continue
		}
		if !inRange(mv.Point, rec.BoardSize) {
			return &ParseError{Format: format, Field: "move",
				Reason: fmt.Sprintf("move %d at (%d,%d) is outside a %dx%d board",
					mv.Number, mv.Point.Col, mv.Point.Row, rec.BoardSize, rec.BoardSize)}
		}
	}

	rec.Result = normalizeResult(rec.Result)
	rec.Info.Date = normalizeDate(rec.Info.Date)
	rec.Black.Rank = normalizeRank(rec.Black.Rank)
	rec.White.Rank = normalizeRank(rec.White.Rank)
	return nil
}

func inRange(p Point, size int) bool {
	return p.Col >= 0 && p.Col < size && p.Row >= 0 && p.Row < size
}

// checkMoveNumber enforces consecutive move numbering for the strict
// formats. The first recorded number sets the base; every later move must
// follow its predecessor by exactly one. last starts at -1.
func checkMoveNumber(format Format, lineno int, last *int, number int) error {
	if *last >= 0 && number != *last+1 {
		return &ParseError{Format: format, Line: lineno, Field: "move number",
			Reason: fmt.Sprintf("move number %d after %d", number, *last)}
	}
	*last = number
	return nil
}

var resultMargin = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)

// normalizeResult maps the source formats' result conventions onto the SGF
// RE convention: "B+"/"W+" plus a margin, "Resign", "Time" or "Draw". It
// understands the English phrasings and the Korean terms that appear in
// Tygem files; anything else passes through unmodified.
func normalizeResult(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	upper := strings.ToUpper(s)

	if upper == "DRAW" || upper == "JIGO" || strings.Contains(s, "무승부") {
		return "Draw"
	}

	var winner string
	switch {
	case strings.HasPrefix(upper, "B"), strings.Contains(upper, "BLACK"), strings.Contains(s, "흑"):
		winner = "B"
	case strings.HasPrefix(upper, "W"), strings.Contains(upper, "WHITE"), strings.Contains(s, "백"):
		winner = "W"
	default:
		return s
	}

	switch {
	case strings.Contains(upper, "RESIGN"), strings.Contains(s, "불계"), strings.HasSuffix(upper, "+R"):
		return winner + "+Resign"
	case strings.Contains(upper, "TIME"), strings.Contains(s, "시간"):
		return winner + "+Time"
	}
	if margin := resultMargin.FindString(s); margin != "" {
		return winner + "+" + margin
	}
	return winner + "+"
}

var dateYMD = regexp.MustCompile(`^(\d{4})[-./]?(\d{2})[-./]?(\d{2})`)

// normalizeDate rewrites unambiguous YYYYMMDD-style dates (with or without
// separators) as ISO 8601 and leaves anything else untouched.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if m := dateYMD.FindStringSubmatch(s); m != nil {
		return m[1] + "-" + m[2] + "-" + m[3]
	}
	return s
}

var rankPattern = regexp.MustCompile(`^([0-9]+)\s*(?i:k|kyu|d|dan|p|pro|급|級|단|段)\*?$`)

func looksLikeRank(s string) bool {
	return rankPattern.MatchString(strings.TrimSpace(s))
}

// normalizeRank rewrites "6 dan", "5K*" and the CJK 단/급 forms as the
// compact "6d"/"5k" used in SGF rank properties. Unrecognized strings come
// back unchanged.
func normalizeRank(s string) string {
	s = strings.TrimSpace(s)
	m := rankPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	suffix := strings.ToLower(strings.TrimSuffix(s[len(m[1]):], "*"))
	suffix = strings.TrimSpace(suffix)
	switch suffix {
	case "k", "kyu", "급", "級":
		return m[1] + "k"
	case "d", "dan", "단", "段":
		return m[1] + "d"
	case "p", "pro":
		return m[1] + "p"
	}
	return s
}
