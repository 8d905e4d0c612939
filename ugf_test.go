package xyz2sgf

import (
	"strings"
	"testing"
)

func TestParseUGF(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Title=Test game",
		"Size=19",
		"Hdcp=0,5.5",
		"PlayerB=black player,3d",
		"PlayerW=white player,2d",
		"Place=somewhere",
		"Winner=W+2.5",
		"[Data]",
		"QD,B1,1",
		"DC,W1,2",
		"YA,B2,3",
	}, "\n")

	rec, warnings, err := parseUGF(input)
	if err != nil {
		t.Fatalf("parseUGF failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	if rec.BoardSize != 19 {
		t.Errorf("expected board size 19, got %d", rec.BoardSize)
	}
	if rec.Komi == nil || *rec.Komi != 5.5 {
		t.Errorf("expected komi 5.5, got %v", rec.Komi)
	}
	if rec.Black.Name != "black player" || rec.Black.Rank != "3d" {
		t.Errorf("unexpected black player %q rank %q", rec.Black.Name, rec.Black.Rank)
	}
	if rec.Info.Event != "Test game" || rec.Info.Place != "somewhere" {
		t.Errorf("unexpected game info %+v", rec.Info)
	}

	expected := []Move{
		{Color: Black, Kind: Play, Point: Point{16, 3}, Number: 1},
		{Color: White, Kind: Play, Point: Point{3, 2}, Number: 2},
		{Color: Black, Kind: Pass, Number: 3},
	}
	if len(rec.Moves) != len(expected) {
		t.Fatalf("expected %d moves, got %d", len(expected), len(rec.Moves))
	}
	for i, want := range expected {
		if rec.Moves[i] != want {
			t.Errorf("expected move %d to be %+v, got %+v", i, want, rec.Moves[i])
		}
	}
}

func TestParseUGFHandicapStones(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Size=19",
		"Hdcp=2,0.5",
		"[Data]",
		"QD,B1,0",
		"DP,B1,0",
		"DD,W1,1",
	}, "\n")

	rec, _, err := parseUGF(input)
	if err != nil {
		t.Fatalf("parseUGF failed: %v", err)
	}
	if len(rec.Handicap) != 2 {
		t.Fatalf("expected 2 handicap stones, got %d", len(rec.Handicap))
	}
	if len(rec.Moves) != 1 || rec.Moves[0].Color != White {
		t.Errorf("expected a single white move after the handicap, got %+v", rec.Moves)
	}
}

func TestParseUGFIGSCoordinates(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Size=19",
		"Hdcp=0,0.5",
		"CoordinateType=IGS",
		"[Data]",
		"AA,B1,1",
	}, "\n")

	rec, _, err := parseUGF(input)
	if err != nil {
		t.Fatalf("parseUGF failed: %v", err)
	}
	want := Point{Col: 0, Row: 18}
	if rec.Moves[0].Point != want {
		t.Errorf("expected IGS coordinate to flip to %+v, got %+v", want, rec.Moves[0].Point)
	}
}

func TestParseUGFMissingKomi(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Size=19",
		"PlayerB=black",
		"PlayerW=white",
		"[Data]",
		"QD,B1,1",
	}, "\n")

	rec, warnings, err := parseUGF(input)
	if err != nil {
		t.Fatalf("expected the parse to survive a missing komi, got %v", err)
	}
	if rec.Komi != nil {
		t.Errorf("expected no komi, got %v", *rec.Komi)
	}

	found := false
	for _, w := range warnings {
		if strings.Contains(w.Reason, "komi") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a missing-komi warning, got %v", warnings)
	}
}

func TestParseUGFRecoverableRecords(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Size=9",
		"Hdcp=0,0.5",
		"[Data]",
		"CC,B1,1",
		"garbage",
		"DD,X1,2",
		"EE,W1,3",
	}, "\n")

	rec, warnings, err := parseUGF(input)
	if err != nil {
		t.Fatalf("expected a partial parse, got %v", err)
	}
	if len(rec.Moves) != 2 {
		t.Errorf("expected 2 decoded moves, got %d", len(rec.Moves))
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", warnings)
	}
}

func TestParseUGFMissingSizeDefaults(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Hdcp=0,6.5",
		"[Data]",
		"QD,B1,1",
	}, "\n")

	rec, warnings, err := parseUGF(input)
	if err != nil {
		t.Fatalf("parseUGF failed: %v", err)
	}
	if rec.BoardSize != 19 {
		t.Errorf("expected the default board size 19, got %d", rec.BoardSize)
	}
	if len(warnings) == 0 {
		t.Error("expected a warning about the missing Size field")
	}
}

func TestParseUGFEmpty(t *testing.T) {
	if _, _, err := parseUGF(""); err == nil {
		t.Fatal("expected a ParseError for empty input, got none")
	}
	if _, _, err := parseUGF("[Header]\nSize=19\n[Data]\n"); err == nil {
		t.Fatal("expected a ParseError for a file without moves, got none")
	}
}
