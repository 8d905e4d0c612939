package xyz2sgf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sgf "github.com/rooklift/sgf"
	"golang.org/x/text/transform"
)

func TestConvertGIB(t *testing.T) {
	out, warnings, err := Convert([]byte(sampleGIB()), Options{Filename: "game.gib"})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings for GIB input, got %v", warnings)
	}

	for _, want := range []string{
		"(;FF[4]GM[1]CA[UTF-8]SZ[19]",
		"KM[6.5]",
		"PB[Hong Gildong]",
		"BR[5d]",
		"PW[Tanaka]",
		"DT[2016-03-27]",
		";B[pp];W[cn];B[qo])",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

// The converted output must survive a round trip through an independent SGF
// parser, with the main line intact.
func TestConvertOutputReloads(t *testing.T) {
	out, _, err := Convert([]byte(sampleGIB()), Options{Filename: "game.gib"})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "game.sgf")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatalf("writing temp file failed: %v", err)
	}
	root, err := sgf.Load(path)
	if err != nil {
		t.Fatalf("reloading the converted SGF failed: %v", err)
	}

	if sz, _ := root.GetValue("SZ"); sz != "19" {
		t.Errorf("expected SZ 19, got %q", sz)
	}
	if pb, _ := root.GetValue("PB"); pb != "Hong Gildong" {
		t.Errorf("expected PB Hong Gildong, got %q", pb)
	}

	var moves []string
	for node := root; len(node.Children()) > 0; {
		node = node.Children()[0]
		if v, ok := node.GetValue("B"); ok {
			moves = append(moves, "B"+v)
		} else if v, ok := node.GetValue("W"); ok {
			moves = append(moves, "W"+v)
		}
	}
	want := []string{"Bpp", "Wcn", "Bqo"}
	if len(moves) != len(want) {
		t.Fatalf("expected %d moves in the main line, got %v", len(want), moves)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("expected move %d to be %q, got %q", i, want[i], moves[i])
		}
	}
}

func TestConvertEncodedGIB(t *testing.T) {
	text := strings.Join([]string{
		`\[GAMEBLACKNAME=홍길동(5단)\]`,
		`\[GAMEWHITENAME=김철수\]`,
		`STO 0 1 1 15 15`,
		`STO 0 2 2 3 3`,
	}, "\n")
	raw, _, err := transform.Bytes(EncodingEUCKR.textEncoding().NewEncoder(), []byte(text))
	if err != nil {
		t.Fatalf("encoding test fixture failed: %v", err)
	}

	out, _, err := Convert(raw, Options{Filename: "game.gib", Encoding: EncodingEUCKR})
	if err != nil {
		t.Fatalf("Convert with encoding hint failed: %v", err)
	}
	if !strings.Contains(out, "PB[홍길동]") || !strings.Contains(out, "BR[5d]") {
		t.Errorf("expected decoded Korean names in output, got:\n%s", out)
	}

	// Without the hint the bytes are not valid UTF-8 and the conversion
	// must fail instead of writing replacement characters.
	_, _, err = Convert(raw, Options{Filename: "game.gib"})
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a DecodeError without the encoding hint, got %v", err)
	}
}

func TestConvertUGFWarnings(t *testing.T) {
	input := strings.Join([]string{
		"[Header]",
		"Size=19",
		"PlayerB=black",
		"PlayerW=white",
		"[Data]",
		"QD,B1,1",
		"DC,W1,2",
	}, "\n")

	out, warnings, err := Convert([]byte(input), Options{Filename: "game.ugf"})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(warnings) == 0 {
		t.Error("expected a missing-komi warning to surface through Convert")
	}
	if strings.Contains(out, "KM[") {
		t.Errorf("expected no KM property without a komi, got:\n%s", out)
	}
}

func TestConvertNGF(t *testing.T) {
	input := sampleNGF(nil, "PM1BQQQQ", "PM2WDCDC", "PM3BAAAA", "PM4WZZZZ")
	out, _, err := Convert([]byte(input), Options{Filename: "game.ngf"})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	for _, want := range []string{
		"RE[W+Resign]",
		"DT[2003-04-05]",
		"WR[5k]",
		// The resignation record is not a move; the game ends on the pass.
		";B[pp];W[cb];B[])",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestConvertEmptyInput(t *testing.T) {
	_, _, err := Convert(nil, Options{Filename: "game.gib"})
	var detectErr *DetectError
	if !errors.As(err, &detectErr) {
		t.Fatalf("expected a DetectError for empty input, got %v", err)
	}
}

func TestConvertExplicitFormat(t *testing.T) {
	// No filename, no recognizable extension: the explicit format must be
	// honored without any detection.
	out, _, err := Convert([]byte(sampleGIB()), Options{Format: FormatGIB})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !strings.Contains(out, "SZ[19]") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
