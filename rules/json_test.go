package rules_test

import (
	"encoding/json"
	"testing"

	"chess-rules/rules"
)

func TestResultJSON(t *testing.T) {
	b := boardOf(t, sq(4, 0), wK, sq(4, 7), bK, sq(0, 0), wR)
	res := mustApply(t, b, rules.InitialState(), rules.Move{From: sq(0, 0), To: sq(0, 3)})
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"board", "state", "captured"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing %q in %s", key, data)
		}
	}
	if got := string(raw["captured"]); got != "null" {
		t.Fatalf("captured: got %s want null", got)
	}

	var out rules.Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != res {
		t.Fatalf("round trip differs:\n%s\nwant\n%s", out.Board.Draw(), res.Board.Draw())
	}
}

func TestBoardJSONIsPlacementList(t *testing.T) {
	b := boardOf(t, sq(4, 0), wK)
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"square":{"file":4,"rank":0},"piece":{"type":"king","color":"white"}}]`
	if string(data) != want {
		t.Fatalf("got %s want %s", data, want)
	}

	var empty rules.Board
	if data, err = json.Marshal(empty); err != nil || string(data) != "[]" {
		t.Fatalf("empty board: got %s, %v", data, err)
	}

	var out rules.Board
	bad := `[{"square":{"file":9,"rank":0},"piece":{"type":"king","color":"white"}}]`
	if err := json.Unmarshal([]byte(bad), &out); err == nil {
		t.Fatalf("expected error for off-board placement")
	}
}

func TestPieceJSONNone(t *testing.T) {
	data, err := json.Marshal(rules.NoPiece)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Fatalf("NoPiece: got %s want null", data)
	}
	p := wQ
	if err := json.Unmarshal([]byte("null"), &p); err != nil {
		t.Fatal(err)
	}
	if p != rules.NoPiece {
		t.Fatalf("null: got %v want none", p)
	}
}

func TestMoveFlagJSON(t *testing.T) {
	m := rules.Move{From: sq(4, 4), To: sq(5, 5), Flags: rules.FlagEnPassant | rules.FlagCapture}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"from":{"file":4,"rank":4},"to":{"file":5,"rank":5},"flags":"capture|enPassant"}`
	if string(data) != want {
		t.Fatalf("got %s want %s", data, want)
	}
	var out rules.Move
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out != m {
		t.Fatalf("round trip: got %+v want %+v", out, m)
	}

	quiet, err := json.Marshal(rules.Move{From: sq(0, 1), To: sq(0, 2)})
	if err != nil {
		t.Fatal(err)
	}
	if string(quiet) != `{"from":{"file":0,"rank":1},"to":{"file":0,"rank":2}}` {
		t.Fatalf("quiet move: got %s", quiet)
	}

	var f rules.MoveFlag
	if err := f.UnmarshalText([]byte("capture|bogus")); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
