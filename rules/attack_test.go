package rules_test

import (
	"testing"

	"chess-rules/rules"
)

func TestIsSquareAttacked_RookFiles(t *testing.T) {
	b := boardOf(t, sq(0, 0), wR)
	target := sq(0, 3)
	if !b.IsSquareAttacked(target, rules.White) {
		t.Fatalf("expected 0,3 attacked by rook on 0,0")
	}
	if b.IsSquareAttacked(target, rules.Black) {
		t.Fatalf("black has no attackers")
	}
	// friendly blocker on the file
	if err := b.Set(sq(0, 2), wN); err != nil {
		t.Fatal(err)
	}
	if b.IsSquareAttacked(target, rules.White) {
		t.Fatalf("did not expect attack through a blocker")
	}
	// enemy blocker stops the ray too
	if err := b.Set(sq(0, 2), bN); err != nil {
		t.Fatal(err)
	}
	if b.IsSquareAttacked(target, rules.White) {
		t.Fatalf("did not expect attack through an enemy blocker")
	}
}

func TestIsSquareAttacked_BishopDiagonals(t *testing.T) {
	b := boardOf(t, sq(1, 1), bB)
	target := sq(3, 3)
	if !b.IsSquareAttacked(target, rules.Black) {
		t.Fatalf("expected 3,3 attacked by bishop on 1,1")
	}
	// a rook on the diagonal blocks and does not attack diagonally itself
	if err := b.Set(sq(2, 2), bR); err != nil {
		t.Fatal(err)
	}
	if b.IsSquareAttacked(target, rules.Black) {
		t.Fatalf("did not expect diagonal attack through a rook")
	}
}

func TestIsSquareAttacked_Queen(t *testing.T) {
	b := boardOf(t, sq(7, 7), wQ)
	if !b.IsSquareAttacked(sq(0, 0), rules.White) {
		t.Fatalf("queen should attack along the long diagonal")
	}
	if !b.IsSquareAttacked(sq(7, 0), rules.White) {
		t.Fatalf("queen should attack along the file")
	}
	if b.IsSquareAttacked(sq(6, 5), rules.White) {
		t.Fatalf("queen does not attack a knight-jump square")
	}
}

func TestIsSquareAttacked_PawnDirection(t *testing.T) {
	b := boardOf(t, sq(3, 3), wP)
	if !b.IsSquareAttacked(sq(4, 4), rules.White) || !b.IsSquareAttacked(sq(2, 4), rules.White) {
		t.Fatalf("white pawn attacks forward diagonals")
	}
	if b.IsSquareAttacked(sq(3, 4), rules.White) {
		t.Fatalf("pawn does not attack straight ahead")
	}
	if b.IsSquareAttacked(sq(2, 2), rules.White) || b.IsSquareAttacked(sq(4, 2), rules.White) {
		t.Fatalf("white pawn does not attack backwards")
	}

	b = boardOf(t, sq(3, 3), bP)
	if !b.IsSquareAttacked(sq(2, 2), rules.Black) || !b.IsSquareAttacked(sq(4, 2), rules.Black) {
		t.Fatalf("black pawn attacks toward rank 0")
	}
	if b.IsSquareAttacked(sq(4, 4), rules.Black) {
		t.Fatalf("black pawn does not attack toward rank 7")
	}
}

func TestIsSquareAttacked_KnightsAndKings(t *testing.T) {
	e1 := sq(4, 0)
	b := boardOf(t, e1, wK, sq(5, 2), bN)
	if !b.IsSquareAttacked(e1, rules.Black) {
		t.Fatalf("expected e1 attacked by knight from f3")
	}
	if !b.InCheck(rules.White) {
		t.Fatalf("expected white in check")
	}

	b = boardOf(t, e1, wK, sq(3, 1), bK)
	if !b.IsSquareAttacked(e1, rules.Black) {
		t.Fatalf("expected e1 attacked by adjacent king")
	}
	if b.IsSquareAttacked(sq(6, 0), rules.Black) {
		t.Fatalf("king reaches one square only")
	}
}

func TestInCheckWithoutKing(t *testing.T) {
	b := boardOf(t, sq(0, 0), bR)
	if b.InCheck(rules.White) {
		t.Fatalf("no king means no check")
	}
}
