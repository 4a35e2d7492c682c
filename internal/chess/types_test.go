package chess

import "testing"

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingSide | BlackQueenSide, "Kq"},
		{AllCastling.Without(WhiteKingSide | WhiteQueenSide), "kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}

	if !AllCastling.Has(CastlingRight(Black, QueenSide)) {
		t.Error("AllCastling should include black queen side")
	}
	if AllCastling.Has(NoCastling) {
		t.Error("Has(NoCastling) should be false")
	}
}

func TestPieceLetters(t *testing.T) {
	for _, c := range []byte("PNBRQKpnbrqk") {
		p := PieceFromLetter(c)
		if p.IsEmpty() {
			t.Fatalf("PieceFromLetter(%c) = Empty", c)
		}
		if got := p.Letter(); got != c {
			t.Errorf("PieceFromLetter(%c).Letter() = %c", c, got)
		}
	}
	if !PieceFromLetter('x').IsEmpty() {
		t.Error("PieceFromLetter(x) should be Empty")
	}
	if Empty.Letter() != '.' {
		t.Errorf("Empty.Letter() = %c; want .", Empty.Letter())
	}
}

func TestKindValue(t *testing.T) {
	want := map[Kind]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9, King: 0, NoKind: 0}
	for kind, v := range want {
		if got := kind.Value(); got != v {
			t.Errorf("%v.Value() = %d; want %d", kind, got, v)
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
		over   bool
	}{
		{Status{}, "in_progress", false},
		{Status{Kind: Checkmate, Winner: White}, "checkmate(White)", true},
		{Status{Kind: Stalemate}, "stalemate", true},
		{Status{Kind: Draw, Reason: DrawFiftyMoveRule}, "draw(fifty_move_rule)", true},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
		if got := tt.status.IsOver(); got != tt.over {
			t.Errorf("%s IsOver() = %v; want %v", tt.want, got, tt.over)
		}
	}
}

func TestMoveUCI(t *testing.T) {
	m := Move{From: MustSquare("e7"), To: MustSquare("e8"), Piece: W(Pawn), Promotion: Queen}
	if got := m.UCI(); got != "e7e8q" {
		t.Errorf("UCI() = %q; want e7e8q", got)
	}
	if got := m.String(); got != "e7e8q" {
		t.Errorf("String() = %q; want e7e8q", got)
	}
	m.Text = "e8=Q+"
	if got := m.String(); got != "e8=Q+" {
		t.Errorf("String() = %q; want e8=Q+", got)
	}
	if !m.Matches(MustSquare("e7"), MustSquare("e8"), Queen) || m.Matches(MustSquare("e7"), MustSquare("e8"), Rook) {
		t.Error("Matches should compare squares and promotion")
	}
}
