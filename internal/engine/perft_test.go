package engine

import (
	"sort"
	"testing"

	corentings "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []uint64 // indexed by depth-1
	}{
		{"initial", InitialFEN, []uint64{20, 400, 8902}},
		{"kiwipete", kiwipeteFEN, []uint64{48, 2039, 97862}},
		{"position 3", position3FEN, []uint64{14, 191, 2812, 43238}},
		{"position 4", position4FEN, []uint64{6, 264, 9467}},
		{"position 5", position5FEN, []uint64{44, 1486, 62379}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustFEN(t, tt.fen)
			for i, want := range tt.nodes {
				depth := i + 1
				if testing.Short() && depth > 2 {
					break
				}
				if got := Perft(board, depth); got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
			if got := BoardToFEN(board); got != tt.fen {
				t.Errorf("Perft left the board changed: %q", got)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	board := mustFEN(t, InitialFEN)
	counts := Divide(board, 2)
	if len(counts) != 20 {
		t.Fatalf("len(Divide) = %d, want 20", len(counts))
	}
	for move, n := range counts {
		if n != 20 {
			t.Errorf("Divide[%s] = %d, want 20", move, n)
		}
	}
}

// dragontoothPerft is an independent perft over the dragontoothmg generator.
func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerft_MatchesDragontooth(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			oracle := dragontoothmg.ParseFen(fen)
			want := dragontoothPerft(&oracle, 2)
			if got := Perft(mustFEN(t, fen), 2); got != want {
				t.Errorf("Perft(2) = %d, dragontoothmg says %d", got, want)
			}
		})
	}
}

func TestLegalMoves_MatchesCorentings(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		position3FEN,
		position4FEN,
		position5FEN,
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		"8/P7/8/8/8/8/8/k1K5 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			opt, err := corentings.FEN(fen)
			if err != nil {
				t.Fatalf("corentings.FEN(%q) error: %v", fen, err)
			}
			game := corentings.NewGame(opt)

			var want []string
			for _, m := range game.ValidMoves() {
				want = append(want, corentings.UCINotation{}.Encode(game.Position(), &m))
			}
			sort.Strings(want)

			board := mustFEN(t, fen)
			got := sortedUCI(LegalMoves(board, board.ToMove))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("legal moves mismatch (-corentings +ours):\n%s", diff)
			}
		})
	}
}
