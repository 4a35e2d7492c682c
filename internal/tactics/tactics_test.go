package tactics

import (
	"testing"

	"github.com/copperfishgh/testy/internal/chess"
	"github.com/copperfishgh/testy/internal/engine"
	"github.com/copperfishgh/testy/internal/testutil"
)

// squares converts algebraic names to squares.
func squares(names ...string) []chess.Square {
	if len(names) == 0 {
		return nil
	}
	out := make([]chess.Square, len(names))
	for i, n := range names {
		out[i] = chess.MustSquare(n)
	}
	return out
}

const exchangeFEN = "3qk3/6b1/8/1np5/3N4/4P3/8/3RK3 w - - 0 1"

func TestAnalyze_Hanging(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want map[chess.Square]Hanging
	}{
		{
			name: "undefended rook attacked by queen",
			fen:  "q3k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			want: map[chess.Square]Hanging{
				chess.MustSquare("a1"): {Owner: chess.White, Value: 5},
				chess.MustSquare("a8"): {Owner: chess.Black, Value: 9},
			},
		},
		{
			name: "rook defended by king",
			fen:  "q3k3/8/8/8/8/8/1K6/R7 w - - 0 1",
			want: map[chess.Square]Hanging{
				chess.MustSquare("a8"): {Owner: chess.Black, Value: 9},
			},
		},
		{
			name: "defended knight attacked by pawn",
			fen:  "4k3/8/8/3p4/4N3/5P2/8/4K3 w - - 0 1",
			want: map[chess.Square]Hanging{
				chess.MustSquare("e4"): {Owner: chess.White, Value: 3},
			},
		},
		{
			name: "defended pawn attacked by king",
			fen:  "8/8/8/8/8/3k4/3P4/3K4 w - - 0 1",
			want: map[chess.Square]Hanging{},
		},
		{
			name: "undefended pawn attacked by king",
			fen:  "8/8/8/8/8/3k4/3P4/7K w - - 0 1",
			want: map[chess.Square]Hanging{
				chess.MustSquare("d2"): {Owner: chess.White, Value: 1},
			},
		},
		{
			name: "kings never hang",
			fen:  "4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
			want: map[chess.Square]Hanging{},
		},
		{
			name: "exchange position",
			fen:  exchangeFEN,
			want: map[chess.Square]Hanging{
				chess.MustSquare("b5"): {Owner: chess.Black, Value: 3},
				chess.MustSquare("d4"): {Owner: chess.White, Value: 3},
			},
		},
		{
			name: "initial position",
			fen:  engine.InitialFEN,
			want: map[chess.Square]Hanging{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Analyze(testutil.MustBoard(t, tt.fen)).Hanging
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestExchangeInfo(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		square    string
		attackers []chess.Square
		defenders []chess.Square
	}{
		{
			name:      "ordered by value then index",
			fen:       exchangeFEN,
			square:    "d4",
			attackers: squares("c5", "g7", "b5", "d8"),
			defenders: squares("e3", "d1"),
		},
		{
			name:      "empty square lists both colours",
			fen:       "4k3/8/8/3p4/8/8/3N4/4K3 w - - 0 1",
			square:    "e4",
			attackers: squares("d5", "d2"),
		},
		{
			name:   "quiet square",
			fen:    engine.InitialFEN,
			square: "e4",
		},
		{
			name:      "initial knight",
			fen:       engine.InitialFEN,
			square:    "g1",
			defenders: squares("h1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testutil.MustBoard(t, tt.fen)
			got := ExchangeInfo(b, chess.MustSquare(tt.square))
			testutil.AssertEqual(t, got, Exchange{Attackers: tt.attackers, Defenders: tt.defenders})
		})
	}
}

func TestAnalyze_Interesting(t *testing.T) {
	a := Analyze(testutil.MustBoard(t, exchangeFEN))
	testutil.AssertEqual(t, a.Interesting, squares("b5", "d4"))
}

func TestKnightForkSquares(t *testing.T) {
	b := testutil.MustBoard(t, "r3k3/8/8/8/8/8/8/4K1N1 w - - 0 1")

	testutil.AssertEqual(t, KnightForkSquares(b, chess.White), squares("c7"))
	testutil.AssertEqual(t, KnightForkSquares(b, chess.Black), []chess.Square(nil), "colour without knights")

	// A fork square may hold an enemy piece.
	b.Set(chess.MustSquare("c7"), chess.B(chess.Pawn))
	testutil.AssertEqual(t, KnightForkSquares(b, chess.White), squares("c7"), "enemy-occupied fork square")

	// But not a friendly one.
	b.Set(chess.MustSquare("c7"), chess.W(chess.Bishop))
	testutil.AssertEqual(t, KnightForkSquares(b, chess.White), []chess.Square(nil), "friendly-occupied fork square")
}

func TestCache_Memoizes(t *testing.T) {
	b := testutil.MustBoard(t, "q3k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	cache := NewCache()

	first := cache.HangingPieces(b)
	second := cache.HangingPieces(b)
	testutil.AssertEqual(t, second, first)
	testutil.AssertEqual(t, cache.Stats(), Stats{Hits: 1, Misses: 1})

	// Callers cannot corrupt the memo.
	delete(second, chess.MustSquare("a1"))
	if _, ok := cache.HangingPieces(b)[chess.MustSquare("a1")]; !ok {
		t.Error("mutating a returned map changed the memo")
	}

	cache.Invalidate()
	cache.HangingPieces(b)
	testutil.AssertEqual(t, cache.Stats(), Stats{Hits: 2, Misses: 2})
}

func TestCache_RookMovedToSafety(t *testing.T) {
	b := testutil.MustBoard(t, "q3k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	cache := NewCache()

	a1 := chess.MustSquare("a1")
	if got, ok := cache.HangingPieces(b)[a1]; !ok || got.Value != 5 {
		t.Fatalf("a1 rook hanging = %+v, %v; want value 5", got, ok)
	}

	m, ok := engine.FindLegalMove(b, a1, chess.MustSquare("b1"), chess.NoKind)
	if !ok {
		t.Fatal("a1b1 should be legal")
	}
	engine.MakeMove(b, m)

	hanging := cache.HangingPieces(b)
	if _, ok := hanging[a1]; ok {
		t.Error("a1 still reported after the rook moved")
	}
	if _, ok := hanging[chess.MustSquare("b1")]; ok {
		t.Error("rook on b1 should be safe")
	}
	testutil.AssertEqual(t, cache.Stats().Misses, 2, "a changed board must miss")
}

func TestCache_ExchangeInfo(t *testing.T) {
	b := testutil.MustBoard(t, exchangeFEN)
	cache := NewCache()

	got, err := cache.ExchangeInfo(b, chess.MustSquare("d4"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, ExchangeInfo(b, chess.MustSquare("d4")))

	empty, err := cache.ExchangeInfo(b, chess.MustSquare("h1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, empty, Exchange{})

	_, err = cache.ExchangeInfo(b, chess.NoSquare)
	testutil.AssertError(t, err)
}

func TestCache_PreviewIndependence(t *testing.T) {
	live := testutil.MustBoard(t, "q3k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	cache := NewCache()

	preview := live.Copy()
	m, _ := engine.FindLegalMove(preview, chess.MustSquare("a1"), chess.MustSquare("a8"), chess.NoKind)
	engine.MakeMove(preview, m)

	previewHanging := cache.HangingPieces(preview)
	if _, ok := previewHanging[chess.MustSquare("a8")]; ok {
		t.Error("rook that captured on a8 is not attacked and should not hang")
	}
	liveHanging := cache.HangingPieces(live)
	if _, ok := liveHanging[chess.MustSquare("a1")]; !ok {
		t.Error("live board analysis must not be influenced by a preview")
	}
}
