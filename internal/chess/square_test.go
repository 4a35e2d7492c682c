package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/copperfishgh/testy/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", Square{Row: 0, Col: 0}, false},
		{"h1", Square{Row: 7, Col: 7}, false},
		{"e4", Square{Row: 4, Col: 4}, false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"a0", NoSquare, true},
		{"e", NoSquare, true},
		{"e44", NoSquare, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSquareIndex(t *testing.T) {
	for i := 0; i < BoardSize*BoardSize; i++ {
		if got := SquareFromIndex(i).Index(); got != i {
			t.Errorf("SquareFromIndex(%d).Index() = %d", i, got)
		}
	}
	if MustSquare("a8").Index() != 0 || MustSquare("h1").Index() != 63 {
		t.Error("a8 should be index 0 and h1 index 63")
	}
}

func TestSquareIsLight(t *testing.T) {
	tests := map[string]bool{"a8": true, "h1": true, "a1": false, "h8": false, "e4": true, "d4": false}
	for s, want := range tests {
		if got := MustSquare(s).IsLight(); got != want {
			t.Errorf("%s.IsLight() = %v; want %v", s, got, want)
		}
	}
}

func TestNoSquare(t *testing.T) {
	if NoSquare.Valid() {
		t.Error("NoSquare.Valid() = true")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q; want -", NoSquare.String())
	}
}
