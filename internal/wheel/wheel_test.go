package wheel

import "testing"

func TestNextSmallNumbers(t *testing.T) {
	tests := []struct {
		current uint64
		want    uint64
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{3, 5},
		{4, 5},
		{5, 7},
		{6, 7},
		{7, 11},
	}

	for _, tt := range tests {
		if got := Next(tt.current); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

// Walking from 7 must produce exactly the integers coprime to 30, 8 per
// turn of the wheel.
func TestNextWalksCoprimeResidues(t *testing.T) {
	const limit = 10000

	count := 0
	prev := uint64(0)
	for n := uint64(7); n <= limit; n = Next(n) {
		if n%2 == 0 || n%3 == 0 || n%5 == 0 {
			t.Fatalf("walk visited %d, not coprime to 30", n)
		}
		if n <= prev {
			t.Fatalf("walk not strictly increasing at %d", n)
		}
		prev = n
		count++
	}

	// (10000-7)/30 full turns at 8 candidates each, plus the partial turn.
	want := 0
	for n := uint64(7); n <= limit; n++ {
		if n%2 != 0 && n%3 != 0 && n%5 != 0 {
			want++
		}
	}
	if count != want {
		t.Errorf("visited %d candidates, want %d", count, want)
	}
}

func TestNextFromOffTrack(t *testing.T) {
	// Next is total: from a non-admissible number it resumes at the next
	// integer coprime to 30.
	tests := []struct {
		current uint64
		want    uint64
	}{
		{8, 11},
		{9, 11},
		{10, 11},
		{12, 13},
		{30, 31},
		{35, 37},
	}

	for _, tt := range tests {
		if got := Next(tt.current); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestResiduesMatchSkips(t *testing.T) {
	for i, r := range Residues {
		next := Residues[(i+1)%len(Residues)]
		if i == len(Residues)-1 {
			next += Size
		}
		if got := Next(r); got != next {
			t.Errorf("Next(%d) = %d, want %d", r, got, next)
		}
	}
}
