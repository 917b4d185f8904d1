package partition

import "testing"

func TestChunksCoverRange(t *testing.T) {
	tests := []struct {
		start, end, size uint64
	}{
		{0, 99, 10},
		{49, 1000, 64},
		{7, 7, 100},
		{0, 0, 1},
		{100, 105, 2},
	}

	for _, tt := range tests {
		chunks := Chunks(tt.start, tt.end, tt.size)
		if len(chunks) == 0 {
			t.Fatalf("Chunks(%d,%d,%d): empty", tt.start, tt.end, tt.size)
		}
		if chunks[0].Start != tt.start {
			t.Errorf("first chunk starts at %d, want %d", chunks[0].Start, tt.start)
		}
		if chunks[len(chunks)-1].End != tt.end {
			t.Errorf("last chunk ends at %d, want %d", chunks[len(chunks)-1].End, tt.end)
		}
		for i := 1; i < len(chunks); i++ {
			if chunks[i].Start != chunks[i-1].End+1 {
				t.Errorf("gap between chunk %d and %d", i-1, i)
			}
		}
		for _, c := range chunks {
			if c.End-c.Start+1 > tt.size {
				t.Errorf("chunk [%d,%d] larger than %d", c.Start, c.End, tt.size)
			}
		}
	}
}

func TestChunksEmptyRange(t *testing.T) {
	if chunks := Chunks(10, 9, 5); chunks != nil {
		t.Errorf("expected nil for inverted range, got %v", chunks)
	}
}

func TestChunkSize(t *testing.T) {
	tests := []struct {
		start, end uint64
		threads    int
		divisor    int
		minSize    uint64
		want       uint64
	}{
		{0, 16000, 4, 4, 1000, 1000},     // computed 1000 == floor
		{0, 1_600_000, 4, 4, 1000, 100000},
		{0, 100, 8, 8, 500, 500},         // floored at minimum
		{100, 50, 4, 4, 1000, 1000},      // inverted range -> minimum
	}

	for _, tt := range tests {
		got := ChunkSize(tt.start, tt.end, tt.threads, tt.divisor, tt.minSize)
		if got != tt.want {
			t.Errorf("ChunkSize(%d,%d,%d,%d,%d) = %d, want %d",
				tt.start, tt.end, tt.threads, tt.divisor, tt.minSize, got, tt.want)
		}
	}
}
