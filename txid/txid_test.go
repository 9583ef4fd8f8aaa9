package txid

import "testing"

func TestNewIsNotAlwaysConstant(t *testing.T) {
	seen := make(map[uint16]bool)
	for i := 0; i < 32; i++ {
		seen[New()] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varied transaction IDs across 32 draws, got %d distinct values", len(seen))
	}
}
