// SPDX-License-Identifier: GPL-2.0-only

package brcore

import "testing"

func TestRingBufferMatchLength(t *testing.T) {
	// 16-byte window: "abcabc" followed by ten 'Z' bytes.
	data := []byte("abcabcZZZZZZZZZZ")

	tests := []struct {
		name  string
		a, b  int
		limit int
		want  int
	}{
		{"three byte match then mismatch", 0, 3, 16, 3}, // "abc..." vs "abc" then diverges at Z
		{"no match at all", 0, 6, 16, 0},                // 'a' vs 'Z'
		{"limited by limit", 6, 7, 2, 2},                // inside the Z run, capped
		{"full remaining run", 6, 7, 20, 9},             // Z run exhausted, then wraps to 'a'
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rb := NewRingBuffer(data, 4) // mask=15, len 16
			got := rb.MatchLength(tc.a, tc.b, tc.limit)
			if got != tc.want {
				t.Errorf("MatchLength(%d,%d,%d) = %d, want %d", tc.a, tc.b, tc.limit, got, tc.want)
			}
		})
	}
}

func TestRingBufferWraparound(t *testing.T) {
	// 8-byte window (mask=7): positions 6 and 14 both land on physical slot 6.
	data := []byte("abcdefgh")
	rb := NewRingBuffer(data, 3)

	if rb.At(6) != rb.At(14) {
		t.Fatalf("At(6)=%d, At(14)=%d; both should read physical slot 6", rb.At(6), rb.At(14))
	}

	rb.Data[6] = 'Z'
	if got := rb.At(14); got != 'Z' {
		t.Fatalf("At(14) = %c, want Z after writing slot 6", got)
	}
}

func TestNewRingBufferSizeInvariant(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched buffer length")
		}
	}()
	NewRingBuffer(make([]byte, 7), 3) // mask=7 needs len 8
}
