// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literal is the reference the routines are checked against: a direct sum
// with the sign flipped for multiples of m.
func literal(n, m int) int {
	pos, neg := 0, 0
	for i := 0; i <= n; i++ {
		if i%m == 0 {
			neg += i
		} else {
			pos += i
		}
	}
	return pos - neg
}

func TestDifferenceOfSums(t *testing.T) {
	tests := []struct {
		name string
		n, m int
		want int
	}{
		{name: "ten by three", n: 10, m: 3, want: 19},
		{name: "five by six has no positive multiples", n: 5, m: 6, want: 15},
		{name: "five by one negates everything", n: 5, m: 1, want: -15},
		{name: "zero bound", n: 0, m: 7, want: 0},
		{name: "bound equals divisor", n: 4, m: 4, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DifferenceOfSums(tt.n, tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			formula, err := DifferenceOfSumsFormula(tt.n, tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, formula)
		})
	}
}

func TestDifferenceOfSums_MatchesLiteralSum(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for m := 1; m <= 12; m++ {
			want := literal(n, m)

			got, err := DifferenceOfSums(n, m)
			require.NoError(t, err)
			require.Equal(t, want, got, "loop n=%d m=%d", n, m)

			formula, err := DifferenceOfSumsFormula(n, m)
			require.NoError(t, err)
			require.Equal(t, want, formula, "formula n=%d m=%d", n, m)
		}
	}
}

func TestDifferenceOfSumsFormula_LargeBounds(t *testing.T) {
	tests := []struct {
		name string
		n, m int
		want int
	}{
		// n(n+1) exceeds the int range in each of these; the results do not.
		{name: "odd bound by two", n: 4_300_000_001, m: 2, want: 2_150_000_001},
		{name: "even bound by two", n: 4_300_000_000, m: 2, want: -2_150_000_000},
		{name: "odd bound by three", n: 4_300_000_001, m: 3, want: 3_081_666_671_683_333_335},
		{name: "every term negated", n: 4_000_000_000, m: 1, want: -8_000_000_002_000_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DifferenceOfSumsFormula(tt.n, tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTriangular(t *testing.T) {
	for x := 0; x <= 100; x++ {
		assert.Equal(t, x*(x+1)/2, triangular(x), "x=%d", x)
	}
	assert.Equal(t, 8_000_000_002_000_000_000, triangular(4_000_000_000))
}

func TestDifferenceOfSums_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name    string
		n, m    int
		wantErr error
	}{
		{name: "zero divisor", n: 10, m: 0, wantErr: ErrInvalidDivisor},
		{name: "negative divisor", n: 10, m: -3, wantErr: ErrInvalidDivisor},
		{name: "negative bound", n: -1, m: 3, wantErr: ErrNegativeBound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DifferenceOfSums(tt.n, tt.m)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = DifferenceOfSumsFormula(tt.n, tt.m)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDifferenceOfSums_Idempotent(t *testing.T) {
	first, err := DifferenceOfSums(1000, 7)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := DifferenceOfSums(1000, 7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
