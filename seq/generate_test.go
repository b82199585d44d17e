package seq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sequence-utils/seq"
)

func TestEmpty(t *testing.T) {
	s := seq.Empty[int]()
	require.Equal(t, []int{}, drain(t, s))

	cur := s.Cursor()
	require.False(t, cur.Next())
	require.NoError(t, cur.Err())
}

func TestRepeat(t *testing.T) {
	s, err := seq.Repeat("x", 3)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "x", "x"}, drain(t, s))
	// restartable: a second cursor produces the run again
	require.Equal(t, []string{"x", "x", "x"}, drain(t, s))
}

func TestRepeatZeroCount(t *testing.T) {
	s, err := seq.Repeat(42, 0)
	require.NoError(t, err)
	require.Equal(t, []int{}, drain(t, s))
}

func TestRepeatNegativeCount(t *testing.T) {
	_, err := seq.Repeat(42, -1)
	require.ErrorIs(t, err, seq.ErrNegativeCount)
}

func TestRange(t *testing.T) {
	s, err := seq.Range(5, 4)
	require.NoError(t, err)
	require.Equal(t, []int{5, 6, 7, 8}, drain(t, s))
}

func TestRangeZeroCount(t *testing.T) {
	s, err := seq.Range(100, 0)
	require.NoError(t, err)
	require.Equal(t, []int{}, drain(t, s))
}

func TestRangeNegativeStart(t *testing.T) {
	s, err := seq.Range(-2, 5)
	require.NoError(t, err)
	require.Equal(t, []int{-2, -1, 0, 1, 2}, drain(t, s))
}

func TestRangeNegativeCount(t *testing.T) {
	_, err := seq.Range(0, -1)
	require.ErrorIs(t, err, seq.ErrNegativeCount)
}

func TestRangeOverflow(t *testing.T) {
	// the check happens up front, before any element is produced
	_, err := seq.Range(math.MaxInt, 2)
	require.ErrorIs(t, err, seq.ErrRangeOverflow)

	_, err = seq.Range(math.MaxInt-1, 3)
	require.ErrorIs(t, err, seq.ErrRangeOverflow)
}

func TestRangeEndingAtMaxInt(t *testing.T) {
	s, err := seq.Range(math.MaxInt-1, 2)
	require.NoError(t, err)
	require.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, drain(t, s))
}

func TestRepeatIsLazy(t *testing.T) {
	// a huge run costs nothing until it is advanced
	s, err := seq.Repeat(0, math.MaxInt)
	require.NoError(t, err)
	cur := s.Cursor()
	require.True(t, cur.Next())
	require.Equal(t, 0, cur.Current())
}
