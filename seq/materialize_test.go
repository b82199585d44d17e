package seq_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sequence-utils/seq"
)

func TestToSlice(t *testing.T) {
	got, err := seq.ToSlice(seq.From(3, 1, 2))
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, got)
}

func TestToSliceEmpty(t *testing.T) {
	got, err := seq.ToSlice(seq.Empty[string]())
	require.NoError(t, err)
	require.Equal(t, []string{}, got)
}

func TestToSliceNilSource(t *testing.T) {
	_, err := seq.ToSlice[int](nil)
	require.ErrorIs(t, err, seq.ErrNilSource)
}

func TestToSliceConsumesOneShotSources(t *testing.T) {
	// a single growing pass must not require re-obtaining a cursor
	got, err := seq.ToSlice(seq.FromSeq(oneShot(7, 8, 9)))
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 9}, got)
}

func TestToList(t *testing.T) {
	l, err := seq.ToList(seq.From("a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, 3, l.Count())
	require.Equal(t, []string{"a", "b", "c"}, l.All())
}

func TestToListNilSource(t *testing.T) {
	_, err := seq.ToList[int](nil)
	require.ErrorIs(t, err, seq.ErrNilSource)
}

func TestSliceListRoundTrip(t *testing.T) {
	items, err := seq.ToSlice(seq.From(1, 2, 3, 4))
	require.NoError(t, err)
	l, err := seq.ToList(seq.FromSlice(items))
	require.NoError(t, err)
	require.Equal(t, items, l.ToSlice())
}

func TestToMap(t *testing.T) {
	src := seq.From("apple", "fig", "cherry")
	got, err := seq.ToMap(src,
		func(s string) int { return len(s) },
		strings.ToUpper,
	)
	require.NoError(t, err)
	require.Equal(t, map[int]string{5: "APPLE", 3: "FIG", 6: "CHERRY"}, got)
}

func TestToMapSizeEqualsElementCount(t *testing.T) {
	src := seq.From(10, 20, 30)
	got, err := seq.ToMap(src,
		func(n int) int { return n },
		func(n int) int { return n * n },
	)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestToMapDuplicateKey(t *testing.T) {
	src := seq.From("ant", "bee", "cow")
	_, err := seq.ToMap(src,
		func(s string) int { return len(s) }, // every key is 3
		func(s string) string { return s },
	)
	require.ErrorIs(t, err, seq.ErrDuplicateKey)
}

func TestToMapNilArguments(t *testing.T) {
	src := seq.From(1)
	id := func(n int) int { return n }

	_, err := seq.ToMap[int, int, int](nil, id, id)
	require.ErrorIs(t, err, seq.ErrNilSource)

	_, err = seq.ToMap[int, int, int](src, nil, id)
	require.ErrorIs(t, err, seq.ErrNilFunc)

	_, err = seq.ToMap[int, int, int](src, id, nil)
	require.ErrorIs(t, err, seq.ErrNilFunc)
}

func TestKeyBy(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	src := seq.From(user{1, "alice"}, user{2, "bob"})
	got, err := seq.KeyBy(src, func(u user) int { return u.ID })
	require.NoError(t, err)
	require.Equal(t, map[int]user{1: {1, "alice"}, 2: {2, "bob"}}, got)
}

func TestKeyByDuplicateKey(t *testing.T) {
	src := seq.From(1, 2, 3)
	_, err := seq.KeyBy(src, func(int) string { return "same" })
	require.ErrorIs(t, err, seq.ErrDuplicateKey)
}
