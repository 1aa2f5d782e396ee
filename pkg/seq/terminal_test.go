package seq

import (
	"errors"
	"testing"

	"github.com/vnykmshr/seqkit/internal/testutil"
	skerrors "github.com/vnykmshr/seqkit/pkg/common/errors"
)

func TestToSlice(t *testing.T) {
	testutil.AssertDeepEqual(t, FromSlice([]int{1, 2, 3}).ToSlice(), []int{1, 2, 3})
	testutil.AssertEqual(t, len(Empty[int]().ToSlice()), 0)
}

func TestToSliceReturnsFreshSlice(t *testing.T) {
	src := []int{1, 2, 3}
	got := FromSlice(src).ToSlice()
	got[0] = 99
	testutil.AssertEqual(t, src[0], 1)
}

func TestCount(t *testing.T) {
	testutil.AssertEqual(t, FromSlice([]int{1, 2, 3}).Count(), 3)
	testutil.AssertEqual(t, Empty[string]().Count(), 0)
}

func TestAll(t *testing.T) {
	positive := func(x int) bool { return x > 0 }

	if !FromSlice([]int{1, 2, 3}).All(positive) {
		t.Error("All should be true when every element matches")
	}
	if FromSlice([]int{1, -2, 3}).All(positive) {
		t.Error("All should be false when any element fails")
	}
	// Vacuous truth on the empty sequence.
	if !Empty[int]().All(positive) {
		t.Error("All should be true for an empty sequence")
	}
}

func TestAllShortCircuits(t *testing.T) {
	pulled := 0
	s := Generate(func() int { pulled++; return pulled })

	if s.All(func(x int) bool { return x < 3 }) {
		t.Error("All over an eventually-failing infinite sequence should be false")
	}
	testutil.AssertEqual(t, pulled, 3)
}

func TestAny(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	if !FromSlice([]int{1, 3, 4}).Any(even) {
		t.Error("Any should be true when an element matches")
	}
	if FromSlice([]int{1, 3, 5}).Any(even) {
		t.Error("Any should be false when no element matches")
	}
	if Empty[int]().Any(even) {
		t.Error("Any should be false for an empty sequence")
	}
}

func TestNone(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }

	if !FromSlice([]int{1, 3, 5}).None(even) {
		t.Error("None should be true when no element matches")
	}
	if FromSlice([]int{1, 2}).None(even) {
		t.Error("None should be false when an element matches")
	}
	if !Empty[int]().None(even) {
		t.Error("None should be true for an empty sequence")
	}
}

func TestFirst(t *testing.T) {
	v, err := FromSlice([]int{5, 4, 3}).First()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 5)

	_, err = Empty[int]().First()
	if !errors.Is(err, skerrors.ErrEmptySequence) {
		t.Errorf("First on empty should wrap ErrEmptySequence, got %v", err)
	}
}

func TestFirstOK(t *testing.T) {
	v, ok := FromSlice([]string{"a", "b"}).FirstOK()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, "a")

	_, ok = Empty[string]().FirstOK()
	testutil.AssertEqual(t, ok, false)
}

func TestFirstPullsOneElement(t *testing.T) {
	pulled := 0
	s := Generate(func() int { pulled++; return pulled })

	v, err := s.First()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 1)
	testutil.AssertEqual(t, pulled, 1)
}

func TestLast(t *testing.T) {
	// Slice-backed: indexed fast path.
	v, err := FromSlice([]int{5, 4, 3}).Last()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 3)

	// Generator-backed: full traversal, same observable result.
	v, err = Range(0, 100).Last()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 99)

	_, err = Empty[int]().Last()
	if !errors.Is(err, skerrors.ErrEmptySequence) {
		t.Errorf("Last on empty should wrap ErrEmptySequence, got %v", err)
	}
	_, err = FromSlice([]int{}).Last()
	testutil.AssertError(t, err)
}

func TestLastOK(t *testing.T) {
	v, ok := FromSlice([]string{"x", "y"}).LastOK()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, "y")

	_, ok = Empty[string]().LastOK()
	testutil.AssertEqual(t, ok, false)

	_, ok = FromSlice([]string{}).LastOK()
	testutil.AssertEqual(t, ok, false)
}

func TestSingle(t *testing.T) {
	v, err := Of(5).Single()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 5)

	_, err = Empty[int]().Single()
	if !errors.Is(err, skerrors.ErrEmptySequence) {
		t.Errorf("Single on empty should wrap ErrEmptySequence, got %v", err)
	}

	_, err = Of(1, 2).Single()
	if !errors.Is(err, skerrors.ErrMultipleElements) {
		t.Errorf("Single on two elements should wrap ErrMultipleElements, got %v", err)
	}

	// Equal elements still count as multiple.
	_, err = Of(7, 7).Single()
	testutil.AssertError(t, err)
}

func TestSingleStopsAtSecondElement(t *testing.T) {
	pulled := 0
	s := Generate(func() int { pulled++; return pulled })

	_, err := s.Single()
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, pulled, 2)
}

func TestSingleOK(t *testing.T) {
	v, ok := Of(5).SingleOK()
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 5)

	_, ok = Empty[int]().SingleOK()
	testutil.AssertEqual(t, ok, false)

	_, ok = Of(1, 2).SingleOK()
	testutil.AssertEqual(t, ok, false)
}

func TestReduce(t *testing.T) {
	v, err := FromSlice([]int{1, 2, 3, 4}).Reduce(func(acc, v int) int { return acc + v })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, v, 10)

	// Left fold: the first element seeds the accumulator.
	concat, err := FromSlice([]string{"a", "b", "c"}).Reduce(func(acc, v string) string { return acc + v })
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, concat, "abc")

	_, err = Empty[int]().Reduce(func(acc, v int) int { return acc + v })
	if !errors.Is(err, skerrors.ErrEmptySequence) {
		t.Errorf("Reduce on empty should wrap ErrEmptySequence, got %v", err)
	}
}

func TestReduceOK(t *testing.T) {
	v, ok := FromSlice([]int{3}).ReduceOK(func(acc, v int) int { return acc * v })
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, v, 3)

	_, ok = Empty[int]().ReduceOK(func(acc, v int) int { return acc * v })
	testutil.AssertEqual(t, ok, false)
}

func TestForEach(t *testing.T) {
	var got []int
	FromSlice([]int{1, 2, 3}).ForEach(func(v int) { got = append(got, v) })
	testutil.AssertDeepEqual(t, got, []int{1, 2, 3})
}

func TestJoinToString(t *testing.T) {
	tests := []struct {
		name                      string
		elems                     []int
		separator, prefix, suffix string
		want                      string
	}{
		{"plain", []int{1, 2, 3}, ", ", "", "", "1, 2, 3"},
		{"wrapped", []int{1, 2, 3}, "|", "[", "]", "[1|2|3]"},
		{"single", []int{7}, ", ", "<", ">", "<7>"},
		{"empty", nil, ", ", "(", ")", "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSlice(tt.elems).JoinToString(tt.separator, tt.prefix, tt.suffix)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestPartition(t *testing.T) {
	match, rest := FromSlice([]int{1, 2, 3, 4, 5, 6}).Partition(func(x int) bool { return x%2 == 0 })

	testutil.AssertDeepEqual(t, match, []int{2, 4, 6})
	testutil.AssertDeepEqual(t, rest, []int{1, 3, 5})
}

func TestPartitionSingleTraversal(t *testing.T) {
	pulled := 0
	s := FromSlice([]int{1, 2, 3, 4}).Peek(func(int) { pulled++ })

	match, rest := s.Partition(func(x int) bool { return x > 2 })
	testutil.AssertDeepEqual(t, match, []int{3, 4})
	testutil.AssertDeepEqual(t, rest, []int{1, 2})
	testutil.AssertEqual(t, pulled, 4)
}

func TestPartitionCoversSource(t *testing.T) {
	src := []int{5, 1, 4, 2, 3}
	match, rest := FromSlice(src).Partition(func(x int) bool { return x >= 3 })

	testutil.AssertEqual(t, len(match)+len(rest), len(src))
	testutil.AssertDeepEqual(t, match, []int{5, 4, 3})
	testutil.AssertDeepEqual(t, rest, []int{1, 2})
}
