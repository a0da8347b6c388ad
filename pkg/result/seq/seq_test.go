package seq

import (
	"testing"

	"github.com/olivierbellone/r/pkg/result"
	"github.com/stretchr/testify/assert"
)

func TestSequence_AllSuccess(t *testing.T) {
	t.Parallel()

	rs := []result.Result[int, string]{
		result.Success[string](1),
		result.Success[string](2),
		result.Success[string](3),
	}
	out := Sequence(rs)
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestSequence_FailFast(t *testing.T) {
	t.Parallel()

	rs := []result.Result[int, string]{
		result.Success[string](1),
		result.Failure[int]("first"),
		result.Failure[int]("second"),
	}
	out := Sequence(rs)
	e, failed := out.FailureValue()
	assert.True(t, failed)
	assert.Equal(t, "first", e)
}

func TestTraverse(t *testing.T) {
	t.Parallel()

	calls := 0
	half := func(n int) result.Result[int, string] {
		calls++
		if n%2 != 0 {
			return result.Failure[int]("odd")
		}
		return result.Success[string](n / 2)
	}

	out := Traverse([]int{2, 4, 6}, half)
	v, ok := out.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)

	calls = 0
	out = Traverse([]int{2, 3, 4}, half)
	assert.True(t, out.Equal(result.Failure[[]int]("odd")))
	assert.Equal(t, 2, calls, "traverse must stop at the first failure")
}

func TestCollect(t *testing.T) {
	t.Parallel()

	rs := []result.Result[int, string]{
		result.Success[string](1),
		result.Failure[int]("e"),
		result.Success[string](3),
	}
	assert.Equal(t, []int{1, 3}, Collect(rs))
	assert.Empty(t, Collect([]result.Result[int, string]{}))
}

func TestPartition(t *testing.T) {
	t.Parallel()

	rs := []result.Result[int, string]{
		result.Success[string](1),
		result.Failure[int]("a"),
		result.Success[string](2),
		result.Failure[int]("b"),
	}
	values, failures := Partition(rs)
	assert.Equal(t, []int{1, 2}, values)
	assert.Equal(t, []string{"a", "b"}, failures)
}

func TestFirstSuccess(t *testing.T) {
	t.Parallel()

	win := FirstSuccess(
		result.Failure[int]("a"),
		result.Failure[int]("b"),
		result.Success[string](3))
	assert.True(t, win.Equal(result.Success[string](3)))

	keep := FirstSuccess(result.Success[string](1), result.Success[string](2))
	assert.True(t, keep.Equal(result.Success[string](1)))

	lose := FirstSuccess(result.Failure[int]("a"), result.Failure[int]("b"))
	assert.True(t, lose.Equal(result.Failure[int]("a")))
}
