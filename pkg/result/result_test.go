package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusivity(t *testing.T) {
	t.Parallel()

	s := Success[string](2)
	f := Failure[int]("bad")

	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.False(t, f.IsSuccess())
	assert.True(t, f.IsFailure())
}

func TestValueAccess(t *testing.T) {
	t.Parallel()

	s := Success[string](7)
	v, ok := s.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	fv, ok := s.FailureValue()
	assert.False(t, ok)
	assert.Equal(t, "", fv)

	f := Failure[int]("boom")
	v, ok = f.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	fv, ok = f.FailureValue()
	assert.True(t, ok)
	assert.Equal(t, "boom", fv)
}

func TestEqualStructure(t *testing.T) {
	t.Parallel()

	assert.True(t, Success[string](2).Equal(Success[string](2)))
	assert.False(t, Success[string](2).Equal(Success[string](3)))
	assert.True(t, Failure[int]("e").Equal(Failure[int]("e")))
	assert.False(t, Failure[int]("e").Equal(Failure[int]("x")))

	// same payload, mismatched variants
	assert.False(t, Success[int](2).Equal(Failure[int](2)))
	assert.False(t, Failure[int](2).Equal(Success[int](2)))
}

func TestEqualReflexive(t *testing.T) {
	t.Parallel()

	s := Success[string]([]int{1, 2, 3})
	assert.True(t, s.Equal(s))
}

func TestEqualIgnoresIdentity(t *testing.T) {
	t.Parallel()

	a := Success[string](5)
	b := Success[string](5)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success(2)", Success[string](2).String())
	assert.Equal(t, "failure(bad)", Failure[int]("bad").String())

	// any payload has a %v form, including ones without a Stringer
	type opaque struct{ n int }
	assert.Equal(t, "success({3})", fmt.Sprint(Success[string](opaque{n: 3})))
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	r := FromPair(5, nil)
	assert.True(t, r.IsSuccess())

	errBoom := errors.New("boom")
	r = FromPair(0, errBoom)
	assert.True(t, r.IsFailure())
	fv, _ := r.FailureValue()
	assert.ErrorIs(t, fv, errBoom)
}

func TestPairRoundTrip(t *testing.T) {
	t.Parallel()

	v, err := Pair(Success[error]("hi"))
	assert.NoError(t, err)
	assert.Equal(t, "hi", v)

	errBad := errors.New("bad")
	v, err = Pair(Failure[string](errBad))
	assert.ErrorIs(t, err, errBad)
	assert.Equal(t, "", v)
}

func TestCreatedAtIsStamped(t *testing.T) {
	t.Parallel()

	r := Success[string](1)
	assert.False(t, r.CreatedAt().IsZero())
}
