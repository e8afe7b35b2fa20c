package rop

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneNumber struct {
	areaCode Option[uint8]
	number   uint32
}

type job struct {
	phoneNumber Option[phoneNumber]
}

type person struct {
	job Option[job]
}

// workPhoneAreaCode reads person.job?.phoneNumber?.areaCode, counting every field access.
func workPhoneAreaCode(p person, accesses *int) Option[uint8] {
	return Maybe(func(s *OptScope) uint8 {
		*accesses++
		j := Need(s, p.job)
		*accesses++
		phone := Need(s, j.phoneNumber)
		*accesses++
		return Need(s, phone.areaCode)
	})
}

func TestMaybe_ChainedFieldAccess(t *testing.T) {
	t.Parallel()

	p := person{job: Some(job{phoneNumber: Some(phoneNumber{areaCode: Some[uint8](61), number: 439222222})})}
	accesses := 0
	assert.Equal(t, Some[uint8](61), workPhoneAreaCode(p, &accesses))
	assert.Equal(t, 3, accesses)
}

func TestMaybe_ShortCircuitsOnFirstNone(t *testing.T) {
	t.Parallel()

	accesses := 0
	got := workPhoneAreaCode(person{job: None[job]()}, &accesses)
	assert.Equal(t, None[uint8](), got)
	assert.Equal(t, 1, accesses, "accesses after the first None must not run")

	accesses = 0
	got = workPhoneAreaCode(person{job: Some(job{phoneNumber: None[phoneNumber]()})}, &accesses)
	assert.Equal(t, None[uint8](), got)
	assert.Equal(t, 2, accesses)
}

func TestMaybe_NextBirthday(t *testing.T) {
	t.Parallel()

	nextBirthday := func(age Option[uint8]) Option[string] {
		return Maybe(func(s *OptScope) string {
			next := Need(s, age)
			return fmt.Sprintf("Next year I will be %d", next+1)
		})
	}

	assert.Equal(t, Some("Next year I will be 33"), nextBirthday(Some[uint8](32)))
	assert.Equal(t, None[string](), nextBirthday(None[uint8]()))
}

type parseFailure struct {
	input string
	cause error
}

func (e parseFailure) Error() string { return fmt.Sprintf("invalid number %q", e.input) }
func (e parseFailure) Cause() error  { return e.cause }

func parseInt(s string) Res[int] {
	n, err := strconv.Atoi(s)
	return FromPair(n, err)
}

func toParseFailure(input string) func(error) parseFailure {
	return func(err error) parseFailure { return parseFailure{input: input, cause: err} }
}

func multiply(first, second string) Result[int, parseFailure] {
	return Do(func(s *Scope[parseFailure]) int {
		a := Try(s, parseInt(first), toParseFailure(first))
		b := Try(s, parseInt(second), toParseFailure(second))
		return a * b
	})
}

func TestDo_Multiply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success[int, parseFailure](20), multiply("10", "2"))

	r := multiply("t", "2")
	require.True(t, r.IsFailure())
	assert.Contains(t, r.Err().Error(), `"t"`)
	assert.ErrorIs(t, r.Err().Cause(), strconv.ErrSyntax)
}

func TestDo_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	steps := 0
	r := Do(func(s *Scope[error]) int {
		steps++
		Take(s, Fail[int](errors.New("first")))
		steps++
		return Take(s, Ok(1))
	})

	assert.Equal(t, 1, steps)
	assert.EqualError(t, r.Err(), "first")
}

func TestDo_Bail(t *testing.T) {
	t.Parallel()

	r := Do(func(s *Scope[error]) string {
		return Bail[string](s, errors.New("stop"))
	})
	assert.EqualError(t, r.Err(), "stop")
}

func TestDo_ForeignPanicIsNotSwallowed(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "unrelated", func() {
		Do(func(s *Scope[error]) int {
			panic("unrelated")
		})
	})
}

func TestDo_NestedScopesStayConfined(t *testing.T) {
	t.Parallel()

	innerRan := false
	outer := Do(func(outer *Scope[error]) int {
		inner := Do(func(inner *Scope[error]) int {
			innerRan = true
			return Take(inner, Fail[int](errors.New("inner")))
		})
		// the inner failure stopped only the inner block
		assert.EqualError(t, inner.Err(), "inner")
		return Take(outer, inner) + 1
	})

	assert.True(t, innerRan)
	assert.EqualError(t, outer.Err(), "inner")

	viaOuter := Do(func(outer *Scope[error]) int {
		Do(func(inner *Scope[error]) int {
			return Take(outer, Fail[int](errors.New("outer exit")))
		})
		t.Error("outer block must not continue after its own exit")
		return 0
	})
	assert.EqualError(t, viaOuter.Err(), "outer exit")
}

func TestDo_ScopeUsedAfterBlockPanics(t *testing.T) {
	t.Parallel()

	var leaked *Scope[error]
	Do(func(s *Scope[error]) int {
		leaked = s
		return 0
	})

	assert.PanicsWithValue(t, "rop: scope used outside of its Do block", func() {
		Take(leaked, Ok(1))
	})

	var leakedOpt *OptScope
	Maybe(func(s *OptScope) int {
		leakedOpt = s
		return 0
	})
	assert.Panics(t, func() { Need(leakedOpt, Some(1)) })
}
