package maybe

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropx/pkg/rop"
)

func TestMap_Identity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := func(_ context.Context, v string) string { return v }

	for _, in := range []rop.Option[string]{rop.Some("x"), rop.Some(""), rop.None[string]()} {
		assert.Equal(t, in, Map(ctx, in, id))
	}
}

func TestChain_Associativity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	half := func(_ context.Context, v int) rop.Option[int] {
		if v%2 != 0 {
			return rop.None[int]()
		}
		return rop.Some(v / 2)
	}
	positive := func(_ context.Context, v int) rop.Option[string] {
		if v <= 0 {
			return rop.None[string]()
		}
		return rop.Some(fmt.Sprint(v))
	}

	for _, in := range []rop.Option[int]{rop.Some(8), rop.Some(3), rop.Some(0), rop.None[int]()} {
		left := Chain(ctx, Chain(ctx, in, half), positive)
		right := Chain(ctx, in, func(ctx context.Context, v int) rop.Option[string] {
			return Chain(ctx, half(ctx, v), positive)
		})
		assert.Equal(t, left, right, "input %v", in)
	}
}

func TestChain_SkipsOnNone(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	step := func(_ context.Context, v int) rop.Option[int] {
		calls++
		return rop.Some(v + 1)
	}
	out := Chain(ctx, Chain(ctx, Chain(ctx, rop.None[int](), step), step), step)
	assert.Equal(t, rop.None[int](), out)
	assert.Equal(t, 0, calls)
}

type food int

const (
	apple food = iota
	carrot
	potato
	cordonBleu
	steak
	sushi
)

type peeled struct{ food food }
type chopped struct{ food food }
type cooked struct{ food food }

func process(ctx context.Context, in rop.Option[food]) rop.Option[cooked] {
	p := Map(ctx, in, func(_ context.Context, f food) peeled { return peeled{f} })
	c := Map(ctx, p, func(_ context.Context, p peeled) chopped { return chopped{p.food} })
	return Map(ctx, c, func(_ context.Context, c chopped) cooked { return cooked{c.food} })
}

func eat(ctx context.Context, in rop.Option[cooked]) string {
	return Finally(ctx, in,
		func(_ context.Context, c cooked) string { return fmt.Sprintf("Mmm, I love %d", c.food) },
		func(context.Context) string { return "Oh no! It wasn't edible." })
}

func TestMap_FoodPipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, rop.Some(cooked{apple}), process(ctx, rop.Some(apple)))
	assert.Equal(t, rop.None[cooked](), process(ctx, rop.None[food]()))
	assert.Equal(t, "Oh no! It wasn't edible.", eat(ctx, process(ctx, rop.None[food]())))
	assert.Equal(t, "Mmm, I love 1", eat(ctx, process(ctx, rop.Some(carrot))))
}

func haveIngredients(_ context.Context, f food) rop.Option[food] {
	if f == sushi {
		return rop.None[food]()
	}
	return rop.Some(f)
}

func haveRecipe(_ context.Context, f food) rop.Option[food] {
	if f == cordonBleu {
		return rop.None[food]()
	}
	return rop.Some(f)
}

func cookable(ctx context.Context, f food) rop.Option[food] {
	return Chain(ctx, haveRecipe(ctx, f), haveIngredients)
}

func TestChain_Cookable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, rop.Some(steak), cookable(ctx, steak))
	assert.Equal(t, rop.None[food](), cookable(ctx, cordonBleu))
	assert.Equal(t, rop.None[food](), cookable(ctx, sushi))
	assert.Equal(t, rop.Some(potato), cookable(ctx, potato))
}

func TestTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := make([]int, 0)
	record := func(_ context.Context, v int) { seen = append(seen, v) }
	assert.Equal(t, rop.Some(1), Tee(ctx, rop.Some(1), record))
	assert.Equal(t, rop.None[int](), Tee(ctx, rop.None[int](), record))
	assert.Equal(t, []int{1}, seen)
}

func TestZipAndFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some(Pair[int, string]{First: 1, Second: "a"}), Zip(rop.Some(1), rop.Some("a")))
	assert.Equal(t, rop.None[Pair[int, string]](), Zip(rop.None[int](), rop.Some("a")))
	assert.Equal(t, rop.None[Pair[int, string]](), Zip(rop.Some(1), rop.None[string]()))

	assert.Equal(t, rop.Some(2), Flatten(rop.Some(rop.Some(2))))
	assert.Equal(t, rop.None[int](), Flatten(rop.Some(rop.None[int]())))
	assert.Equal(t, rop.None[int](), Flatten(rop.None[rop.Option[int]]()))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(rop.Some(1), rop.Some(1)))
	assert.False(t, Equal(rop.Some(1), rop.Some(2)))
	assert.True(t, Equal(rop.None[int](), rop.None[int]()))
	assert.False(t, Equal(rop.Some(0), rop.None[int]()))
}

var errMissing = errors.New("missing")

func TestOkOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, rop.Ok(1), OkOr(rop.Some(1), errMissing))
	assert.ErrorIs(t, OkOr(rop.None[int](), errMissing).Err(), errMissing)

	calls := 0
	lazy := func(context.Context) error {
		calls++
		return errMissing
	}
	assert.Equal(t, rop.Ok(1), OkOrElse(ctx, rop.Some(1), lazy))
	assert.Equal(t, 0, calls)
	assert.ErrorIs(t, OkOrElse(ctx, rop.None[int](), lazy).Err(), errMissing)
	assert.Equal(t, 1, calls)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Ok(rop.None[int]()), Transpose(rop.None[rop.Res[int]]()))
	assert.Equal(t, rop.Ok(rop.Some(4)), Transpose(rop.Some(rop.Ok(4))))

	failed := Transpose(rop.Some(rop.Fail[int](errMissing)))
	require.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), errMissing)

	for _, in := range []rop.Option[rop.Res[int]]{
		rop.None[rop.Res[int]](),
		rop.Some(rop.Ok(4)),
		rop.Some(rop.Fail[int](errMissing)),
	} {
		assert.Equal(t, in, Untranspose(Transpose(in)))
	}
}

func TestFirstOfAndLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Some("a"), FirstOf([]string{"a", "b"}))
	assert.Equal(t, rop.None[string](), FirstOf([]string{}))
	assert.Equal(t, rop.None[string](), FirstOf[string](nil))

	ages := map[string]int{"ann": 32}
	assert.Equal(t, rop.Some(32), Lookup(ages, "ann"))
	assert.Equal(t, rop.None[int](), Lookup(ages, "bob"))
}
