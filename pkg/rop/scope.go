package rop

// Scope is the early-exit handle of a Do block. It is only valid while the
// block that created it is running.
type Scope[E error] struct {
	done bool
}

// OptScope is the early-exit handle of a Maybe block.
type OptScope struct {
	done bool
}

type failExit[E error] struct {
	scope *Scope[E]
	err   E
}

type noneExit struct {
	scope *OptScope
}

// Do runs body and wraps what it returns in a success. Inside body, Try, Take
// and Bail end the block early with a failure. The early exit never travels
// past this call: panics that do not belong to this scope are re-raised.
func Do[T any, E error](body func(s *Scope[E]) T) (res Result[T, E]) {
	s := &Scope[E]{}
	defer func() {
		s.done = true
		if p := recover(); p != nil {
			if exit, ok := p.(failExit[E]); ok && exit.scope == s {
				res = Fail[T](exit.err)
				return
			}
			panic(p)
		}
	}()
	return Success[T, E](body(s))
}

// Try yields the value of r, or ends the enclosing Do block with
// Fail(convert(err)). convert is the conversion rule from the error type of r
// to the error type of the block; without one the call does not compile.
func Try[T any, From error, To error](s *Scope[To], r Result[T, From], convert func(From) To) T {
	s.check()
	if r.isSuccess {
		return r.result
	}
	panic(failExit[To]{scope: s, err: convert(r.err)})
}

// Take is Try for results that already carry the block's error type.
func Take[T any, E error](s *Scope[E], r Result[T, E]) T {
	s.check()
	if r.isSuccess {
		return r.result
	}
	panic(failExit[E]{scope: s, err: r.err})
}

// Bail ends the enclosing Do block with err. The return value only exists so
// that call sites can write `return rop.Bail[int](s, err)`.
func Bail[T any, E error](s *Scope[E], err E) T {
	s.check()
	panic(failExit[E]{scope: s, err: err})
}

func (s *Scope[E]) check() {
	if s == nil || s.done {
		panic("rop: scope used outside of its Do block")
	}
}

// Maybe runs body and wraps what it returns in Some. Need ends the block with None.
func Maybe[T any](body func(s *OptScope) T) (res Option[T]) {
	s := &OptScope{}
	defer func() {
		s.done = true
		if p := recover(); p != nil {
			if exit, ok := p.(noneExit); ok && exit.scope == s {
				res = None[T]()
				return
			}
			panic(p)
		}
	}()
	return Some(body(s))
}

// Need yields the value of o, or ends the enclosing Maybe block with None.
func Need[T any](s *OptScope, o Option[T]) T {
	if s == nil || s.done {
		panic("rop: scope used outside of its Maybe block")
	}
	if o.some {
		return o.value
	}
	panic(noneExit{scope: s})
}
