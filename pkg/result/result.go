// Package result carries either a value or the failures that prevented producing it.
package result

import "github.com/savioruz/geoapi/pkg/failure"

// Unit is the value of a successful command that returns nothing.
type Unit struct{}

type Result[T any] struct {
	value T
	errs  failure.Errors
	ok    bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail builds a failed result. Calling it without errors yields a failure with an empty set.
func Fail[T any](errs ...error) Result[T] {
	return Result[T]{errs: failure.From(failure.Join(errs...))}
}

// Of turns a (value, error) pair into a result.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}

	return Ok(v)
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Errors() failure.Errors {
	return r.errs
}

// Err returns nil on success and the failure set otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}

	return r.errs
}

// Map transforms the value of a successful result and passes failures through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.ok {
		return Result[U]{errs: r.errs}
	}

	return Ok(f(r.value))
}
