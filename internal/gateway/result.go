package gateway

// Result is the outcome of a gateway operation: either OK with a Value or a
// classified Err. Callers branch on OK instead of unwinding errors.
type Result[T any] struct {
	OK    bool
	Value T
	Err   *Error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{OK: true, Value: v}
}

// Fail wraps a classified failure.
func Fail[T any](err *Error) Result[T] {
	return Result[T]{Err: err}
}

// Unwrap converts the result to the usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.OK {
		return r.Value, nil
	}
	if r.Err == nil {
		return r.Value, ErrRequest
	}
	return r.Value, r.Err
}
