// Package options implements generic functional options shared by the
// alphabet and sequence constructors.
package options

// Option configures a target of type T, typically a pointer to a config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New wraps a validating configuration function as an Option.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError wraps a configuration function that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
