// Package try shortens handling of (value, error) pairs where an error is fatal.
package try

// Fataler stops the program or the test. *testing.T and *log.Logger are Fatalers.
type Fataler interface {
	Fatal(...any)
}

// Either is a value or an error.
type Either[T any] interface {
	// Get returns the pair as it was.
	Get() (T, error)

	// OrFatal returns the value, or calls ftl.Fatal with the error.
	//
	// Helper() of ftl, if any, is called before Fatal.
	OrFatal(ftl Fataler) T
}

// To wraps a pair returned by a function.
//
//	profile := try.To(profiles.Load(path)).OrFatal(t)
func To[T any](v T, err error) Either[T] {
	return either[T]{value: v, err: err}
}

type either[T any] struct {
	value T
	err   error
}

func (e either[T]) Get() (T, error) {
	if e.err != nil {
		return *new(T), e.err
	}
	return e.value, nil
}

func (e either[T]) OrFatal(ftl Fataler) T {
	if e.err == nil {
		return e.value
	}
	if h, ok := ftl.(interface{ Helper() }); ok {
		h.Helper()
	}
	ftl.Fatal(e.err)
	return *new(T)
}
