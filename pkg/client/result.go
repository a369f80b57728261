package client

// Status classifies the outcome of a list read.
type Status int

const (
	// StatusSuccess means the read returned at least one item.
	StatusSuccess Status = iota
	// StatusEmpty means the read succeeded with no items.
	StatusEmpty
	// StatusError means the read failed; Err holds the cause.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusEmpty:
		return "empty"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a list read. A failed read still renders as an
// empty list through Items.
type Result[T any] struct {
	Status Status
	Err    error
	items  []T
}

func successResult[T any](items []T) Result[T] {
	if len(items) == 0 {
		return Result[T]{Status: StatusEmpty, items: []T{}}
	}
	return Result[T]{Status: StatusSuccess, items: items}
}

func errorResult[T any](err error) Result[T] {
	return Result[T]{Status: StatusError, Err: err, items: []T{}}
}

// Items returns the fetched items, never nil.
func (r Result[T]) Items() []T {
	if r.items == nil {
		return []T{}
	}
	return r.items
}

// Len returns the number of items.
func (r Result[T]) Len() int {
	return len(r.items)
}

// OK reports whether the read succeeded, empty or not.
func (r Result[T]) OK() bool {
	return r.Status != StatusError
}
