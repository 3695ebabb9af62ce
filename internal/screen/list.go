package screen

import "errors"

// Identifiable is anything a list screen can remove by identifier.
type Identifiable interface {
	Identifier() string
}

// List is the local collection of a read screen plus its load state.
type List[T Identifiable] struct {
	state State
	items []T
	err   error
}

func NewList[T Identifiable]() *List[T] {
	return &List[T]{state: Idle}
}

// Restore rebuilds a loaded list from a previously read collection.
func Restore[T Identifiable](items []T) *List[T] {
	return &List[T]{state: Loaded, items: items}
}

func (l *List[T]) State() State { return l.state }
func (l *List[T]) Err() error   { return l.err }
func (l *List[T]) Len() int     { return len(l.items) }

func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) Begin() error {
	next, err := l.state.Transition(Loading)
	if err != nil {
		return err
	}
	l.state = next
	return nil
}

func (l *List[T]) Resolve(items []T) error {
	next, err := l.state.Transition(Loaded)
	if err != nil {
		return err
	}
	l.state = next
	l.items = items
	return nil
}

// Fail ends loading with an empty collection.
func (l *List[T]) Fail(cause error) error {
	next, err := l.state.Transition(Failed)
	if err != nil {
		return err
	}
	l.state = next
	l.items = nil
	l.err = cause
	return nil
}

// Load runs one read: Begin, then Resolve or Fail with the fetch result.
func (l *List[T]) Load(fetch func() ([]T, error)) error {
	if err := l.Begin(); err != nil {
		return err
	}
	items, err := fetch()
	if err != nil {
		if ferr := l.Fail(err); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}
	return l.Resolve(items)
}

// Remove drops every entry whose identifier equals id and reports how many
// were removed.
func (l *List[T]) Remove(id string) (int, error) {
	next, err := l.state.Transition(Loaded)
	if err != nil {
		return 0, err
	}

	kept := l.items[:0:0]
	for _, item := range l.items {
		if item.Identifier() != id {
			kept = append(kept, item)
		}
	}
	removed := len(l.items) - len(kept)
	l.items = kept
	l.state = next
	return removed, nil
}
