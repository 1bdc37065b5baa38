// Package store holds the process-wide UI state: the bank balance and the
// ordered tag list that drives the proportion table.
//
// The store is an explicit value handed to the panes that need it. State
// only changes through Dispatch with one of the typed actions below.
package store

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
)

// State is an immutable snapshot of the store.
type State struct {
	Bank float64
	Tags []string
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	return State{Bank: s.Bank, Tags: slices.Clone(s.Tags)}
}

// Action is one of the typed store actions.
type Action interface {
	Name() string
	String() string
	isAction()
}

type Deposit struct{ Amount float64 }

type Withdraw struct{ Amount float64 }

type Bankrupt struct{}

// SetTags replaces the whole tag list.
type SetTags struct{ Tags []string }

type AddTag struct{ Tag string }

type RemoveTag struct{ Index int }

// MoveTag moves the tag at From so that it ends up at index To.
type MoveTag struct{ From, To int }

func (Deposit) Name() string   { return "deposit" }
func (Withdraw) Name() string  { return "withdraw" }
func (Bankrupt) Name() string  { return "bankrupt" }
func (SetTags) Name() string   { return "set-tags" }
func (AddTag) Name() string    { return "add-tag" }
func (RemoveTag) Name() string { return "remove-tag" }
func (MoveTag) Name() string   { return "move-tag" }

func (a Deposit) String() string   { return "deposit " + FormatAmount(a.Amount) }
func (a Withdraw) String() string  { return "withdraw " + FormatAmount(a.Amount) }
func (Bankrupt) String() string    { return "bankrupt" }
func (a SetTags) String() string   { return fmt.Sprintf("set tags %q", a.Tags) }
func (a AddTag) String() string    { return fmt.Sprintf("add tag %q", a.Tag) }
func (a RemoveTag) String() string { return fmt.Sprintf("remove tag #%d", a.Index) }
func (a MoveTag) String() string   { return fmt.Sprintf("move tag #%d to #%d", a.From, a.To) }

func (Deposit) isAction()   {}
func (Withdraw) isAction()  {}
func (Bankrupt) isAction()  {}
func (SetTags) isAction()   {}
func (AddTag) isAction()    {}
func (RemoveTag) isAction() {}
func (MoveTag) isAction()   {}

// FormatAmount renders a balance without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Reduce applies a to s and returns the next state. It never mutates s.
func Reduce(s State, a Action) State {
	next := s.Clone()
	switch a := a.(type) {
	case Deposit:
		next.Bank += a.Amount
	case Withdraw:
		next.Bank -= a.Amount
	case Bankrupt:
		next.Bank = 0
	case SetTags:
		next.Tags = UniqueTags(a.Tags)
	case AddTag:
		tag := NormalizeTag(a.Tag)
		if tag == "" || ContainsTag(next.Tags, tag) {
			return next
		}
		next.Tags = append(next.Tags, tag)
	case RemoveTag:
		if a.Index < 0 || a.Index >= len(next.Tags) {
			return next
		}
		next.Tags = slices.Delete(next.Tags, a.Index, a.Index+1)
	case MoveTag:
		n := len(next.Tags)
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n || a.From == a.To {
			return next
		}
		tag := next.Tags[a.From]
		next.Tags = slices.Delete(next.Tags, a.From, a.From+1)
		next.Tags = slices.Insert(next.Tags, a.To, tag)
	}
	return next
}

// Change is delivered to listeners after every dispatch.
type Change struct {
	Action Action
	Prev   State
	Next   State
}

// TagsChanged reports whether the dispatch touched the tag list.
func (c Change) TagsChanged() bool {
	return !slices.Equal(c.Prev.Tags, c.Next.Tags)
}

type Listener func(Change)

// Unsubscribe removes a listener. Calling it more than once is a no-op.
type Unsubscribe func()

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	mu        sync.Mutex
	state     State
	listeners []subscription
	nextID    int
}

func New(initial State) *Store {
	s := initial.Clone()
	s.Tags = UniqueTags(s.Tags)
	return &Store{state: s}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch reduces a into the state and notifies listeners in subscription
// order. Listeners run after the lock is released and may dispatch again.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(Change{Action: a, Prev: prev.Clone(), Next: next.Clone()})
	}
}

func (s *Store) Subscribe(fn Listener) Unsubscribe {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
				return sub.id == id
			})
		})
	}
}
