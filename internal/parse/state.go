package parse

import (
	"github.com/ef-ds/deque"
)

// State is the cursor the binder walks over classified tokens
type State struct {
	pending *deque.Deque
}

// NewState classifies args and queues the resulting tokens
func NewState(args []string) *State {
	s := &State{
		pending: deque.New(),
	}
	for _, tok := range Tokenize(args) {
		s.pending.PushBack(tok)
	}

	return s
}

// Advance consumes the next token. It returns false once the input is
// exhausted.
func (s *State) Advance() (Token, bool) {
	v, ok := s.pending.PopFront()
	if !ok {
		return Token{}, false
	}

	return v.(Token), true
}

// Peek returns the next token without consuming it
func (s *State) Peek() (Token, bool) {
	v, ok := s.pending.Front()
	if !ok {
		return Token{}, false
	}

	return v.(Token), true
}
