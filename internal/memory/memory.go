// Package memory holds the rolling conversation transcript for one warm
// execution context. The store is created once at cold start and mutated by
// every request the context serves; a context recycle discards it, so an
// empty transcript must be valid at any point.
package memory

import (
	"strings"
	"sync"

	"genai-bridge/internal/domain"
)

const defaultMaxTurns = 20

// Store is a size-bounded, in-process conversation memory. When the turn cap
// is exceeded the oldest turn is evicted first.
type Store struct {
	mu       sync.Mutex
	turns    []domain.Turn
	maxTurns int
}

// New creates a Store keeping at most maxTurns turns. Non-positive values
// fall back to the default cap.
func New(maxTurns int) *Store {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Store{maxTurns: maxTurns}
}

// Append adds one completed turn to the end of the transcript, evicting the
// oldest turn when the cap is exceeded.
func (s *Store) Append(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, domain.Turn{Question: question, Answer: answer})
	if len(s.turns) > s.maxTurns {
		s.turns = s.turns[len(s.turns)-s.maxTurns:]
	}
}

// Render returns the transcript formatted for prompt inclusion, oldest turn
// first. An empty transcript renders as the empty string.
func (s *Store) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.turns) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range s.turns {
		b.WriteString("User: ")
		b.WriteString(t.Question)
		b.WriteString("\nAssistant: ")
		b.WriteString(t.Answer)
		b.WriteString("\n")
	}
	return b.String()
}

// Len returns the number of retained turns.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}
