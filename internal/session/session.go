package session

import "github.com/bowerhall/voxtutor/internal/llm"

func (s *Session) Turns() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]llm.Message, len(s.turns))
	copy(copied, s.turns)

	return copied
}

// AppendExchange appends a user turn and its paired assistant turn under one
// lock, so no reader ever observes a dangling user-only turn.
func (s *Session) AppendExchange(userTurn, assistantTurn llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, userTurn, assistantTurn)
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

func (s *Store) Get(userID int64) *Session {
	s.mu.RLock()

	sess, ok := s.sessions[userID]
	s.mu.RUnlock()

	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok = s.sessions[userID]; ok {
		return sess
	}

	sess = &Session{}
	s.sessions[userID] = sess

	return sess
}

func (s *Store) Turns(userID int64) []llm.Message {
	return s.Get(userID).Turns()
}

func (s *Store) AppendExchange(userID int64, userTurn, assistantTurn llm.Message) {
	s.Get(userID).AppendExchange(userTurn, assistantTurn)
}

func (s *Store) Reset(userID int64) {
	s.Get(userID).Reset()
}
