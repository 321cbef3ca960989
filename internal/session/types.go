package session

import (
	"sync"

	"github.com/bowerhall/voxtutor/internal/llm"
)

// Session is one user's dialogue history. Turns are append-only; the only
// other mutation is a full clear via Reset.
type Session struct {
	mu    sync.Mutex
	turns []llm.Message
}

// Store owns every Session, keyed by user ID. Sessions are created lazily
// and live for the process lifetime.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}
