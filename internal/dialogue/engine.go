package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/bowerhall/voxtutor/internal/llm"
	"github.com/bowerhall/voxtutor/internal/logger"
	"github.com/bowerhall/voxtutor/internal/session"
)

// candidateSeparator joins multiple model candidates into one reply.
const candidateSeparator = " | "

const correctionPrompt = "Fix the sentence mistakes: %s"

// Engine folds user messages into per-user sessions and answers them with
// the completion service.
type Engine struct {
	model    llm.LLM
	sessions *session.Store
}

func NewEngine(model llm.LLM, sessions *session.Store) *Engine {
	return &Engine{model: model, sessions: sessions}
}

// Converse sends the user's full history plus the new message to the model.
// The exchange is recorded only after the model answers; a failed call
// leaves the session exactly as it was.
func (e *Engine) Converse(ctx context.Context, userID int64, text string) (string, error) {
	working := append(e.sessions.Turns(userID), llm.Message{Role: llm.RoleUser, Content: text})

	candidates, err := e.model.Chat(ctx, working)
	if err != nil {
		logger.Error("completion failed", "error", err, "user", userID)
		return "", err
	}

	reply := strings.Join(candidates, candidateSeparator)

	e.sessions.AppendExchange(userID,
		llm.Message{Role: llm.RoleUser, Content: text},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)

	return reply, nil
}

// Correct runs a one-shot grammar pass over text. It never reads or writes
// any session.
func (e *Engine) Correct(ctx context.Context, text string) (string, error) {
	prompt := llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf(correctionPrompt, text)}

	candidates, err := e.model.Chat(ctx, []llm.Message{prompt})
	if err != nil {
		return "", err
	}

	return strings.Join(candidates, candidateSeparator), nil
}
