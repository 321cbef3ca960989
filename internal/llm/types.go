package llm

import "context"

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one dialogue turn. Turns are value types; once appended to a
// session they are never mutated.
type Message struct {
	Role    string
	Content string
}

// LLM produces chat completions. Chat returns every candidate completion the
// provider offers, in provider order; callers decide how to present them.
type LLM interface {
	Chat(ctx context.Context, messages []Message) ([]string, error)
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type TranscriberConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Language    string
	Temperature float64
}
