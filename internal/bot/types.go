package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bowerhall/voxtutor/internal/auth"
	"github.com/bowerhall/voxtutor/internal/session"
)

type Bot interface {
	Start(ctx context.Context) error
}

type Config struct {
	Provider string
	Token    string
}

// Conversator is the dialogue surface the router needs.
type Conversator interface {
	Converse(ctx context.Context, userID int64, text string) (string, error)
}

// VoicePipeline handles one voice attachment end to end, replying through
// the given sink.
type VoicePipeline interface {
	Process(ctx context.Context, userID int64, fileURL string, reply func(string) error)
}

// Deps are the collaborators every transport shares, injected once at
// startup.
type Deps struct {
	Gate     *auth.Gate
	Sessions *session.Store
	Engine   Conversator
	Pipeline VoicePipeline
}

type telegram struct {
	api *tgbotapi.BotAPI
	r   *router
}

type router struct {
	gate     *auth.Gate
	sessions *session.Store
	engine   Conversator
	pipeline VoicePipeline
	started  time.Time
}
