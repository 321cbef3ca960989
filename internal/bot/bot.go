package bot

import (
	"fmt"
	"time"
)

func New(cfg Config, deps Deps) (Bot, error) {
	r := &router{
		gate:     deps.Gate,
		sessions: deps.Sessions,
		engine:   deps.Engine,
		pipeline: deps.Pipeline,
		started:  time.Now(),
	}

	switch cfg.Provider {
	case "telegram":
		return newTelegram(cfg.Token, r)
	case "discord":
		return newDiscord(cfg.Token, r)
	default:
		return nil, fmt.Errorf("unknown bot provider: %s", cfg.Provider)
	}
}
