package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bowerhall/voxtutor/internal/logger"
)

func newTelegram(token string, r *router) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	t := &telegram{api: api, r: r}

	if err := t.registerCommands(); err != nil {
		logger.Warn("command registration failed", "error", err)
	}

	return t, nil
}

func (t *telegram) registerCommands() error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "teach", Description: "Start conversation"},
		tgbotapi.BotCommand{Command: "reset", Description: "Reset session"},
		tgbotapi.BotCommand{Command: "status", Description: "Show bot status"},
	)

	_, err := t.api.Request(commands)
	return err
}

func (t *telegram) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			go t.handleMessage(ctx, update.Message)
		}
	}
}

func (t *telegram) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	userID := msg.From.ID
	reply := func(text string) error {
		m := tgbotapi.NewMessage(msg.Chat.ID, text)
		_, err := t.api.Send(m)
		return err
	}

	switch {
	case msg.IsCommand():
		logger.Info("command received", "from", userID, "command", msg.Command())
		t.r.handleCommand(userID, msg.Command(), reply)
	case msg.Voice != nil:
		logger.Info("voice received", "from", userID, "duration", msg.Voice.Duration)
		fileID := msg.Voice.FileID
		t.r.handleVoice(ctx, userID, func() (string, error) {
			return t.fileLink(fileID)
		}, reply)
	case msg.Text != "":
		logger.Info("message received", "from", userID, "text", truncate(msg.Text, 50))
		t.r.handleText(ctx, userID, msg.Text, reply)
	}
}

func (t *telegram) fileLink(fileID string) (string, error) {
	file, err := t.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", err
	}

	return file.Link(t.api.Token), nil
}
