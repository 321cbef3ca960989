package bot

import (
	"context"

	"github.com/bowerhall/voxtutor/internal/logger"
	"github.com/bowerhall/voxtutor/internal/status"
)

const welcomeMessage = `Hello. If you want to start a free conversation, just send a text or a voice message.
If you want to start teaching, type /teach
If you want to reset the conversation, type /reset`

const teachMessage = "Let's talk"

const chatErrorPrefix = "[ERROR:ChatGPT]: "

// handleCommand dispatches one command event. Unknown commands are ignored
// without a reply.
func (r *router) handleCommand(userID int64, command string, reply func(string) error) {
	switch command {
	case "start":
		r.gate.Guard(userID, reply, func() {
			r.send(reply, welcomeMessage)
		})
	case "teach":
		r.gate.Guard(userID, reply, func() {
			r.send(reply, teachMessage)
		})
	case "reset":
		r.gate.Guard(userID, reply, func() {
			r.sessions.Reset(userID)
			logger.Info("session reset", "user", userID)
		})
	case "status":
		r.gate.Guard(userID, reply, func() {
			r.send(reply, status.Report(r.started))
		})
	}
}

func (r *router) handleText(ctx context.Context, userID int64, text string, reply func(string) error) {
	r.gate.Guard(userID, reply, func() {
		answer, err := r.engine.Converse(ctx, userID, text)
		if err != nil {
			r.send(reply, chatErrorPrefix+err.Error())
			return
		}
		r.send(reply, answer)
	})
}

// handleVoice resolves the attachment URL only after the gate passes, so no
// transport call is made on behalf of an unauthorized sender.
func (r *router) handleVoice(ctx context.Context, userID int64, resolve func() (string, error), reply func(string) error) {
	r.gate.Guard(userID, reply, func() {
		fileURL, err := resolve()
		if err != nil {
			logger.Error("file link resolution failed", "error", err, "user", userID)
			r.send(reply, "[ERROR:Download] "+err.Error())
			return
		}
		r.pipeline.Process(ctx, userID, fileURL, reply)
	})
}

func (r *router) send(reply func(string) error, text string) {
	if err := reply(text); err != nil {
		logger.Error("send failed", "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max] + "..."
}
