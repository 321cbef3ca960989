package auth

import "github.com/bowerhall/voxtutor/internal/logger"

// RestrictedMessage is the only reply an unauthorized sender ever receives.
const RestrictedMessage = "Sorry. You are not registered. Have a nice day!"

// Gate checks senders against a static allow-list loaded at startup.
type Gate struct {
	allowed map[int64]struct{}
}

func NewGate(userIDs []int64) *Gate {
	allowed := make(map[int64]struct{}, len(userIDs))
	for _, id := range userIDs {
		allowed[id] = struct{}{}
	}
	return &Gate{allowed: allowed}
}

func (g *Gate) Allowed(senderID int64) bool {
	_, ok := g.allowed[senderID]
	return ok
}

// Guard runs action only for allowed senders. Unauthorized senders get the
// fixed rejection reply and nothing else happens on their behalf.
func (g *Gate) Guard(senderID int64, reply func(string) error, action func()) {
	if !g.Allowed(senderID) {
		logger.Info("sender rejected", "sender", senderID)
		if err := reply(RestrictedMessage); err != nil {
			logger.Error("rejection reply failed", "error", err, "sender", senderID)
		}
		return
	}

	action()
}
