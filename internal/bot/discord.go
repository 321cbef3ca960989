package bot

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/bowerhall/voxtutor/internal/logger"
)

type discord struct {
	session *discordgo.Session
	r       *router
	ctx     context.Context
}

func newDiscord(token string, r *router) (Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	d := &discord{session: session, r: r}

	session.AddHandler(d.handleMessage)

	return d, nil
}

func (d *discord) Start(ctx context.Context) error {
	d.ctx = ctx

	if err := d.session.Open(); err != nil {
		return err
	}

	<-ctx.Done()
	return d.session.Close()
}

func (d *discord) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	// Discord user IDs are numeric snowflakes; the allow-list is numeric.
	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		return
	}

	reply := func(text string) error {
		_, err := s.ChannelMessageSendReply(m.ChannelID, text, m.Reference())
		return err
	}

	if voice := voiceAttachment(m); voice != nil {
		logger.Info("voice received", "from", m.Author.Username)
		d.r.handleVoice(d.ctx, userID, func() (string, error) {
			return voice.URL, nil
		}, reply)
		return
	}

	content := strings.TrimSpace(m.Content)

	// Commands arrive as plain "!teach"-style messages; Discord has no
	// bot-command menu equivalent to Telegram's.
	if strings.HasPrefix(content, "!") {
		d.r.handleCommand(userID, strings.TrimPrefix(strings.Fields(content)[0], "!"), reply)
		return
	}

	if content == "" {
		return
	}

	logger.Info("message received", "from", m.Author.Username, "text", truncate(content, 50))
	d.r.handleText(d.ctx, userID, content, reply)
}

func voiceAttachment(m *discordgo.MessageCreate) *discordgo.MessageAttachment {
	for _, a := range m.Attachments {
		if strings.HasPrefix(a.ContentType, "audio/") {
			return a
		}
	}
	return nil
}
