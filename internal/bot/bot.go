package bot

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/colpuxase-art/poketerps-sub000/pkg/logger"
)

// New builds the long-polling bot. Handler failures are logged through
// OnError; one bad update must never take the poller down or touch
// other chats' sessions.
func New(token string, pollTimeout time.Duration) (*tele.Bot, error) {
	b, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: pollTimeout},
		OnError: func(err error, c tele.Context) {
			logger.Error("bot handler failed", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return b, nil
}
