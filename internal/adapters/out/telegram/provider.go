package telegram

import (
	"context"
	"errors"
	"sync"

	"orderdesk/internal/core/ports"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrIdentityNotConfigured is returned when the requested messaging
// identity has no bot token configured yet.
var ErrIdentityNotConfigured = errors.New("messaging identity is not configured")

// Provider acquires bot identities against the current settings row.
// Settings are re-read on every acquisition so a token changed by an admin
// takes effect without a restart; the connected clients themselves are
// cached per token.
type Provider struct {
	settings ports.SettingsRepository

	mu   sync.Mutex
	bots map[string]*tgbotapi.BotAPI
}

// NewProvider creates a messenger provider backed by the settings store.
func NewProvider(settings ports.SettingsRepository) *Provider {
	return &Provider{
		settings: settings,
		bots:     make(map[string]*tgbotapi.BotAPI),
	}
}

// Staff acquires the staff bot identity.
func (p *Provider) Staff(ctx context.Context) (ports.Messenger, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return p.messenger(settings.StaffBotToken)
}

// Customer acquires the customer bot identity.
func (p *Provider) Customer(ctx context.Context) (ports.Messenger, error) {
	settings, err := p.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return p.messenger(settings.CustomerBotToken)
}

func (p *Provider) messenger(token string) (ports.Messenger, error) {
	if token == "" {
		return nil, ErrIdentityNotConfigured
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bot, ok := p.bots[token]
	if !ok {
		newBot, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			return nil, err
		}
		bot = newBot
		p.bots[token] = bot
	}

	return NewMessenger(bot), nil
}
