package bot

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/akkubatt/support-bot/databases"
)

// Sender is the slice of the Telegram client the handlers need.
// tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot owns the support chat flows: the help menus, the refund report
// intake and the staff disposition dialogue.
type Bot struct {
	api     Sender
	photos  PhotoSaver
	reports databases.ReportDatabase

	staffChatID int64
	selfID      int64

	mu           sync.Mutex
	sessions     map[int64]*intakeSession
	dispositions map[int64]*dispositionRequest

	now func() time.Time
}

func New(api Sender, photos PhotoSaver, reports databases.ReportDatabase, staffChatID, selfID int64) *Bot {
	return &Bot{
		api:          api,
		photos:       photos,
		reports:      reports,
		staffChatID:  staffChatID,
		selfID:       selfID,
		sessions:     make(map[int64]*intakeSession),
		dispositions: make(map[int64]*dispositionRequest),
		now:          time.Now,
	}
}

// Run consumes the long-polling update channel until the context is
// cancelled.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage routes a single incoming message. Order matters:
// staff replies and the menu sentinel must win over an active intake
// session.
func (b *Bot) handleMessage(ctx context.Context, m *tgbotapi.Message) {
	if m.Chat.ID == b.staffChatID {
		if m.ReplyToMessage != nil && m.ReplyToMessage.From != nil && m.ReplyToMessage.From.ID == b.selfID {
			b.handleStaffReply(ctx, m)
		}
		return
	}

	if m.IsCommand() {
		if m.Command() == "start" {
			b.clearSession(m.From.ID)
			b.showGreeting(m)
		}
		return
	}

	if m.Text == btnMainMenu {
		b.clearSession(m.From.ID)
		b.showMainMenu(m)
		return
	}

	if len(m.Photo) > 0 || m.Video != nil {
		b.handleIntakeMedia(m)
		return
	}

	if b.activeSession(m.From.ID) != nil {
		b.handleIntakeText(ctx, m)
		return
	}

	if handler, ok := menuRoutes[m.Text]; ok {
		handler(b, m)
		return
	}

	b.reply(m.Chat.ID, unknownInputText, nil)
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if b.handleDispositionCallback(ctx, cq) {
		return
	}
	b.answerCallback(cq.ID, "")
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		zap.S().Errorw("failed to answer callback query", "error", err)
	}
}

func (b *Bot) activeSession(userID int64) *intakeSession {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[userID]
}

func (b *Bot) clearSession(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, userID)
}
