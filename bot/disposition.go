package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/akkubatt/support-bot/databases"
	"github.com/akkubatt/support-bot/models"
)

const dispositionTTL = 30 * time.Minute

type dispositionStep int

const (
	awaitRefundAmount dispositionStep = iota
	awaitComment
	awaitRejectReason
)

// dispositionRequest is one staff member's in-flight decision on a
// report. Keyed by the staff user id, a new button press replaces
// whatever they had open.
type dispositionRequest struct {
	reportID int
	userID   int64

	chatID     int64
	messageID  int
	sourceText string
	hasCaption bool

	step         dispositionStep
	refundAmount float64
	promptIDs    []int
	startedAt    time.Time
}

// handleDispositionCallback reacts to the approve/reject buttons
// under a relayed report. Returns false when the payload is not ours.
func (b *Bot) handleDispositionCallback(_ context.Context, cq *tgbotapi.CallbackQuery) bool {
	if !strings.HasPrefix(cq.Data, "refund:") {
		return false
	}

	parts := strings.Split(cq.Data, ":")
	if len(parts) != 4 || cq.Message == nil {
		b.answerCallback(cq.ID, callbackErrorText)
		return true
	}

	reportID, err := strconv.Atoi(parts[2])
	if err != nil {
		b.answerCallback(cq.ID, callbackErrorText)
		return true
	}
	userID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		b.answerCallback(cq.ID, callbackErrorText)
		return true
	}

	req := &dispositionRequest{
		reportID:   reportID,
		userID:     userID,
		chatID:     cq.Message.Chat.ID,
		messageID:  cq.Message.MessageID,
		sourceText: cq.Message.Text,
		startedAt:  b.now(),
	}
	if cq.Message.Caption != "" {
		req.sourceText = cq.Message.Caption
		req.hasCaption = true
	}

	var prompt, ack string
	switch parts[1] {
	case "approve":
		req.step = awaitRefundAmount
		prompt = askRefundAmountText
		ack = "Укажите сумму возврата"
	case "reject":
		req.step = awaitRejectReason
		prompt = askRejectReasonText
		ack = "Укажите причину отклонения"
	default:
		b.answerCallback(cq.ID, callbackErrorText)
		return true
	}

	b.mu.Lock()
	b.dispositions[cq.From.ID] = req
	b.mu.Unlock()

	b.promptStaff(req, prompt)
	b.answerCallback(cq.ID, ack)
	return true
}

// handleStaffReply drives the admin's reply through the disposition
// steps. The caller already verified the message replies to the bot
// inside the staff chat.
func (b *Bot) handleStaffReply(ctx context.Context, m *tgbotapi.Message) {
	b.mu.Lock()
	req := b.dispositions[m.From.ID]
	b.mu.Unlock()
	if req == nil {
		return
	}

	if b.now().Sub(req.startedAt) > dispositionTTL {
		b.mu.Lock()
		delete(b.dispositions, m.From.ID)
		b.mu.Unlock()
		b.promptStaff(req, staleSessionText)
		return
	}

	switch req.step {
	case awaitRefundAmount:
		amount, err := parseAmount(m.Text)
		if err != nil {
			b.promptStaff(req, badRefundAmountText)
			return
		}
		req.refundAmount = amount
		req.step = awaitComment
		b.promptStaff(req, askCommentText)
		b.deleteStaffExchange(m)

	case awaitComment:
		comment := m.Text
		if comment == "-" {
			comment = ""
		}
		amount := req.refundAmount

		if !b.recordDisposition(ctx, m, req, models.DispositionApproved, &amount) {
			return
		}

		status := fmt.Sprintf("\n\n✅ Заявка одобрена\nСумма возврата: %s₽", formatAmount(amount))
		if comment != "" {
			status += "\nКомментарий: " + comment
		}
		b.editStaffMessage(req, req.sourceText+status)

		notice := fmt.Sprintf("Заявка на возврат одобрена. Сумма: %s₽", formatAmount(amount))
		if comment != "" {
			notice += "\nКомментарий: " + comment
		}
		b.reply(req.userID, notice, nil)

		b.finishDisposition(m, req)

	case awaitRejectReason:
		reason := m.Text

		if !b.recordDisposition(ctx, m, req, models.DispositionRejected, nil) {
			return
		}

		b.editStaffMessage(req, req.sourceText+
			fmt.Sprintf("\n\n❌ Заявка отклонена\nПричина: %s", reason))

		b.reply(req.userID, fmt.Sprintf("Ваша заявка на возврат была отклонена.\nПричина: %s", reason), nil)

		b.finishDisposition(m, req)
	}
}

// recordDisposition writes the decision. Returns false when the
// caller must stop, either the report was already decided or the
// store failed.
func (b *Bot) recordDisposition(ctx context.Context, m *tgbotapi.Message, req *dispositionRequest, status models.DispositionStatus, amount *float64) bool {
	err := b.reports.UpdateDisposition(ctx, req.reportID, status, amount)
	if err == nil {
		return true
	}

	if errors.Is(err, databases.ErrAlreadyDecided) {
		b.mu.Lock()
		delete(b.dispositions, m.From.ID)
		b.mu.Unlock()
		b.promptStaff(req, alreadyDecidedText)
		b.deleteStaffExchange(m)
		return false
	}

	zap.S().Errorw("failed to record disposition", "report_id", req.reportID, "error", err)
	b.promptStaff(req, processErrorText)
	return false
}

// promptStaff replies under the original report message so the
// thread stays readable, and remembers the prompt for cleanup.
func (b *Bot) promptStaff(req *dispositionRequest, text string) {
	msg := tgbotapi.NewMessage(req.chatID, text)
	msg.ReplyToMessageID = req.messageID

	sent, err := b.api.Send(msg)
	if err != nil {
		zap.S().Errorw("failed to prompt staff", "report_id", req.reportID, "error", err)
		return
	}
	req.promptIDs = append(req.promptIDs, sent.MessageID)
}

// editStaffMessage appends the verdict to the relayed report and
// drops its buttons. Photo reports carry the text in the caption.
func (b *Bot) editStaffMessage(req *dispositionRequest, newText string) {
	text := tgbotapi.NewEditMessageText(req.chatID, req.messageID, newText)
	caption := tgbotapi.NewEditMessageCaption(req.chatID, req.messageID, newText)

	first, second := tgbotapi.Chattable(text), tgbotapi.Chattable(caption)
	if req.hasCaption {
		first, second = second, first
	}

	if _, err := b.api.Request(first); err != nil {
		if _, err := b.api.Request(second); err != nil {
			zap.S().Errorw("failed to edit staff message", "report_id", req.reportID, "error", err)
		}
	}
}

// finishDisposition tears the session down and sweeps the dialogue
// messages. Deletions are best-effort.
func (b *Bot) finishDisposition(m *tgbotapi.Message, req *dispositionRequest) {
	b.mu.Lock()
	delete(b.dispositions, m.From.ID)
	b.mu.Unlock()

	b.deleteStaffExchange(m)
	for _, id := range req.promptIDs {
		b.deleteMessage(req.chatID, id)
	}
}

// deleteStaffExchange removes the admin's reply and the prompt it
// answered.
func (b *Bot) deleteStaffExchange(m *tgbotapi.Message) {
	b.deleteMessage(m.Chat.ID, m.MessageID)
	if m.ReplyToMessage != nil {
		b.deleteMessage(m.Chat.ID, m.ReplyToMessage.MessageID)
	}
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		zap.S().Debugw("failed to delete message", "chat_id", chatID, "message_id", messageID, "error", err)
	}
}

// parseAmount accepts "100", "50.50" and "50,50", anything else or a
// non-positive value is an error.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %v", v)
	}
	return v, nil
}

// formatAmount renders 150.50 as "150.5" and 100 as "100", matching
// what riders see in their notification.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
