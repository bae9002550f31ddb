package bot

import (
	"context"
	"fmt"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/akkubatt/support-bot/databases"
	"github.com/akkubatt/support-bot/models"
)

// Dispatcher forwards stored reports to the staff channel. Reports
// stay queued (sent=0) until a delivery attempt succeeds, so a crash
// or a Telegram outage re-delivers rather than drops.
type Dispatcher struct {
	api      Sender
	reports  databases.ReportDatabase
	chatID   int64
	interval time.Duration
}

func NewDispatcher(api Sender, reports databases.ReportDatabase, staffChatID int64, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		api:      api,
		reports:  reports,
		chatID:   staffChatID,
		interval: interval,
	}
}

// Run relays pending reports until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		d.Cycle(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Cycle delivers every queued report once. A failure on one report
// must not block the others.
func (d *Dispatcher) Cycle(ctx context.Context) {
	reports, err := d.reports.ListUnsent(ctx)
	if err != nil {
		zap.S().Errorw("failed to list unsent reports", "error", err)
		return
	}

	for _, report := range reports {
		if err := d.deliver(ctx, report); err != nil {
			zap.S().Errorw("failed to deliver report", "report_id", report.ID, "error", err)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, report models.Report) error {
	count, err := d.reports.CountByPhone(ctx, report.PhoneNumber)
	if err != nil {
		zap.S().Errorw("failed to count reports by phone", "report_id", report.ID, "error", err)
		count = 1
	}

	text := renderReport(report, count)
	markup := decisionKeyboard(report.ID, report.UserID)

	if report.Photo != "" {
		if _, err := os.Stat(report.Photo); err == nil {
			photo := tgbotapi.NewPhoto(d.chatID, tgbotapi.FilePath(report.Photo))
			photo.Caption = text
			photo.ReplyMarkup = markup

			if _, err := d.api.Send(photo); err == nil {
				return d.reports.MarkSent(ctx, report.ID)
			}

			// Fall through to a text-only delivery so a corrupt
			// photo cannot wedge the queue.
			text += fmt.Sprintf("\n[Фото не удалось загрузить: %s]", report.Photo)
		} else {
			text += fmt.Sprintf("\n[Фото недоступно: %s]", report.Photo)
		}
	}

	msg := tgbotapi.NewMessage(d.chatID, text)
	msg.ReplyMarkup = markup
	if _, err := d.api.Send(msg); err != nil {
		return err
	}
	return d.reports.MarkSent(ctx, report.ID)
}

func renderReport(report models.Report, countByPhone int64) string {
	return fmt.Sprintf(
		"📝 Report: #%d\n"+
			"───────────────────────────────\n"+
			"👤 User ID: %d\n"+
			"📱 Номер телефона: %s\n"+
			"🔢 Количество отчетов от этого номера: %d\n"+
			"⏱️ Дата и время начала аренды: %s\n"+
			"🛴 Номер самоката: %s\n"+
			"💳 Номер карты: %s\n"+
			"📋 Описание: %s\n"+
			"───────────────────────────────",
		report.ID, report.UserID, report.PhoneNumber, countByPhone,
		report.RentalTime, report.ScooterNumber, report.CardNumber, report.Description)
}

func decisionKeyboard(reportID int, userID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Подтвердить возврат",
				fmt.Sprintf("refund:approve:%d:%d", reportID, userID)),
			tgbotapi.NewInlineKeyboardButtonData(
				"Отклонить заявку",
				fmt.Sprintf("refund:reject:%d:%d", reportID, userID)),
		),
	)
}
