package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/akkubatt/support-bot/models"
)

type intakeState int

const (
	awaitPhoto intakeState = iota
	awaitRentalTime
	awaitScooterNumber
	awaitPhone
	awaitCardSuffix
	awaitDescription
)

// intakeSession is one user's refund report draft. Access goes
// through the Bot mutex.
type intakeSession struct {
	state intakeState

	// rejectedMediaGroup remembers the album we already complained
	// about, so a 5-photo album produces one rejection, not five.
	rejectedMediaGroup string

	photoPath     string
	rentalTime    string
	scooterNumber string
	phoneNumber   string
	cardSuffix    string
}

// startIntake opens a fresh report draft. Re-entry discards any
// previous draft.
func (b *Bot) startIntake(m *tgbotapi.Message) {
	b.mu.Lock()
	b.sessions[m.From.ID] = &intakeSession{state: awaitPhoto}
	b.mu.Unlock()

	b.reply(m.Chat.ID, intakeIntroText, mainMenuOnlyKeyboard())
}

func (b *Bot) handleIntakeMedia(m *tgbotapi.Message) {
	s := b.activeSession(m.From.ID)
	if s == nil || s.state != awaitPhoto {
		return
	}

	if m.MediaGroupID != "" {
		if s.rejectedMediaGroup != m.MediaGroupID {
			s.rejectedMediaGroup = m.MediaGroupID
			b.reply(m.Chat.ID, singlePhotoOnlyText, nil)
		}
		return
	}
	s.rejectedMediaGroup = ""

	if m.Video != nil {
		b.reply(m.Chat.ID, photoOnlyText, nil)
		return
	}

	fileID := m.Photo[len(m.Photo)-1].FileID
	path, err := b.photos.Save(fileID)
	if err != nil {
		zap.S().Errorw("failed to save report photo", "user_id", m.From.ID, "file_id", fileID, "error", err)
		b.reply(m.Chat.ID, photoFailedText, nil)
		return
	}

	s.photoPath = path
	s.state = awaitRentalTime
	b.reply(m.Chat.ID, askRentalTimeText, mainMenuOnlyKeyboard())
}

func (b *Bot) handleIntakeText(ctx context.Context, m *tgbotapi.Message) {
	s := b.activeSession(m.From.ID)
	if s == nil {
		return
	}

	switch s.state {
	case awaitPhoto:
		b.reply(m.Chat.ID, askPhotoAgainText, mainMenuOnlyKeyboard())

	case awaitRentalTime:
		rentalTime := strings.TrimSpace(m.Text)
		if !ValidateRentalTimeFormat(rentalTime) {
			b.reply(m.Chat.ID, badRentalTimeFormatText, mainMenuOnlyKeyboard())
			return
		}
		if !validateRentalTimeAt(rentalTime, b.now()) {
			b.reply(m.Chat.ID, staleRentalTimeText, mainMenuOnlyKeyboard())
			return
		}
		s.rentalTime = rentalTime
		s.state = awaitScooterNumber
		b.reply(m.Chat.ID, askScooterNumberText, mainMenuOnlyKeyboard())

	case awaitScooterNumber:
		if !isDigits(m.Text) {
			b.reply(m.Chat.ID, scooterNumberNotDigitsText, mainMenuOnlyKeyboard())
			return
		}
		if len(m.Text) != 4 {
			b.reply(m.Chat.ID, scooterNumberBadLengthText, mainMenuOnlyKeyboard())
			return
		}
		s.scooterNumber = m.Text
		s.state = awaitPhone
		b.reply(m.Chat.ID, askPhoneNumberText, mainMenuOnlyKeyboard())

	case awaitPhone:
		phone := strings.TrimSpace(m.Text)
		if !ValidatePhone(phone) {
			b.reply(m.Chat.ID, badPhoneNumberText, mainMenuOnlyKeyboard())
			return
		}
		normalized, ok := NormalizePhone(phone)
		if !ok {
			b.reply(m.Chat.ID, phoneFormatFailedText, mainMenuOnlyKeyboard())
			return
		}
		s.phoneNumber = normalized
		s.state = awaitCardSuffix
		b.reply(m.Chat.ID, askCardSuffixText, mainMenuOnlyKeyboard())

	case awaitCardSuffix:
		if !isDigits(m.Text) {
			b.reply(m.Chat.ID, cardSuffixNotDigitsText, mainMenuOnlyKeyboard())
			return
		}
		if len(m.Text) != 4 {
			b.reply(m.Chat.ID, cardSuffixBadLengthText, mainMenuOnlyKeyboard())
			return
		}
		s.cardSuffix = m.Text
		s.state = awaitDescription
		b.reply(m.Chat.ID, askDescriptionText, mainMenuOnlyKeyboard())

	case awaitDescription:
		b.commitIntake(ctx, m, s)
	}
}

// commitIntake persists the finished draft. The session is torn down
// either way, on a storage failure the user is asked to refill.
func (b *Bot) commitIntake(ctx context.Context, m *tgbotapi.Message, s *intakeSession) {
	report := models.Report{
		UserID:        m.From.ID,
		Photo:         s.photoPath,
		RentalTime:    s.rentalTime,
		ScooterNumber: s.scooterNumber,
		PhoneNumber:   s.phoneNumber,
		CardNumber:    s.cardSuffix,
		Description:   m.Text,
	}

	id, err := b.reports.Create(ctx, report)
	b.clearSession(m.From.ID)

	if err != nil {
		zap.S().Errorw("failed to save report", "user_id", m.From.ID, "error", err)
		b.reply(m.Chat.ID, reportFailedText, mainMenuOnlyKeyboard())
		return
	}

	zap.S().Infow("report created", "report_id", id, "user_id", m.From.ID)
	b.reply(m.Chat.ID, reportAcceptedText, mainMenuOnlyKeyboard())
}
