package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Button labels. Several "Назад" variants look identical but differ
// in Latin/Cyrillic letters, each one routes back to its own parent
// menu. Keep the exact byte sequences.
const (
	btnMainMenu = "В главное меню"

	btnWhereMyMoney  = "Почему списалось 300₽❓"
	btnProblem       = "Проблема с самокатом❓"
	btnHowToRent     = "Как арендовать самокат❓"
	btnHowToFinish   = "Как завершить поездку❓"
	btnNoRefund      = "💸 Не пришёл возврат?"
	btnInstallApp    = "🛴 Как установить приложение?"
	btnStartRent     = "🛴 Как арендовать самокат?"
	btnHowToRide     = "🛴 Как кататься?"
	btnRideZones     = "⚠️ Разрешенные зоны для катания"
	btnHowToEndRent  = "⚠️ Как завершить аренду?"
	btnNoFinishBtn   = "⚠️ Нет кнопки завершить"
	btnNeedRefund    = "Нужен возврат❓"
	btnScooterStuck  = "⚠️ Самoкат перестал ехать"
	btnScooterSlow   = "🛴 Cамокат едет медленно?"
	btnNotFound      = "Не нашли что искали❓"
	btnZonesLegacy   = "⚠️ Где можно кататься?"
	btnZonesLegacyV2 = "⚠️ Где можнo кататься?"

	btnBackToRent    = "🔙 Назад"
	btnBackToTrip    = "🔙 Нaзaд"
	btnBackToInstall = "🔙 Нaзад"
	btnBackToProblem = "🔙 Haзaд"
)

// menuRoutes is the authoritative label -> handler table. Every
// reply-keyboard button the bot ever shows is routed here.
var menuRoutes = map[string]func(*Bot, *tgbotapi.Message){
	btnWhereMyMoney:  (*Bot).showWhereMyMoney,
	btnNoRefund:      (*Bot).showReturnDidNotArrive,
	btnHowToRent:     (*Bot).showRentMenu,
	btnInstallApp:    (*Bot).showInstallApp,
	btnStartRent:     (*Bot).showStartRent,
	btnHowToRide:     (*Bot).showHowToRide,
	btnRideZones:     (*Bot).showRideZones,
	btnHowToFinish:   (*Bot).showTripMenu,
	btnHowToEndRent:  (*Bot).showHowToEndRent,
	btnNoFinishBtn:   (*Bot).showNoFinishButton,
	btnProblem:       (*Bot).showProblemMenu,
	btnScooterStuck:  (*Bot).showScooterStuck,
	btnScooterSlow:   (*Bot).showScooterSlow,
	btnNotFound:      (*Bot).showCallSupport,
	btnNeedRefund:    (*Bot).startIntake,
	btnZonesLegacy:   (*Bot).showRideZonesLegacy,
	btnZonesLegacyV2: (*Bot).showRideZonesLegacyV2,

	btnBackToRent:    (*Bot).showRentMenu,
	btnBackToTrip:    (*Bot).showTripMenu,
	btnBackToInstall: (*Bot).showInstallApp,
	btnBackToProblem: (*Bot).showProblemMenu,
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnWhereMyMoney),
			tgbotapi.NewKeyboardButton(btnProblem),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHowToRent),
			tgbotapi.NewKeyboardButton(btnHowToFinish),
		),
	)
}

func mainMenuOnlyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMainMenu),
		),
	)
}

func backKeyboard(backLabel string) tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(backLabel),
			tgbotapi.NewKeyboardButton(btnMainMenu),
		),
	)
}

func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		zap.S().Errorw("failed to send message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) showGreeting(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, greetingText, mainMenuKeyboard())
}

func (b *Bot) showMainMenu(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, mainMenuText, mainMenuKeyboard())
}

func (b *Bot) showWhereMyMoney(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnNoRefund)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
	)
	b.reply(m.Chat.ID, whereMoneyText, kb)
}

func (b *Bot) showReturnDidNotArrive(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, returnDidNotArriveText, mainMenuOnlyKeyboard())
}

func (b *Bot) showRentMenu(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnInstallApp),
			tgbotapi.NewKeyboardButton(btnStartRent),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHowToRide),
			tgbotapi.NewKeyboardButton(btnRideZones),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
	)
	b.reply(m.Chat.ID, chooseTopicText, kb)
}

func (b *Bot) showInstallApp(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, registrationTutorialText, backKeyboard(btnBackToRent))
}

func (b *Bot) showStartRent(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, rentTutorialText, backKeyboard(btnBackToRent))
}

func (b *Bot) showHowToRide(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, howToRideTutorialText, backKeyboard(btnBackToRent))
}

func (b *Bot) showRideZones(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToRent)),
	)
	b.reply(m.Chat.ID, whereICanRideText, kb)
}

func (b *Bot) showTripMenu(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnHowToEndRent),
			tgbotapi.NewKeyboardButton(btnNoFinishBtn),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
	)
	b.reply(m.Chat.ID, chooseTopicText, kb)
}

func (b *Bot) showHowToEndRent(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToTrip)),
	)
	b.reply(m.Chat.ID, howStopRentText, kb)
}

func (b *Bot) showNoFinishButton(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToTrip)),
	)
	b.reply(m.Chat.ID, finishRentManualText, kb)
}

func (b *Bot) showProblemMenu(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnNeedRefund),
			tgbotapi.NewKeyboardButton(btnScooterStuck),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnScooterSlow),
			tgbotapi.NewKeyboardButton(btnNotFound),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
	)
	b.reply(m.Chat.ID, chooseTopicText, kb)
}

func (b *Bot) showScooterStuck(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToProblem)),
	)
	b.reply(m.Chat.ID, scooterStoppedText, kb)
}

func (b *Bot) showScooterSlow(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, scooterControlsText, backKeyboard(btnBackToProblem))
}

func (b *Bot) showCallSupport(m *tgbotapi.Message) {
	b.reply(m.Chat.ID, callSupportText, mainMenuOnlyKeyboard())
}

// Older clients may still show the retired zone buttons, keep them
// answering.
func (b *Bot) showRideZonesLegacy(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToTrip)),
	)
	b.reply(m.Chat.ID, whereICanRideText, kb)
}

func (b *Bot) showRideZonesLegacyV2(m *tgbotapi.Message) {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnMainMenu)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnBackToProblem)),
	)
	b.reply(m.Chat.ID, whereICanRideText, kb)
}
