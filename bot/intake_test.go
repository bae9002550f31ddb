package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akkubatt/support-bot/databases"
	"github.com/akkubatt/support-bot/databases/mocks"
	"github.com/akkubatt/support-bot/models"
)

const (
	testStaffChat = int64(-100999)
	testSelfID    = int64(1)
)

func newTestBot(reports databases.ReportDatabase, saver PhotoSaver) (*Bot, *fakeSender) {
	api := &fakeSender{}
	b := New(api, saver, reports, testStaffChat, testSelfID)
	b.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return b, api
}

func photoMsg(userID int64, fileID string) *tgbotapi.Message {
	m := userMsg(userID, "")
	m.Photo = []tgbotapi.PhotoSize{{FileID: "thumb"}, {FileID: fileID}}
	return m
}

func TestIntakeFullFlow(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	saver := &fakePhotoSaver{path: "photos/big.jpg"}
	b, api := newTestBot(reports, saver)

	var created models.Report
	reports.On("Create", mock.Anything, mock.Anything).
		Return(7, nil).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(models.Report)
		})

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	assert.Equal(t, intakeIntroText, api.lastText())

	b.handleMessage(ctx, photoMsg(42, "big"))
	assert.Equal(t, "big", saver.savedID)
	assert.Equal(t, askRentalTimeText, api.lastText())

	b.handleMessage(ctx, userMsg(42, "14.06 18:00"))
	assert.Equal(t, askScooterNumberText, api.lastText())

	b.handleMessage(ctx, userMsg(42, "1234"))
	assert.Equal(t, askPhoneNumberText, api.lastText())

	b.handleMessage(ctx, userMsg(42, "89991234567"))
	assert.Equal(t, askCardSuffixText, api.lastText())

	b.handleMessage(ctx, userMsg(42, "4276"))
	assert.Equal(t, askDescriptionText, api.lastText())

	b.handleMessage(ctx, userMsg(42, "Самокат перестал ехать посреди поездки"))
	assert.Equal(t, reportAcceptedText, api.lastText())

	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, "photos/big.jpg", created.Photo)
	assert.Equal(t, "14.06 18:00", created.RentalTime)
	assert.Equal(t, "1234", created.ScooterNumber)
	assert.Equal(t, "+79991234567", created.PhoneNumber)
	assert.Equal(t, "4276", created.CardNumber)
	assert.Equal(t, "Самокат перестал ехать посреди поездки", created.Description)

	assert.Nil(t, b.activeSession(42))
}

func TestIntakeRepromptsWithoutAdvancing(t *testing.T) {
	ctx := context.Background()
	reports := &mocks.ReportDatabase{}
	saver := &fakePhotoSaver{path: "photos/p.jpg"}
	b, api := newTestBot(reports, saver)

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	b.handleMessage(ctx, photoMsg(42, "p"))

	b.handleMessage(ctx, userMsg(42, "вчера вечером"))
	assert.Equal(t, badRentalTimeFormatText, api.lastText())
	assert.Equal(t, awaitRentalTime, b.activeSession(42).state)

	// Older than thirty days at the fixed clock.
	b.handleMessage(ctx, userMsg(42, "01.01 10:00"))
	assert.Equal(t, staleRentalTimeText, api.lastText())
	assert.Equal(t, awaitRentalTime, b.activeSession(42).state)

	b.handleMessage(ctx, userMsg(42, "14.06 18:00"))
	assert.Equal(t, awaitScooterNumber, b.activeSession(42).state)

	b.handleMessage(ctx, userMsg(42, "12ab"))
	assert.Equal(t, scooterNumberNotDigitsText, api.lastText())

	b.handleMessage(ctx, userMsg(42, "123"))
	assert.Equal(t, scooterNumberBadLengthText, api.lastText())
	assert.Equal(t, awaitScooterNumber, b.activeSession(42).state)
}

func TestIntakeMediaGroupRejectedOnce(t *testing.T) {
	ctx := context.Background()
	reports := &mocks.ReportDatabase{}
	saver := &fakePhotoSaver{path: "photos/p.jpg"}
	b, api := newTestBot(reports, saver)

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))

	for i := 0; i < 3; i++ {
		m := photoMsg(42, "album")
		m.MediaGroupID = "group-1"
		b.handleMessage(ctx, m)
	}

	var rejections int
	for _, text := range api.texts() {
		if text == singlePhotoOnlyText {
			rejections++
		}
	}
	assert.Equal(t, 1, rejections)
	assert.Equal(t, awaitPhoto, b.activeSession(42).state)

	// A second album is complained about again.
	m := photoMsg(42, "album")
	m.MediaGroupID = "group-2"
	b.handleMessage(ctx, m)
	assert.Equal(t, singlePhotoOnlyText, api.lastText())
}

func TestIntakeRejectsVideo(t *testing.T) {
	ctx := context.Background()
	reports := &mocks.ReportDatabase{}
	b, api := newTestBot(reports, &fakePhotoSaver{})

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))

	m := userMsg(42, "")
	m.Video = &tgbotapi.Video{FileID: "vid"}
	b.handleMessage(ctx, m)

	assert.Equal(t, photoOnlyText, api.lastText())
	assert.Equal(t, awaitPhoto, b.activeSession(42).state)
}

func TestIntakeSentinelAborts(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	saver := &fakePhotoSaver{path: "photos/p.jpg"}
	b, api := newTestBot(reports, saver)

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	b.handleMessage(ctx, photoMsg(42, "p"))
	b.handleMessage(ctx, userMsg(42, "14.06 18:00"))

	b.handleMessage(ctx, userMsg(42, btnMainMenu))

	assert.Equal(t, mainMenuText, api.lastText())
	assert.Nil(t, b.activeSession(42))
}

func TestIntakeRestartDiscardsDraft(t *testing.T) {
	ctx := context.Background()
	reports := &mocks.ReportDatabase{}
	saver := &fakePhotoSaver{path: "photos/p.jpg"}
	b, _ := newTestBot(reports, saver)

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	b.handleMessage(ctx, photoMsg(42, "p"))
	assert.Equal(t, awaitRentalTime, b.activeSession(42).state)

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	assert.Equal(t, awaitPhoto, b.activeSession(42).state)
	assert.Empty(t, b.activeSession(42).photoPath)
}

func TestIntakeStorageFailure(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	saver := &fakePhotoSaver{path: "photos/p.jpg"}
	b, api := newTestBot(reports, saver)

	reports.On("Create", mock.Anything, mock.Anything).
		Return(0, errors.New("mocked-db-error"))

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	b.handleMessage(ctx, photoMsg(42, "p"))
	b.handleMessage(ctx, userMsg(42, "14.06 18:00"))
	b.handleMessage(ctx, userMsg(42, "1234"))
	b.handleMessage(ctx, userMsg(42, "89991234567"))
	b.handleMessage(ctx, userMsg(42, "4276"))
	b.handleMessage(ctx, userMsg(42, "описание проблемы"))

	assert.Equal(t, reportFailedText, api.lastText())
	assert.Nil(t, b.activeSession(42))
}

func TestUnknownInputOutsideIntake(t *testing.T) {
	ctx := context.Background()
	b, api := newTestBot(&mocks.ReportDatabase{}, &fakePhotoSaver{})

	b.handleMessage(ctx, userMsg(42, "привет"))
	assert.Equal(t, unknownInputText, api.lastText())
}

func TestStartClearsDraft(t *testing.T) {
	ctx := context.Background()
	saver := &fakePhotoSaver{path: "photos/p.jpg"}
	b, api := newTestBot(&mocks.ReportDatabase{}, saver)

	b.handleMessage(ctx, userMsg(42, btnNeedRefund))
	b.handleMessage(ctx, photoMsg(42, "p"))

	start := userMsg(42, "/start")
	start.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}
	b.handleMessage(ctx, start)

	assert.Equal(t, greetingText, api.lastText())
	assert.Nil(t, b.activeSession(42))
}
