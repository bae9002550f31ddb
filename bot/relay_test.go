package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/akkubatt/support-bot/databases/mocks"
	"github.com/akkubatt/support-bot/models"
)

func TestDispatcherDeliversAndMarksSent(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	api := &fakeSender{}

	reports.On("ListUnsent", mock.Anything).Return([]models.Report{
		{ID: 1, UserID: 42, PhoneNumber: "+79991234567", RentalTime: "14.06 18:00",
			ScooterNumber: "1234", CardNumber: "4276", Description: "не едет"},
	}, nil)
	reports.On("CountByPhone", mock.Anything, "+79991234567").Return(int64(2), nil)
	reports.On("MarkSent", mock.Anything, 1).Return(nil)

	d := NewDispatcher(api, reports, testStaffChat, time.Minute)
	d.Cycle(ctx)

	assert.Len(t, api.sent, 1)
	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.Equal(t, testStaffChat, msg.ChatID)
	assert.Contains(t, msg.Text, "📝 Report: #1")
	assert.Contains(t, msg.Text, "👤 User ID: 42")
	assert.Contains(t, msg.Text, "📱 Номер телефона: +79991234567")
	assert.Contains(t, msg.Text, "🔢 Количество отчетов от этого номера: 2")

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, ok)
	assert.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, "refund:approve:1:42", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "refund:reject:1:42", *markup.InlineKeyboard[0][1].CallbackData)
}

func TestDispatcherIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	api := &fakeSender{sendErrs: []error{nil, errors.New("telegram down")}}

	reports.On("ListUnsent", mock.Anything).Return([]models.Report{
		{ID: 1, UserID: 42, PhoneNumber: "+79991234567"},
		{ID: 2, UserID: 43, PhoneNumber: "+79997654321"},
	}, nil)
	reports.On("CountByPhone", mock.Anything, mock.Anything).Return(int64(1), nil)
	reports.On("MarkSent", mock.Anything, 1).Return(nil)

	d := NewDispatcher(api, reports, testStaffChat, time.Minute)
	d.Cycle(ctx)

	// Report 2's send failed, it stays queued for the next cycle.
	reports.AssertNotCalled(t, "MarkSent", mock.Anything, 2)
}

func TestDispatcherMissingPhotoDegradesToText(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	api := &fakeSender{}

	reports.On("ListUnsent", mock.Anything).Return([]models.Report{
		{ID: 3, UserID: 42, PhoneNumber: "+79991234567", Photo: "photos/gone.jpg"},
	}, nil)
	reports.On("CountByPhone", mock.Anything, mock.Anything).Return(int64(1), nil)
	reports.On("MarkSent", mock.Anything, 3).Return(nil)

	d := NewDispatcher(api, reports, testStaffChat, time.Minute)
	d.Cycle(ctx)

	assert.Len(t, api.sent, 1)
	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	assert.True(t, ok)
	assert.True(t, strings.Contains(msg.Text, "[Фото недоступно: photos/gone.jpg]"))
}

func TestDispatcherListErrorSkipsCycle(t *testing.T) {
	ctx := context.Background()
	reports := mocks.NewReportDatabase(t)
	api := &fakeSender{}

	reports.On("ListUnsent", mock.Anything).Return(nil, errors.New("mocked-db-error"))

	d := NewDispatcher(api, reports, testStaffChat, time.Minute)
	d.Cycle(ctx)

	assert.Empty(t, api.sent)
}
