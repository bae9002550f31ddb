package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeSender records everything the bot sends. sendErrs, when set,
// are consumed one per Send call to simulate delivery failures.
type fakeSender struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErrs []error
	nextID   int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	var err error
	if len(f.sendErrs) > 0 {
		err = f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
	}
	if err != nil {
		return tgbotapi.Message{}, err
	}

	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// lastText returns the text of the most recent sent message or photo
// caption.
func (f *fakeSender) lastText() string {
	if len(f.sent) == 0 {
		return ""
	}
	return chattableText(f.sent[len(f.sent)-1])
}

func (f *fakeSender) texts() []string {
	out := make([]string, 0, len(f.sent))
	for _, c := range f.sent {
		out = append(out, chattableText(c))
	}
	return out
}

func chattableText(c tgbotapi.Chattable) string {
	switch v := c.(type) {
	case tgbotapi.MessageConfig:
		return v.Text
	case tgbotapi.PhotoConfig:
		return v.Caption
	}
	return ""
}

type fakePhotoSaver struct {
	path    string
	err     error
	savedID string
}

func (f *fakePhotoSaver) Save(fileID string) (string, error) {
	f.savedID = fileID
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

func userMsg(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}
}
