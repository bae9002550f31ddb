package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("TELEGRAM_BOT_TOKEN", "123456:test-token")
	os.Setenv("TELEGRAM_CHAT_ID", "-1001234567890")
	os.Unsetenv("MONGODB_URI")
	os.Unsetenv("RELAY_INTERVAL")

	conf := New()

	assert.Equal(t, "123456:test-token", conf.Token)
	assert.Equal(t, int64(-1001234567890), conf.StaffChatID)
	assert.Equal(t, "mongodb://localhost:27017", conf.MongoURI)
	assert.Equal(t, "AkkuBattBotSup", conf.DatabaseName)
	assert.Equal(t, "photos", conf.PhotosDir)
	assert.Equal(t, 60*time.Second, conf.RelayInterval)
	assert.NoError(t, conf.Validate())
}

func TestNewRelayInterval(t *testing.T) {
	os.Setenv("RELAY_INTERVAL", "15s")
	defer os.Unsetenv("RELAY_INTERVAL")

	assert.Equal(t, 15*time.Second, relayInterval())

	os.Setenv("RELAY_INTERVAL", "not-a-duration")
	assert.Equal(t, 60*time.Second, relayInterval())
}

func TestValidateMissingToken(t *testing.T) {
	conf := &Config{StaffChatID: 42}
	assert.Error(t, conf.Validate())
}

func TestValidateMissingStaffChat(t *testing.T) {
	conf := &Config{Token: "123456:test-token"}
	assert.Error(t, conf.Validate())
}
