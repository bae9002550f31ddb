package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	Token         string
	StaffChatID   int64
	MongoURI      string
	DatabaseName  string
	PhotosDir     string
	Port          string
	RelayInterval time.Duration
}

// New sets up all config related services
func New() *Config {

	// local development convenience, a missing .env is not an error
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	staffChatID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)

	return &Config{
		Token:         os.Getenv("TELEGRAM_BOT_TOKEN"),
		StaffChatID:   staffChatID,
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:  getEnv("DATABASE_NAME", "AkkuBattBotSup"),
		PhotosDir:     getEnv("PHOTOS_DIR", "photos"),
		Port:          getEnv("PORT", "5000"),
		RelayInterval: relayInterval(),
	}
}

// Validate reports missing required values. The bot must not start
// serving without credentials and a staff chat to relay reports to.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	if c.StaffChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is not set or is not a numeric chat id")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func relayInterval() time.Duration {
	v := os.Getenv("RELAY_INTERVAL")
	if v == "" {
		return 60 * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.S().Warnf("invalid RELAY_INTERVAL %q, using default of 60s", v)
		return 60 * time.Second
	}
	return d
}
