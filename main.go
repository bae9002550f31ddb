package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/akkubatt/support-bot/api"
	"github.com/akkubatt/support-bot/api/scheduler"
	"github.com/akkubatt/support-bot/bot"
	"github.com/akkubatt/support-bot/config"
	"github.com/akkubatt/support-bot/databases"
)

func main() {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	client, err := databases.NewClient(conf)
	if err != nil {
		log.Fatalf("failed to create mongo client: %v", err)
	}
	if err := client.Connect(); err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	db := databases.NewDatabase(conf, client)
	reportDB := databases.NewReportDatabase(db)

	botAPI, err := tgbotapi.NewBotAPI(conf.Token)
	if err != nil {
		log.Fatalf("failed to create telegram client: %v", err)
	}

	if err := os.MkdirAll(conf.PhotosDir, 0o755); err != nil {
		log.Fatalf("failed to create photos directory: %v", err)
	}

	photos := bot.NewFileStore(botAPI, conf.Token, conf.PhotosDir)
	b := bot.New(botAPI, photos, reportDB, conf.StaffChatID, botAPI.Self.ID)
	dispatcher := bot.NewDispatcher(botAPI, reportDB, conf.StaffChatID, conf.RelayInterval)

	sched := scheduler.NewScheduler(conf.PhotosDir)
	sched.Start()
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go dispatcher.Run(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	go b.Run(ctx, botAPI.GetUpdatesChan(u))

	zap.S().Infow("akkubatt support bot is up and running",
		"bot", botAPI.Self.UserName,
		"port", conf.Port,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", conf.Port), api.New()))
}
