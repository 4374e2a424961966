package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keepitcheesy/agente/db"
	"github.com/keepitcheesy/agente/internal/config"
	"github.com/keepitcheesy/agente/internal/handler"
	"github.com/keepitcheesy/agente/internal/pipeline"
	"github.com/keepitcheesy/agente/internal/repository"
	"github.com/keepitcheesy/agente/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	targetFPS      = 30
	statusInterval = 10 * time.Second
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	source := buildFeedSource(cfg)

	var sink pipeline.NarrationSink = pipeline.LogSink{}
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		sink = pipeline.NewQueueSink(db.PushToQueue, db.NarrationQueueKey)
	} else {
		slog.Warn("REDIS_URL not set, narration requests will only be logged")
	}

	var narrations handler.NarrationStore
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		narrations = repository.NewNarrationRepository(db.DB)
	}

	driver, err := pipeline.New(cfg, source, sink)
	if err != nil {
		log.Fatalf("error building pipeline: %v", err)
	}

	store := handler.NewSnapshotStore()
	go serveAPI(store, narrations)

	driver.Start()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / targetFPS)
	defer ticker.Stop()

	last := time.Now()
	lastStatus := time.Now()

	for {
		select {
		case <-sigs:
			slog.Info("received shutdown signal, stopping broadcast")
			driver.Stop()
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now

			driver.Update(delta)
			store.Publish(driver.Status(), driver.RenderFrame())

			if now.Sub(lastStatus) >= statusInterval {
				lastStatus = now
				status := driver.Status()
				slog.Info("broadcast status",
					"episode_id", status.EpisodeID,
					"state", status.State,
					"story", status.StoryTitle,
					"anchor", status.AnchorName,
					"frames", status.FrameCount,
					"rotations", status.AnchorRotations,
					"uptime_seconds", status.UptimeSeconds,
				)
			}
		}
	}
}

func buildFeedSource(cfg *config.Config) news.Source {
	if cfg.RSS.URL != "" {
		return news.NewRSSClient(cfg.RSS.URL)
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		return news.NewFinnHubClient(key)
	}

	log.Fatal("no feed source configured: set rss.url in config or FINNHUB_API_KEY")
	return nil
}

func serveAPI(store handler.BroadcastStore, narrations handler.NarrationStore) {
	h := handler.NewBroadcastHandler(store, narrations)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/status", h.GetStatus)
	r.GET("/frame", h.GetFrame)
	r.GET("/narrations", h.GetNarrations)
	r.GET("/health", h.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
