package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/keepitcheesy/agente/db"
	"github.com/keepitcheesy/agente/internal/model"
	"github.com/keepitcheesy/agente/internal/repository"
	"github.com/keepitcheesy/agente/pkg/llm"
	"github.com/keepitcheesy/agente/pkg/narrate"
	"github.com/keepitcheesy/agente/pkg/video"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxAttempts = 3

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	storyRepo := repository.NewStoryRepository(db.DB)
	narrationRepo := repository.NewNarrationRepository(db.DB)

	narrator := buildNarrator()

	var polisher llm.Polisher
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		polisher = llm.NewAnthropicPolisher(key)
	}

	outputDir := os.Getenv("VIDEO_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "/tmp/agente_video"
	}

	loops, err := video.NewLoopGenerator(outputDir, 30)
	if err != nil {
		log.Fatalf("error creating video generator: %v", err)
	}

	for {
		data, err := db.PopFromQueue(db.NarrationQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		var event model.NarrationEvent
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			slog.Error("invalid narration event in queue", "error", err)
			continue
		}

		if event.Attempts >= maxAttempts {
			slog.Warn("narration exceeded max attempts, dead-lettering",
				"story_guid", event.Story.GUID, "anchor", event.AnchorName)
			if err := db.PushToQueue(db.DeadLetterKey, data); err != nil {
				slog.Error("error dead-lettering narration event", "error", err, "story_guid", event.Story.GUID)
			}
			saveRecord(narrationRepo, event, event.Text, "", "", false)
			continue
		}

		if _, err := storyRepo.SaveStory(&event.Story); err != nil {
			slog.Error("error archiving story", "error", err, "story_guid", event.Story.GUID)
		}

		text := event.Text
		if polisher != nil {
			polished, err := polisher.Polish(llm.PolishInput{
				Text:        event.Text,
				AnchorName:  event.AnchorName,
				Focus:       event.Focus,
				Perspective: event.Perspective,
			})
			if err != nil {
				slog.Warn("polish failed, using raw narration text", "error", err)
			} else {
				text = polished
			}
		}

		result, err := narrator.Synthesize(text, event.Voice)
		if err != nil {
			slog.Error("error synthesizing narration", "error", err, "anchor", event.AnchorName)

			event.Attempts++
			if retry, err := json.Marshal(event); err == nil {
				if err := db.PushToQueue(db.NarrationQueueKey, string(retry)); err != nil {
					slog.Error("error requeueing narration event", "error", err, "story_guid", event.Story.GUID)
				}
			}

			time.Sleep(5 * time.Second)
			continue
		}

		imagePath := loops.FetchImage(event.Story.ImageURL)

		videoPath, err := loops.ComposeLoop(imagePath, result.AudioPath, 0)
		if err != nil {
			slog.Error("error composing video loop", "error", err, "story_guid", event.Story.GUID)
			videoPath = ""
		}

		saveRecord(narrationRepo, event, text, result.AudioPath, videoPath, result.CacheHit)

		slog.Info("narration completed",
			"story_guid", event.Story.GUID,
			"anchor", event.AnchorName,
			"cache_hit", result.CacheHit,
			"audio", result.AudioPath,
			"video", videoPath,
		)
	}
}

func buildNarrator() narrate.Narrator {
	cacheDir := os.Getenv("TTS_CACHE_DIR")
	if cacheDir == "" {
		cacheDir = "/tmp/agente_tts"
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		narrator, err := narrate.NewOpenAINarrator(key, cacheDir)
		if err != nil {
			log.Fatalf("error creating narrator: %v", err)
		}
		return narrator
	}

	piperModel := os.Getenv("PIPER_MODEL")
	if piperModel == "" {
		piperModel = "en_US-lessac-medium"
	}

	narrator, err := narrate.NewPiperNarrator(cacheDir, piperModel)
	if err != nil {
		log.Fatalf("error creating narrator: %v", err)
	}
	return narrator
}

func saveRecord(repo *repository.NarrationRepository, event model.NarrationEvent, text, audioPath, videoPath string, cacheHit bool) {
	rec := model.NarrationRecord{
		StoryGUID:  event.Story.GUID,
		AnchorName: event.AnchorName,
		Text:       text,
		Voice:      event.Voice,
		AudioPath:  audioPath,
		VideoPath:  videoPath,
		CacheHit:   cacheHit,
		EpisodeID:  event.EpisodeID,
	}

	if err := repo.SaveNarration(&rec); err != nil {
		slog.Error("error saving narration record", "error", err, "story_guid", event.Story.GUID)
	}
}
