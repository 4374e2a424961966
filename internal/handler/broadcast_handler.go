package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/keepitcheesy/agente/internal/model"

	"github.com/gin-gonic/gin"
)

// BroadcastStore exposes the latest published pipeline state. Implementations
// must be safe for concurrent reads while the tick loop publishes.
type BroadcastStore interface {
	Status() model.Status
	Frame() *model.FrameSnapshot
}

type NarrationStore interface {
	ListRecent(limit int) ([]model.NarrationRecord, error)
}

type BroadcastHandler struct {
	store      BroadcastStore
	narrations NarrationStore
}

func NewBroadcastHandler(store BroadcastStore, narrations NarrationStore) *BroadcastHandler {
	return &BroadcastHandler{store: store, narrations: narrations}
}

func (h *BroadcastHandler) GetStatus(c *gin.Context) {
	s := h.store.Status()

	c.JSON(http.StatusOK, StatusResponse{
		EpisodeID:       s.EpisodeID,
		State:           s.State,
		Running:         s.Running,
		StoryTitle:      s.StoryTitle,
		AnchorName:      s.AnchorName,
		StoriesCovered:  s.StoriesCovered,
		AnchorRotations: s.AnchorRotations,
		RotationCount:   s.RotationCount,
		TimeOnAnchor:    s.TimeOnAnchor,
		FrameCount:      s.FrameCount,
		FramesRendered:  s.FramesRendered,
		UptimeSeconds:   s.UptimeSeconds,
	})
}

func (h *BroadcastHandler) GetFrame(c *gin.Context) {
	frame := h.store.Frame()
	if frame == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active story"})
		return
	}

	c.JSON(http.StatusOK, frameResponse(frame))
}

func (h *BroadcastHandler) GetNarrations(c *gin.Context) {
	if h.narrations == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Narration log not configured"})
		return
	}

	limit := getQueryLimit(c)

	records, err := h.narrations.ListRecent(limit)
	if err != nil {
		slog.Error("error fetching narrations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := NarrationListResponse{Limit: limit, Narrations: []NarrationResponse{}}
	for _, rec := range records {
		res.Narrations = append(res.Narrations, NarrationResponse{
			ID:         rec.ID,
			StoryGUID:  rec.StoryGUID,
			AnchorName: rec.AnchorName,
			Text:       rec.Text,
			Voice:      rec.Voice,
			AudioPath:  rec.AudioPath,
			VideoPath:  rec.VideoPath,
			CacheHit:   rec.CacheHit,
			EpisodeID:  rec.EpisodeID,
			CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *BroadcastHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func frameResponse(frame *model.FrameSnapshot) FrameResponse {
	res := FrameResponse{
		Sequence:    frame.Sequence,
		State:       frame.State,
		EpisodeID:   frame.EpisodeID,
		Timestamp:   frame.Timestamp.Format(time.RFC3339Nano),
		AnchorName:  frame.AnchorName,
		Perspective: frame.Perspective,
		Banner: BannerResponse{
			Enabled:    frame.Banner.Enabled,
			Height:     frame.Banner.Height,
			FontSize:   frame.Banner.FontSize,
			AnchorName: frame.Banner.AnchorName,
			Focus:      frame.Banner.Focus,
			Story:      frame.Banner.Story,
			Color:      frame.Banner.Color,
			Text:       frame.Banner.Text,
		},
		Ticker: TickerResponse{
			Enabled:  frame.Ticker.Enabled,
			Height:   frame.Ticker.Height,
			FontSize: frame.Ticker.FontSize,
			Position: frame.Ticker.Position,
			Speed:    frame.Ticker.Speed,
			Text:     frame.Ticker.Text,
		},
		LiveTag: LiveTagResponse{
			Enabled:     frame.LiveTag.Enabled,
			Position:    frame.LiveTag.Position,
			Timestamp:   frame.LiveTag.Timestamp,
			EpisodeID:   frame.LiveTag.EpisodeID,
			DisplayText: frame.LiveTag.DisplayText,
		},
		Image: ImageResponse{
			Enabled:  frame.Image.Enabled,
			ImageURL: frame.Image.ImageURL,
			PanX:     frame.Image.PanX,
			PanY:     frame.Image.PanY,
			Zoom:     frame.Image.Zoom,
			Elapsed:  frame.Image.Elapsed,
		},
	}

	if frame.Story != nil {
		res.Story = StoryResponse{
			GUID:        frame.Story.GUID,
			Title:       frame.Story.Title,
			Summary:     frame.Story.Summary,
			Link:        frame.Story.Link,
			Source:      frame.Story.Source,
			Publisher:   frame.Story.Publisher,
			ImageURL:    frame.Story.ImageURL,
			PublishedAt: frame.Story.PublishedAt.Format(time.RFC3339),
		}
	}

	return res
}

func getQueryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		return 20
	}
	return limit
}
