// Package video composes looping MP4 clips from a story image and optional
// narration audio, shelling out to ffmpeg.
package video

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	encodeTimeout = 120 * time.Second
	probeTimeout  = 10 * time.Second
	fetchTimeout  = 30 * time.Second
)

type LoopGenerator struct {
	outputDir       string
	defaultDuration int
	httpClient      *http.Client
}

func NewLoopGenerator(outputDir string, defaultDuration int) (*LoopGenerator, error) {
	if defaultDuration <= 0 {
		return nil, fmt.Errorf("video: default duration must be positive, got %d", defaultDuration)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("video: create output dir: %w", err)
	}
	return &LoopGenerator{
		outputDir:       outputDir,
		defaultDuration: defaultDuration,
		httpClient:      &http.Client{Timeout: fetchTimeout},
	}, nil
}

// ComposeLoop builds a looping clip. With duration <= 0 the duration is taken
// from the audio length when audio is present, else the configured default.
// A missing image falls back to a color-bar test pattern.
func (g *LoopGenerator) ComposeLoop(imagePath, audioPath string, duration int) (string, error) {
	if duration <= 0 {
		duration = g.defaultDuration
		if audioPath != "" {
			if probed, err := g.probeAudioDuration(audioPath); err == nil {
				duration = probed
			} else {
				slog.Warn("audio duration probe failed, using default", "error", err)
			}
		}
	}

	outPath := filepath.Join(g.outputDir, g.outputName(imagePath, audioPath, duration))

	args := []string{"-y"}

	if imagePath != "" && fileExists(imagePath) {
		args = append(args, "-loop", "1", "-i", imagePath, "-t", strconv.Itoa(duration))
	} else {
		args = append(args, "-f", "lavfi", "-i", fmt.Sprintf("testsrc=duration=%d:size=1920x1080:rate=30", duration))
	}

	hasAudio := audioPath != "" && fileExists(audioPath)
	if hasAudio {
		args = append(args, "-i", audioPath)
	}

	args = append(args,
		"-c:v", "libx264",
		"-preset", "medium",
		"-crf", "23",
		"-pix_fmt", "yuv420p",
		"-vf", "scale=1920:1080:force_original_aspect_ratio=decrease,pad=1920:1080:(ow-iw)/2:(oh-ih)/2",
		"-r", "30",
	)

	if hasAudio {
		args = append(args, "-c:a", "aac", "-b:a", "128k", "-ar", "44100")
	} else {
		args = append(args, "-an")
	}

	args = append(args, outPath)

	ctx, cancel := context.WithTimeout(context.Background(), encodeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("video: ffmpeg failed: %w: %s", err, stderr.String())
	}

	return outPath, nil
}

// FetchImage downloads a story image into the output directory so ffmpeg can
// read it. Returns an empty path on any failure; callers fall back to the
// test pattern.
func (g *LoopGenerator) FetchImage(imageURL string) string {
	if imageURL == "" || !strings.HasPrefix(imageURL, "http") {
		return imageURL
	}

	resp, err := g.httpClient.Get(imageURL)
	if err != nil {
		slog.Warn("image fetch failed", "url", imageURL, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("image fetch failed", "url", imageURL, "status", resp.StatusCode)
		return ""
	}

	sum := sha256.Sum256([]byte(imageURL))
	outPath := filepath.Join(g.outputDir, fmt.Sprintf("img_%x%s", sum[:8], imageExt(imageURL)))

	out, err := os.Create(outPath)
	if err != nil {
		slog.Warn("image save failed", "path", outPath, "error", err)
		return ""
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(outPath)
		slog.Warn("image save failed", "path", outPath, "error", err)
		return ""
	}

	return outPath
}

func (g *LoopGenerator) probeAudioDuration(audioPath string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)

	out, err := cmd.Output()
	if err != nil {
		return 0, err
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, err
	}

	// Round up so the clip never cuts narration short.
	return int(seconds) + 1, nil
}

func (g *LoopGenerator) outputName(imagePath, audioPath string, duration int) string {
	key := fmt.Sprintf("%s|%s|%d", imagePath, audioPath, duration)
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", sum)[:32] + ".mp4"
}

func imageExt(imageURL string) string {
	ext := filepath.Ext(imageURL)
	if ext == "" || len(ext) > 5 {
		return ".jpg"
	}
	return ext
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
