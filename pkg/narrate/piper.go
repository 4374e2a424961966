package narrate

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	piperTimeout  = 30 * time.Second
	silentTimeout = 10 * time.Second
)

// PiperNarrator shells out to a local piper binary. When piper is missing or
// fails it degrades to a silent clip so the broadcast keeps a valid audio
// artifact.
type PiperNarrator struct {
	cacheDir string
	model    string
}

func NewPiperNarrator(cacheDir, model string) (*PiperNarrator, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("narrate: create cache dir: %w", err)
	}
	return &PiperNarrator{cacheDir: cacheDir, model: model}, nil
}

func (n *PiperNarrator) Synthesize(text, voice string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("narrate: empty text")
	}

	outPath := filepath.Join(n.cacheDir, cacheKey(text, voice, n.model)+".wav")

	if _, err := os.Stat(outPath); err == nil {
		return &Result{AudioPath: outPath, CacheHit: true, Model: n.model}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), piperTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "piper", "--model", n.model, "--output_file", outPath)
	cmd.Stdin = strings.NewReader(text)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		slog.Error("piper synthesis failed", "error", err, "stderr", stderr.String())
		if err := n.writeSilentAudio(outPath); err != nil {
			return nil, err
		}
		return &Result{AudioPath: outPath, Model: n.model}, nil
	}

	return &Result{AudioPath: outPath, Model: n.model}, nil
}

// writeSilentAudio creates a short silent clip with ffmpeg as a fallback
// artifact.
func (n *PiperNarrator) writeSilentAudio(outPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), silentTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "lavfi",
		"-i", "anullsrc=duration=5:sample_rate=22050",
		"-acodec", "pcm_s16le",
		outPath,
	)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("narrate: silent audio fallback: %w", err)
	}

	slog.Warn("wrote silent audio fallback", "path", outPath)
	return nil
}
