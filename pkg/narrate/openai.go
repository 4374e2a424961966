package narrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAINarrator synthesizes speech through the OpenAI audio API. The cache
// layout matches PiperNarrator so both can share a directory.
type OpenAINarrator struct {
	client    *openai.Client
	model     openai.SpeechModel
	modelName string
	cacheDir  string
}

func NewOpenAINarrator(apiKey, cacheDir string) (*OpenAINarrator, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("narrate: create cache dir: %w", err)
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAINarrator{
		client:    &client,
		model:     openai.SpeechModelTTS1,
		modelName: "tts-1",
		cacheDir:  cacheDir,
	}, nil
}

func (n *OpenAINarrator) Synthesize(text, voice string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("narrate: empty text")
	}

	outPath := fmt.Sprintf("%s/%s.wav", n.cacheDir, cacheKey(text, voice, n.modelName))

	if _, err := os.Stat(outPath); err == nil {
		return &Result{AudioPath: outPath, CacheHit: true, Model: n.modelName}, nil
	}

	resp, err := n.client.Audio.Speech.New(context.Background(), openai.AudioSpeechNewParams{
		Model:          n.model,
		Input:          text,
		Voice:          speechVoice(voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatWAV,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech error: %w", err)
	}
	defer resp.Body.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(outPath)
		return nil, fmt.Errorf("narrate: write audio: %w", err)
	}

	return &Result{AudioPath: outPath, Model: n.modelName}, nil
}

// speechVoice maps a configured voice key onto one of the API voices,
// defaulting to alloy for unknown keys.
func speechVoice(voice string) openai.AudioSpeechNewParamsVoice {
	switch strings.ToLower(voice) {
	case "echo":
		return openai.AudioSpeechNewParamsVoiceEcho
	case "fable":
		return openai.AudioSpeechNewParamsVoiceFable
	case "onyx":
		return openai.AudioSpeechNewParamsVoiceOnyx
	case "nova":
		return openai.AudioSpeechNewParamsVoiceNova
	case "shimmer":
		return openai.AudioSpeechNewParamsVoiceShimmer
	default:
		return openai.AudioSpeechNewParamsVoiceAlloy
	}
}
