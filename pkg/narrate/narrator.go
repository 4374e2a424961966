// Package narrate turns perspective text into audio artifacts. Synthesized
// audio is cached content-addressed by (text, voice, model), so identical
// narration is never synthesized twice.
package narrate

import (
	"crypto/sha256"
	"fmt"
)

type Result struct {
	AudioPath string
	CacheHit  bool
	Model     string
}

type Narrator interface {
	Synthesize(text, voice string) (*Result, error)
}

func cacheKey(text, voice, model string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", text, voice, model)))
	return fmt.Sprintf("%x", sum)[:32]
}
