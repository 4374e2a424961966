package news

import (
	"crypto/sha256"
	"fmt"

	"github.com/keepitcheesy/agente/internal/model"
)

// Source fetches normalized stories from an upstream feed, newest first.
type Source interface {
	Fetch(limit int) ([]model.Story, error)
	Name() string
}

// fallbackGUID derives a stable identity for feed items that carry no guid of
// their own, usually from the item URL.
func fallbackGUID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", sum)[:16]
}
