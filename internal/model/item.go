package model

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Item is the domain model for a todo entry.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"` // milliseconds since epoch
}

// NewID returns an opaque identifier for a new item. Random UUIDs when
// the entropy source cooperates, timestamp plus a random suffix
// otherwise. No uniqueness check against existing ids; collision odds
// are treated as negligible.
func NewID() string {
	u, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%d-%06d", time.Now().UnixMilli(), rand.Intn(1_000_000))
	}
	return u.String()
}

// Now is the creation timestamp for new items.
func Now() int64 {
	return time.Now().UnixMilli()
}
