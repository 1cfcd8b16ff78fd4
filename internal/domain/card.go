package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinEaseFactor is the SM-2 lower bound for a card's ease factor.
const MinEaseFactor = 1.3

// Card holds the SM-2 review state for one user's copy of a screenshot.
// Each (user, screenshot) pair has at most one card.
type Card struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ScreenshotID uuid.UUID
	InReview     bool
	IntervalDays int
	Repetitions  int
	EaseFactor   float64
	NextReviewAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDue returns true if the card is in review and its next review time
// has arrived.
func (c *Card) IsDue(now time.Time) bool {
	return c.InReview && !c.NextReviewAt.After(now)
}

// DueCard is a due-queue item: the card joined with the material the user
// actually reviews.
type DueCard struct {
	Card       Card
	Screenshot Screenshot
	Title      Title
	Vocab      []VocabEntry
}
