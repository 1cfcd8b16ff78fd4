package domain

import (
	"time"

	"github.com/google/uuid"
)

// VocabEntry is a vocabulary annotation attached to a screenshot's sentence.
type VocabEntry struct {
	ID           uuid.UUID
	ScreenshotID uuid.UUID
	Word         string
	Reading      *string
	Meaning      string
	PartOfSpeech PartOfSpeech
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
