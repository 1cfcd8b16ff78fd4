package domain

import (
	"time"

	"github.com/google/uuid"
)

// Screenshot is a captured anime/manga frame with its transcribed sentence.
// A screenshot is private to its creator until published.
type Screenshot struct {
	ID          uuid.UUID
	CreatorID   uuid.UUID
	AnilistID   int64
	Sentence    string
	Translation *string
	ImageURL    string
	Public      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsVisibleTo reports whether the screenshot can be seen by the given user.
// Public screenshots are visible to everyone, private ones only to the creator.
func (s *Screenshot) IsVisibleTo(userID uuid.UUID) bool {
	return s.Public || s.CreatorID == userID
}
