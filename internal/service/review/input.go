package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

// SubmitReviewInput holds the parameters for recording a review.
type SubmitReviewInput struct {
	CardID uuid.UUID
	Rating domain.ReviewRating
}

// Validate checks all fields and collects all errors.
func (i *SubmitReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be 0 (Again), 1 (Hard), 2 (Good), or 3 (Easy)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DueQueueInput holds the parameters for fetching the due queue.
// AsOf defaults to the current time; Limit defaults to the configured cap.
type DueQueueInput struct {
	AsOf  *time.Time
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *DueQueueInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
