package deck

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

const (
	maxSentenceLen = 2000
	maxWordLen     = 200
	maxMeaningLen  = 1000
	maxNotesLen    = 2000
	maxInitialVocab = 50
	maxPageSize    = 100
)

// VocabInput describes one vocabulary annotation within an upload.
type VocabInput struct {
	Word         string
	Reading      *string
	Meaning      string
	PartOfSpeech domain.PartOfSpeech
	Notes        *string
}

func (v *VocabInput) validate(prefix string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(v.Word) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".word", Message: "required"})
	} else if len(v.Word) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: prefix + ".word", Message: fmt.Sprintf("max %d characters", maxWordLen)})
	}
	if strings.TrimSpace(v.Meaning) == "" {
		errs = append(errs, domain.FieldError{Field: prefix + ".meaning", Message: "required"})
	} else if len(v.Meaning) > maxMeaningLen {
		errs = append(errs, domain.FieldError{Field: prefix + ".meaning", Message: fmt.Sprintf("max %d characters", maxMeaningLen)})
	}
	if !v.PartOfSpeech.IsValid() {
		errs = append(errs, domain.FieldError{Field: prefix + ".part_of_speech", Message: "unknown part of speech"})
	}
	if v.Notes != nil && len(*v.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: prefix + ".notes", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}

	return errs
}

// UploadScreenshotInput holds the parameters for creating a screenshot with
// its card and optional initial vocabulary.
type UploadScreenshotInput struct {
	AnilistID   int64
	Sentence    string
	Translation *string
	ImageURL    string
	Vocab       []VocabInput
}

// Validate checks all fields and collects all errors.
func (i *UploadScreenshotInput) Validate() error {
	var errs []domain.FieldError

	if i.AnilistID <= 0 {
		errs = append(errs, domain.FieldError{Field: "anilist_id", Message: "required"})
	}
	if strings.TrimSpace(i.Sentence) == "" {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: "required"})
	} else if len(i.Sentence) > maxSentenceLen {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: fmt.Sprintf("max %d characters", maxSentenceLen)})
	}
	if strings.TrimSpace(i.ImageURL) == "" {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "required"})
	}
	if len(i.Vocab) > maxInitialVocab {
		errs = append(errs, domain.FieldError{Field: "vocab", Message: fmt.Sprintf("max %d entries", maxInitialVocab)})
	}
	for idx := range i.Vocab {
		errs = append(errs, i.Vocab[idx].validate(fmt.Sprintf("vocab[%d]", idx))...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SetVisibilityInput holds the parameters for publishing or retracting a screenshot.
type SetVisibilityInput struct {
	ScreenshotID uuid.UUID
	Public       bool
}

// Validate checks all fields and collects all errors.
func (i *SetVisibilityInput) Validate() error {
	if i.ScreenshotID == uuid.Nil {
		return domain.NewValidationError("screenshot_id", "required")
	}
	return nil
}

// UpdateScreenshotInput holds the editable screenshot fields.
type UpdateScreenshotInput struct {
	ScreenshotID uuid.UUID
	Sentence     string
	Translation  *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateScreenshotInput) Validate() error {
	var errs []domain.FieldError

	if i.ScreenshotID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "screenshot_id", Message: "required"})
	}
	if strings.TrimSpace(i.Sentence) == "" {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: "required"})
	} else if len(i.Sentence) > maxSentenceLen {
		errs = append(errs, domain.FieldError{Field: "sentence", Message: fmt.Sprintf("max %d characters", maxSentenceLen)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListMineInput holds pagination for the owner listing.
type ListMineInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListMineInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxPageSize)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BrowsePublicInput holds pagination and filtering for the public pool.
type BrowsePublicInput struct {
	AnilistID *int64
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i *BrowsePublicInput) Validate() error {
	var errs []domain.FieldError

	if i.AnilistID != nil && *i.AnilistID <= 0 {
		errs = append(errs, domain.FieldError{Field: "anilist_id", Message: "must be positive"})
	}
	if i.Limit < 0 || i.Limit > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxPageSize)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
