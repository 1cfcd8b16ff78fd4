package vocab

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

const (
	maxWordLen    = 200
	maxMeaningLen = 1000
	maxNotesLen   = 2000
)

func validateFields(word, meaning string, pos domain.PartOfSpeech, notes *string) []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	} else if len(word) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "word", Message: fmt.Sprintf("max %d characters", maxWordLen)})
	}
	if strings.TrimSpace(meaning) == "" {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: "required"})
	} else if len(meaning) > maxMeaningLen {
		errs = append(errs, domain.FieldError{Field: "meaning", Message: fmt.Sprintf("max %d characters", maxMeaningLen)})
	}
	if !pos.IsValid() {
		errs = append(errs, domain.FieldError{Field: "part_of_speech", Message: "unknown part of speech"})
	}
	if notes != nil && len(*notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotesLen)})
	}

	return errs
}

// AddInput holds the parameters for attaching an annotation.
type AddInput struct {
	ScreenshotID uuid.UUID
	Word         string
	Reading      *string
	Meaning      string
	PartOfSpeech domain.PartOfSpeech
	Notes        *string
}

// Validate checks all fields and collects all errors.
func (i *AddInput) Validate() error {
	var errs []domain.FieldError

	if i.ScreenshotID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "screenshot_id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Word, i.Meaning, i.PartOfSpeech, i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for editing an annotation.
type UpdateInput struct {
	VocabID      uuid.UUID
	Word         string
	Reading      *string
	Meaning      string
	PartOfSpeech domain.PartOfSpeech
	Notes        *string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.VocabID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocab_id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Word, i.Meaning, i.PartOfSpeech, i.Notes)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
