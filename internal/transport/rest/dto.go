package rest

import (
	"time"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type screenshotResponse struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creatorId"`
	AnilistID   int64     `json:"anilistId"`
	Sentence    string    `json:"sentence"`
	Translation *string   `json:"translation,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Public      bool      `json:"public"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type vocabResponse struct {
	ID           string  `json:"id"`
	ScreenshotID string  `json:"screenshotId"`
	Word         string  `json:"word"`
	Reading      *string `json:"reading,omitempty"`
	Meaning      string  `json:"meaning"`
	PartOfSpeech string  `json:"partOfSpeech"`
	Notes        *string `json:"notes,omitempty"`
}

type cardResponse struct {
	ID           string    `json:"id"`
	ScreenshotID string    `json:"screenshotId"`
	InReview     bool      `json:"inReview"`
	IntervalDays int       `json:"intervalDays"`
	Repetitions  int       `json:"repetitions"`
	EaseFactor   float64   `json:"easeFactor"`
	NextReviewAt time.Time `json:"nextReviewAt"`
}

type titleResponse struct {
	AnilistID   int64   `json:"anilistId"`
	Title       string  `json:"title"`
	NativeTitle *string `json:"nativeTitle,omitempty"`
	Kind        string  `json:"kind"`
	CoverURL    *string `json:"coverUrl,omitempty"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID.String(),
		Username: u.Username,
	}
}

func toScreenshotResponse(s domain.Screenshot) screenshotResponse {
	return screenshotResponse{
		ID:          s.ID.String(),
		CreatorID:   s.CreatorID.String(),
		AnilistID:   s.AnilistID,
		Sentence:    s.Sentence,
		Translation: s.Translation,
		ImageURL:    s.ImageURL,
		Public:      s.Public,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toScreenshotResponses(ss []domain.Screenshot) []screenshotResponse {
	out := make([]screenshotResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, toScreenshotResponse(s))
	}
	return out
}

func toVocabResponse(v domain.VocabEntry) vocabResponse {
	return vocabResponse{
		ID:           v.ID.String(),
		ScreenshotID: v.ScreenshotID.String(),
		Word:         v.Word,
		Reading:      v.Reading,
		Meaning:      v.Meaning,
		PartOfSpeech: string(v.PartOfSpeech),
		Notes:        v.Notes,
	}
}

func toVocabResponses(vs []domain.VocabEntry) []vocabResponse {
	out := make([]vocabResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVocabResponse(v))
	}
	return out
}

func toCardResponse(c domain.Card) cardResponse {
	return cardResponse{
		ID:           c.ID.String(),
		ScreenshotID: c.ScreenshotID.String(),
		InReview:     c.InReview,
		IntervalDays: c.IntervalDays,
		Repetitions:  c.Repetitions,
		EaseFactor:   c.EaseFactor,
		NextReviewAt: c.NextReviewAt,
	}
}

func toTitleResponse(t domain.Title) titleResponse {
	return titleResponse{
		AnilistID:   t.AnilistID,
		Title:       t.Title,
		NativeTitle: t.NativeTitle,
		Kind:        string(t.Kind),
		CoverURL:    t.CoverURL,
	}
}
