package domain

import "time"

// Title is a catalog entry for an anime or manga series, keyed by its
// AniList identifier.
type Title struct {
	AnilistID   int64
	Title       string
	NativeTitle *string
	Kind        TitleKind
	CoverURL    *string
	SyncedAt    time.Time
}
