package domain

// TitleKind distinguishes anime and manga titles in the catalog.
type TitleKind string

const (
	TitleKindAnime TitleKind = "ANIME"
	TitleKindManga TitleKind = "MANGA"
)

func (k TitleKind) String() string { return string(k) }

func (k TitleKind) IsValid() bool {
	switch k {
	case TitleKindAnime, TitleKindManga:
		return true
	}
	return false
}

// PartOfSpeech represents the Japanese grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun          PartOfSpeech = "noun"
	PartOfSpeechVerb          PartOfSpeech = "verb"
	PartOfSpeechIAdjective    PartOfSpeech = "i-adjective"
	PartOfSpeechNaAdjective   PartOfSpeech = "na-adjective"
	PartOfSpeechAdverb        PartOfSpeech = "adverb"
	PartOfSpeechPronoun       PartOfSpeech = "pronoun"
	PartOfSpeechParticle      PartOfSpeech = "particle"
	PartOfSpeechConjunction   PartOfSpeech = "conjunction"
	PartOfSpeechInterjection  PartOfSpeech = "interjection"
	PartOfSpeechAuxiliaryVerb PartOfSpeech = "auxiliary-verb"
	PartOfSpeechPrenominal    PartOfSpeech = "prenominal"
	PartOfSpeechPrefix        PartOfSpeech = "prefix"
	PartOfSpeechSuffix        PartOfSpeech = "suffix"
	PartOfSpeechOther         PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechIAdjective, PartOfSpeechNaAdjective,
		PartOfSpeechAdverb, PartOfSpeechPronoun, PartOfSpeechParticle, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechAuxiliaryVerb, PartOfSpeechPrenominal,
		PartOfSpeechPrefix, PartOfSpeechSuffix, PartOfSpeechOther:
		return true
	}
	return false
}

// ReviewRating represents the user's self-assessed recall quality on the 0..3 scale.
type ReviewRating int

const (
	ReviewRatingAgain ReviewRating = 0
	ReviewRatingHard  ReviewRating = 1
	ReviewRatingGood  ReviewRating = 2
	ReviewRatingEasy  ReviewRating = 3
)

func (r ReviewRating) String() string {
	switch r {
	case ReviewRatingAgain:
		return "AGAIN"
	case ReviewRatingHard:
		return "HARD"
	case ReviewRatingGood:
		return "GOOD"
	case ReviewRatingEasy:
		return "EASY"
	}
	return "UNKNOWN"
}

func (r ReviewRating) IsValid() bool {
	return r >= ReviewRatingAgain && r <= ReviewRatingEasy
}
