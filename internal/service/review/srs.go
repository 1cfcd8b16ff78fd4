package review

import (
	"math"
	"time"

	"github.com/kagehisa/animemo-backend/internal/domain"
)

// SM2State holds the scheduling fields of a card before a review.
// Pure value, no side effects.
type SM2State struct {
	IntervalDays int
	Repetitions  int
	EaseFactor   float64
}

// SM2Result is the scheduling state after a review.
type SM2Result struct {
	IntervalDays int
	Repetitions  int
	EaseFactor   float64
	NextReviewAt time.Time
}

// ApplySM2 is a pure function. No DB, no context, no logger.
// All decisions are deterministic based on input parameters.
//
// Rating q is on the 0..3 scale (Again/Hard/Good/Easy):
//   - q=0 resets repetitions and schedules the card for tomorrow.
//   - q>0 increments repetitions; the interval runs 1, 6, then
//     round(interval × ease). The PRE-review ease factor is used here.
//   - The ease factor is then adjusted on every rating, including Again,
//     and never drops below the minimum.
func ApplySM2(state SM2State, rating domain.ReviewRating, now time.Time, minEase float64) SM2Result {
	var interval, reps int

	if rating == domain.ReviewRatingAgain {
		reps = 0
		interval = 1
	} else {
		reps = state.Repetitions + 1
		switch reps {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.Round(float64(state.IntervalDays) * state.EaseFactor))
		}
	}

	q := float64(rating)
	ease := state.EaseFactor + (0.1 - (3-q)*(0.08+(3-q)*0.02))
	if ease < minEase {
		ease = minEase
	}

	return SM2Result{
		IntervalDays: interval,
		Repetitions:  reps,
		EaseFactor:   ease,
		NextReviewAt: now.Add(time.Duration(interval) * 24 * time.Hour),
	}
}
