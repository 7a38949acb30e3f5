package domain

import (
	"fmt"

	"posts-backend/internal/common/apperror"
)

// RateEvent is a counter adjustment requested by a user other than the owner.
type RateEvent string

const (
	RateLike      RateEvent = "like"
	RateDislike   RateEvent = "dislike"
	RateUnlike    RateEvent = "unlike"
	RateUndislike RateEvent = "undislike"
)

const (
	ColumnLikes    = "likes"
	ColumnDislikes = "dislikes"
)

// RateEvents lists every supported event.
var RateEvents = []RateEvent{RateLike, RateDislike, RateUnlike, RateUndislike}

func ParseRateEvent(s string) (RateEvent, error) {
	e := RateEvent(s)
	if _, _, err := e.Counter(); err != nil {
		return "", err
	}
	return e, nil
}

// Counter returns the column the event adjusts and the signed delta.
// Events are not idempotent and counters are not clamped at zero.
func (e RateEvent) Counter() (column string, delta int, err error) {
	switch e {
	case RateLike:
		return ColumnLikes, 1, nil
	case RateDislike:
		return ColumnDislikes, 1, nil
	case RateUnlike:
		return ColumnLikes, -1, nil
	case RateUndislike:
		return ColumnDislikes, -1, nil
	default:
		return "", 0, fmt.Errorf("%w: %q", apperror.ErrInvalidRateEvent, string(e))
	}
}
