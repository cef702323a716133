package domain

import (
	"errors"
	"time"
)

// CheckIn records when a role's dashboard user started their workday.
// One record exists per role at a time; checking out removes it.
type CheckIn struct {
	Time time.Time `json:"time"`
}

var ErrAlreadyCheckedIn = errors.New("already checked in")
var ErrNotCheckedIn = errors.New("not checked in")
