package domain

import (
	"errors"
	"time"
)

// HolidayType classifies an entry on the company calendar.
type HolidayType string

const (
	HolidayNational  HolidayType = "national"
	HolidayReligious HolidayType = "religious"
	HolidayCompany   HolidayType = "company"
)

func (t HolidayType) Valid() bool {
	switch t {
	case HolidayNational, HolidayReligious, HolidayCompany:
		return true
	}
	return false
}

// Holiday is a company-wide calendar entry, managed by admins and
// visible to everyone.
type Holiday struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Date        time.Time   `json:"date" bson:"date"`
	Type        HolidayType `json:"type" bson:"type"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
}

var ErrHolidayNotFound = errors.New("holiday not found")
