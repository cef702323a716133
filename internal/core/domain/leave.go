package domain

import (
	"errors"
	"time"
)

// LeaveType classifies a leave request.
type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveSick      LeaveType = "sick"
	LeavePersonal  LeaveType = "personal"
	LeaveMaternity LeaveType = "maternity"
	LeaveEmergency LeaveType = "emergency"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveAnnual, LeaveSick, LeavePersonal, LeaveMaternity, LeaveEmergency:
		return true
	}
	return false
}

// LeaveStatus represents the approval state of a request. Once decided
// (approved or rejected) a request is final.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest is a single request for time off, applied for by an
// employee and decided by HR.
type LeaveRequest struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Employee    string      `json:"employee" bson:"employee"` // employee email
	Type        LeaveType   `json:"type" bson:"type"`
	StartDate   time.Time   `json:"start_date" bson:"start_date"`
	EndDate     time.Time   `json:"end_date" bson:"end_date"`
	Days        int         `json:"days" bson:"days"`
	Reason      string      `json:"reason" bson:"reason"`
	Status      LeaveStatus `json:"status" bson:"status"`
	AppliedDate time.Time   `json:"applied_date" bson:"applied_date"`
	HRComments  string      `json:"hr_comments,omitempty" bson:"hr_comments,omitempty"`
}

// LeaveDays counts the days covered by an inclusive date range.
// Both bounds count: a single-day request spans one day.
func LeaveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Annual allocations per leave type. Maternity and emergency leave have
// no fixed allocation and are not tracked in the balance.
const (
	AnnualLeaveAllocation   = 20
	SickLeaveAllocation     = 10
	PersonalLeaveAllocation = 5
)

// LeaveBalanceEntry summarises usage for one tracked leave type.
type LeaveBalanceEntry struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// LeaveBalance is the per-employee view of tracked allocations.
type LeaveBalance struct {
	Annual   LeaveBalanceEntry `json:"annual"`
	Sick     LeaveBalanceEntry `json:"sick"`
	Personal LeaveBalanceEntry `json:"personal"`
}

var ErrLeaveNotFound = errors.New("leave request not found")
var ErrLeaveAlreadyDecided = errors.New("leave request already decided")
var ErrInvalidLeaveRange = errors.New("invalid leave date range")
