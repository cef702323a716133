package domain

import (
	"errors"
	"time"
)

// PayslipStatus tracks whether the employee has fetched the slip.
type PayslipStatus string

const (
	PayslipGenerated  PayslipStatus = "generated"
	PayslipDownloaded PayslipStatus = "downloaded"
)

// Payslip is a monthly salary statement uploaded by HR for one employee.
// NetSalary is always GrossSalary minus Deductions, computed at upload.
type Payslip struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Employee    string        `json:"employee" bson:"employee"` // employee email
	Month       time.Month    `json:"month" bson:"month"`
	Year        int           `json:"year" bson:"year"`
	GrossSalary float64       `json:"gross_salary" bson:"gross_salary"`
	Deductions  float64       `json:"deductions" bson:"deductions"`
	NetSalary   float64       `json:"net_salary" bson:"net_salary"`
	GeneratedAt time.Time     `json:"generated_at" bson:"generated_at"`
	Status      PayslipStatus `json:"status" bson:"status"`
}

var ErrPayslipNotFound = errors.New("payslip not found")
var ErrInvalidPayslipAmounts = errors.New("deductions exceed gross salary")
