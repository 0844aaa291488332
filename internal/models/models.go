// Package models defines the rows this service reads from and writes to the
// attendance store.
package models

import "time"

// PunchStatus is the classification assigned to an accepted punch.
type PunchStatus string

const (
	TimeIn  PunchStatus = "time_in"
	TimeOut PunchStatus = "time_out"
)

// AttendanceLog is one accepted punch in attendance_logs. Rows are created
// by the sync pass and never updated or deleted afterwards. For a given
// (UserID, WorkDate) at most one time_in and one time_out row should exist;
// the classifier is what upholds that, there is no uniqueness constraint.
type AttendanceLog struct {
	ID        string
	UserID    int64
	Timestamp time.Time
	Status    PunchStatus
	WorkDate  time.Time
}

// Employee maps a device user identifier to an employee record. Read-only
// here; the HR side owns the table.
type Employee struct {
	ID                  string
	FullName            string
	AttendanceLogUserID int64
}
