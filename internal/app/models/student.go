package models

import "time"

// Student defines a Ramadan data record based on the 'students' table
type Student struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Muhammed Ali"`
	CollegeType string    `json:"college_type" db:"college_type" example:"Arts & Science"`
	RollNumber  string    `json:"roll_number" db:"roll_number" example:"21CS045"`
	State       string    `json:"state" db:"state" example:"Kerala"`
	Hostel      *string   `json:"hostel" db:"hostel" example:"Boys Hostel"` // nil when not recorded
	Year        *string   `json:"year" db:"year" example:"2nd"`             // nil when not recorded
	CreatedAt   time.Time `json:"created_at" db:"created_at" example:"2026-03-01T10:00:00Z"`
	CreatedBy   *int64    `json:"created_by,omitempty" db:"created_by" example:"1"`
}

// StudentFilter is the conjunctive filter applied by the list operation.
// Empty fields are ignored.
type StudentFilter struct {
	Hostel     string // exact match on hostel
	RollNumber string // case-insensitive substring of roll_number
	Year       string // exact match on year
}

// StudentStats backs the dashboard stat widgets.
type StudentStats struct {
	TotalRecords int `json:"total_records"`
	ActiveStates int `json:"active_states"`
	Colleges     int `json:"colleges"`
}
