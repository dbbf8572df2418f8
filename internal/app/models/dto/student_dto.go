package dto

import "github.com/qmexai/ramadandata/internal/app/models"

// StudentQuery holds the list filters and the optional export format
type StudentQuery struct {
	HostelType string `form:"hostel_type" example:"Boys Hostel"`
	RollNumber string `form:"roll_number" example:"21CS"`
	Year       string `form:"year" example:"2nd"`
	Download   string `form:"download" example:"pdf"`
}

// Filter converts the query into a repository filter
func (q StudentQuery) Filter() models.StudentFilter {
	return models.StudentFilter{
		Hostel:     q.HostelType,
		RollNumber: q.RollNumber,
		Year:       q.Year,
	}
}

// CreateStudentRequest is the body of a record create
type CreateStudentRequest struct {
	Name        string  `json:"name" binding:"required" example:"Muhammed Ali"`
	CollegeType string  `json:"college_type" binding:"required" example:"Arts & Science"`
	RollNumber  string  `json:"roll_number" binding:"required" example:"21CS045"`
	State       string  `json:"state" binding:"required" example:"Kerala"`
	Hostel      *string `json:"hostel" example:"Boys Hostel"`
	Year        *string `json:"year" example:"2nd"`
}

// ToModel converts the request into a record
func (r CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		Name:        r.Name,
		CollegeType: r.CollegeType,
		RollNumber:  r.RollNumber,
		State:       r.State,
		Hostel:      r.Hostel,
		Year:        r.Year,
	}
}

// UpdateStudentRequest is the body of a record update
type UpdateStudentRequest struct {
	ID int64 `json:"id" binding:"required,min=1" example:"1"`
	CreateStudentRequest
}

// ToModel converts the request into a record carrying its id
func (r UpdateStudentRequest) ToModel() *models.Student {
	student := r.CreateStudentRequest.ToModel()
	student.ID = r.ID
	return student
}

// DeleteStudentRequest is the body of a record delete
type DeleteStudentRequest struct {
	ID int64 `json:"id" binding:"required,min=1" example:"1"`
}
