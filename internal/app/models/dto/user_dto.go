package dto

import "github.com/qmexai/ramadandata/internal/app/models"

// CreateUserRequest is the body of an admin account create
type CreateUserRequest struct {
	Name        string      `json:"name" binding:"required" example:"Sara"`
	Username    string      `json:"username" binding:"required" example:"sara"`
	Password    string      `json:"password" binding:"required" example:"secret1"`
	PhoneNumber string      `json:"phone_number" binding:"required" example:"9876543210"`
	Role        models.Role `json:"role" binding:"omitempty,oneof=admin superuser" example:"admin"`
}

// UserResponse is the public view of a freshly created account
type UserResponse struct {
	ID       int64       `json:"id" example:"2"`
	Name     string      `json:"name" example:"Sara"`
	Username string      `json:"username" example:"sara"`
	Role     models.Role `json:"role" example:"admin"`
}

// NewUserResponse builds a UserResponse from a model
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Role:     user.Role,
	}
}
