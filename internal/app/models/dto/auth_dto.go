package dto

import "github.com/qmexai/ramadandata/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"dpt"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// SessionResponse describes the signed-in account
type SessionResponse struct {
	ID   int64       `json:"id" example:"1"`
	Role models.Role `json:"role" example:"superuser"`
	Name string      `json:"name" example:"Muhsin"`
}

// SuccessResponse is returned by operations without a payload
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
