package domain

import "context"

// SupportRequest represents a support form submission
type SupportRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Subject string `json:"subject" binding:"required" validate:"required"`
	Message string `json:"message" binding:"required" validate:"required"`
}

// SupportUsecase defines the interface for support form operations
type SupportUsecase interface {
	// SendSupportMessage validates and forwards a support request
	SendSupportMessage(ctx context.Context, req *SupportRequest) error
}
