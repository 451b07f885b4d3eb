package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/email"

	"github.com/go-playground/validator/v10"
)

type supportUsecase struct {
	emailService *email.EmailService
	validate     *validator.Validate
}

// NewSupportUsecase creates a new support usecase
func NewSupportUsecase(emailService *email.EmailService, validate *validator.Validate) domain.SupportUsecase {
	return &supportUsecase{
		emailService: emailService,
		validate:     validate,
	}
}

// SendSupportMessage validates the support request and sends the email
func (uc *supportUsecase) SendSupportMessage(ctx context.Context, req *domain.SupportRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid support request: %w", err)
	}

	if !uc.emailService.IsConfigured() {
		return fmt.Errorf("email service is not configured")
	}

	emailData := email.SupportEmailData{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	}

	if err := uc.emailService.SendSupportEmail(emailData); err != nil {
		return fmt.Errorf("failed to send support email: %w", err)
	}

	return nil
}
