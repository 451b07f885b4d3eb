package middleware

import (
	"context"
	"strings"

	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/auth"
	"go-apply-portal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Identity resolves the acting applicant profile for every request and
// places it in the request context. A valid Bearer session token selects a
// profile; otherwise the configured default profile acts. Identity is
// always explicit in the context, never a process-wide current user.
func Identity(sessions *auth.Sessions, applicants domain.ApplicantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := resolveProfile(c, sessions, applicants)
		if profile == nil {
			// Default profile lookup failed; handlers will reject actions
			// that need identity
			c.Next()
			return
		}

		c.Set(string(domain.KeyApplicant), profile)
		ctx := context.WithValue(c.Request.Context(), domain.KeyApplicant, profile)
		ctx = context.WithValue(ctx, domain.KeyApplicantID, profile.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func resolveProfile(c *gin.Context, sessions *auth.Sessions, applicants domain.ApplicantRepository) *domain.ApplicantProfile {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && sessions.Configured() {
		if applicantID, err := sessions.Parse(token); err == nil {
			if profile, err := applicants.GetByID(c.Request.Context(), applicantID); err == nil {
				return profile
			}
			logger.Log.Warn("Session names unknown applicant", "applicant_id", applicantID)
		}
	}

	profile, err := applicants.Default(c.Request.Context())
	if err != nil {
		logger.Log.Error("Default applicant profile unavailable", "error", err)
		return nil
	}
	return profile
}

// ApplicantFrom returns the profile the Identity middleware resolved for
// this request, or nil if resolution failed.
func ApplicantFrom(c *gin.Context) *domain.ApplicantProfile {
	value, ok := c.Get(string(domain.KeyApplicant))
	if !ok {
		return nil
	}
	profile, _ := value.(*domain.ApplicantProfile)
	return profile
}
