// Package greenhouse is a thin translator between the portal's submission
// payload and the Greenhouse Harvest API. It holds no state of its own.
package greenhouse

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"
	"go-apply-portal/pkg/logger"
)

// duplicateApplicationMessage is the exact upstream error body message that
// signals the candidate already applied to the job
const duplicateApplicationMessage = "This candidate already has an active application on that job"

type Client struct {
	baseURL    string
	apiKey     string
	onBehalfOf string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, onBehalfOf string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		onBehalfOf: onBehalfOf,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type upstreamError struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// SubmitApplication posts the payload as an application on the candidate's
// record. The duplicate-application conflict maps to a 409; any other
// non-2xx propagates the upstream status and message.
func (c *Client) SubmitApplication(ctx context.Context, candidateID int64, payload *domain.SubmissionPayload) (domain.ATSApplication, error) {
	if c.apiKey == "" {
		return nil, apperror.Internal(fmt.Errorf("greenhouse API key is not configured"))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("marshal submission payload: %w", err))
	}

	url := fmt.Sprintf("%s/candidates/%d/applications", c.baseURL, candidateID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	req.Header.Set("Authorization", basicAuthHeader(c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	if c.onBehalfOf != "" {
		req.Header.Set("On-Behalf-Of", c.onBehalfOf)
	}

	// Attachment content is applicant PII; log names and sizes only
	logger.Log.Debug("Greenhouse request",
		"url", url,
		"job_id", payload.JobID,
		"attachments", attachmentSummaries(payload.Attachments),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.BadGateway("Unable to reach the applicant tracking system", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.BadGateway("Unable to read the applicant tracking system response", err)
	}

	logger.Log.Debug("Greenhouse response", "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var application domain.ATSApplication
		if err := json.Unmarshal(respBody, &application); err != nil {
			return nil, apperror.BadGateway("Unexpected response from the applicant tracking system", err)
		}
		return application, nil
	}

	return nil, c.mapError(resp.StatusCode, respBody)
}

func (c *Client) mapError(status int, body []byte) error {
	var upstream upstreamError
	_ = json.Unmarshal(body, &upstream)

	message := ""
	if len(upstream.Errors) > 0 {
		message = upstream.Errors[0].Message
	}

	if message == duplicateApplicationMessage {
		return apperror.Conflict("You have already submitted an application for this job.")
	}

	if message == "" {
		message = "Error submitting application to Greenhouse"
	}
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return apperror.New(status, message, nil)
}

func basicAuthHeader(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"))
}

func attachmentSummaries(attachments []domain.Attachment) []string {
	summaries := make([]string, 0, len(attachments))
	for _, a := range attachments {
		summaries = append(summaries, fmt.Sprintf("%s (%s, %d chars)", a.Filename, a.Type, len(a.Content)))
	}
	return summaries
}
