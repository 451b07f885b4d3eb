package greenhouse_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/repository/greenhouse"
	"go-apply-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() *domain.SubmissionPayload {
	return &domain.SubmissionPayload{
		JobID:     4285367007,
		FirstName: "John",
		LastName:  "Locke",
		Attachments: []domain.Attachment{{
			Filename:    "cv.pdf",
			Type:        domain.AttachmentResume,
			Content:     base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
			ContentType: "application/pdf",
		}},
	}
}

func TestSubmitApplicationSuccess(t *testing.T) {
	var gotPath, gotAuth, gotOnBehalfOf string
	var gotBody domain.SubmissionPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotOnBehalfOf = r.Header.Get("On-Behalf-Of")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 987001, "status": "active", "candidate_id": 34555007007}`))
	}))
	defer srv.Close()

	client := greenhouse.NewClient(srv.URL, "test-key", "4180", 5*time.Second)
	application, err := client.SubmitApplication(context.Background(), 34555007007, testPayload())
	require.NoError(t, err)

	assert.Equal(t, "/candidates/34555007007/applications", gotPath)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("test-key:")), gotAuth)
	assert.Equal(t, "4180", gotOnBehalfOf)
	assert.Equal(t, int64(4285367007), gotBody.JobID)
	assert.Equal(t, float64(987001), application["id"])
}

func TestSubmitApplicationDuplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors": [{"message": "This candidate already has an active application on that job"}]}`))
	}))
	defer srv.Close()

	client := greenhouse.NewClient(srv.URL, "test-key", "", 5*time.Second)
	_, err := client.SubmitApplication(context.Background(), 1, testPayload())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Code)
	assert.Equal(t, "You have already submitted an application for this job.", appErr.Message)
}

func TestSubmitApplicationUpstreamError(t *testing.T) {
	t.Run("Upstream message propagates with its status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"errors": [{"message": "Job is closed"}]}`))
		}))
		defer srv.Close()

		client := greenhouse.NewClient(srv.URL, "test-key", "", 5*time.Second)
		_, err := client.SubmitApplication(context.Background(), 1, testPayload())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
		assert.Equal(t, "Job is closed", appErr.Message)
	})

	t.Run("Empty body falls back to a generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := greenhouse.NewClient(srv.URL, "test-key", "", 5*time.Second)
		_, err := client.SubmitApplication(context.Background(), 1, testPayload())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Error submitting application to Greenhouse", appErr.Message)
	})
}

func TestSubmitApplicationNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := greenhouse.NewClient(srv.URL, "test-key", "", time.Second)
	_, err := client.SubmitApplication(context.Background(), 1, testPayload())

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}

func TestSubmitApplicationMissingKey(t *testing.T) {
	client := greenhouse.NewClient("http://localhost:0", "", "", time.Second)
	_, err := client.SubmitApplication(context.Background(), 1, testPayload())
	assert.Error(t, err)
}
