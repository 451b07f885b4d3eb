package v1_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-apply-portal/config"
	v1 "go-apply-portal/internal/delivery/http/v1"
	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/encoder"
	"go-apply-portal/internal/repository/draftfile"
	"go-apply-portal/internal/repository/greenhouse"
	"go-apply-portal/internal/repository/memory"
	"go-apply-portal/internal/usecase"
	"go-apply-portal/pkg/auth"
	"go-apply-portal/pkg/email"
	"go-apply-portal/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// newTestRouter wires the full stack against a stub ATS server and a
// file-backed draft store in a temp directory.
func newTestRouter(t *testing.T, atsURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                     "8080",
		FrontendURL:              "http://localhost:3000",
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 0, // disabled in tests
	}

	jobRepo := memory.NewJobRepository()
	applicantRepo := memory.NewApplicantRepository(34555007007)
	draftRepo := draftfile.NewStore(filepath.Join(t.TempDir(), "applications.json"))
	gateway := greenhouse.NewClient(atsURL, "test-key", "", 5*time.Second)

	draftUC := usecase.NewDraftUsecase(draftRepo)
	enc := encoder.New(func(ctx context.Context, jobID int64, a domain.Attachment) error {
		_, err := draftUC.AttachToDraft(ctx, jobID, a)
		return err
	})

	return v1.NewRouter(v1.RouterDeps{
		JobUC:         usecase.NewJobUsecase(jobRepo),
		TrackUC:       usecase.NewTrackUsecase(),
		DraftUC:       draftUC,
		SubmissionUC:  usecase.NewSubmissionUsecase(gateway, jobRepo, draftRepo),
		SupportUC:     usecase.NewSupportUsecase(email.NewEmailService(cfg), validator.New()),
		Encoder:       enc,
		UploadLimiter: security.NewUploadLimiter(1000, 1000),
		Sessions:      auth.NewSessions("", time.Hour),
		Applicants:    applicantRepo,
		Config:        cfg,
	})
}

func stubATS(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 987001, "status": "active"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func pdfBase64() string {
	return base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 fixture"))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)
	rec, env := doJSON(t, router, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestJobEndpoints(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)

	t.Run("List jobs", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/jobs", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		jobs := env.Data["jobs"].([]interface{})
		assert.NotEmpty(t, jobs)
	})

	t.Run("Job details", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/jobs/2", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(2), env.Data["id"])
	})

	t.Run("Unknown job is 404", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/jobs/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Job not found", env.Message)
	})

	t.Run("Non-numeric job ID is 400", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/v1/jobs/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTrackFieldEndpoints(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)

	t.Run("Known track returns its catalog", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/tracks/Engineering/fields", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		fields := env.Data["fields"].([]interface{})
		assert.NotEmpty(t, fields)
		first := fields[0].(map[string]interface{})
		assert.Equal(t, "name", first["name"])
	})

	t.Run("Unknown track returns an empty list", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/tracks/Sales/fields", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, env.Data["fields"])
	})
}

func TestProfileEndpoint(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)

	rec, env := doJSON(t, router, http.MethodGet, "/v1/me", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "John", env.Data["first_name"])
	assert.Equal(t, "Locke", env.Data["last_name"])
}

func TestDraftSaveAndRestore(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)

	t.Run("Save then restore round-trips", func(t *testing.T) {
		body := map[string]interface{}{
			"job_id": 5,
			"name":   "John Locke",
			"email":  "john@island.org",
			"attachments": []map[string]string{{
				"filename": "cv.pdf",
				"type":     "resume",
				"content":  pdfBase64(),
			}},
		}
		rec, env := doJSON(t, router, http.MethodPost, "/v1/applications/save", body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Application saved successfully", env.Message)
		assert.NotEmpty(t, env.Data["id"])

		rec, env = doJSON(t, router, http.MethodGet, "/v1/applications/save?jobId=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Application retrieved successfully", env.Message)
		assert.Equal(t, float64(5), env.Data["job_id"])
		fields := env.Data["fields"].(map[string]interface{})
		assert.Equal(t, "John Locke", fields["name"])
		assert.Equal(t, "john@island.org", fields["email"])
	})

	t.Run("Save without attachments is rejected", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodPost, "/v1/applications/save", map[string]interface{}{
			"job_id": 5,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "At least one attachment is required", env.Message)
	})

	t.Run("Save without a job ID is rejected", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodPost, "/v1/applications/save", map[string]interface{}{
			"attachments": []map[string]string{{"filename": "cv.pdf", "type": "resume", "content": pdfBase64()}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Job ID is required", env.Message)
	})

	t.Run("Restore with no saved draft is 404", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/applications/save?jobId=999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No saved application found", env.Message)
	})

	t.Run("Restore without a job ID is 400", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/applications/save", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Job ID is required", env.Message)
	})
}

func TestAttachmentUpload(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)

	uploadPDF := func(t *testing.T, path, kind, filename, content string) (*httptest.ResponseRecorder, envelope) {
		t.Helper()
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("kind", kind))
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, path, &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		return rec, env
	}

	t.Run("Upload lands in the job draft", func(t *testing.T) {
		rec, env := uploadPDF(t, "/v1/jobs/2/attachments", "resume", "cv.pdf", "%PDF-1.4 fixture")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "cv.pdf", env.Data["filename"])

		rec, env = doJSON(t, router, http.MethodGet, "/v1/applications/save?jobId=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		attachments := env.Data["attachments"].([]interface{})
		require.Len(t, attachments, 1)
		first := attachments[0].(map[string]interface{})
		assert.Equal(t, "cv.pdf", first["filename"])
	})

	t.Run("Spoofed content is rejected and nothing is stored", func(t *testing.T) {
		rec, _ := uploadPDF(t, "/v1/jobs/3/attachments", "resume", "cv.pdf", "#!/bin/sh\nnot a pdf\n")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		rec, _ = doJSON(t, router, http.MethodGet, "/v1/applications/save?jobId=3", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unknown kind is 400", func(t *testing.T) {
		rec, _ := uploadPDF(t, "/v1/jobs/2/attachments", "portfolio", "work.pdf", "%PDF-1.4 fixture")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitFlow(t *testing.T) {
	t.Run("Submit without attachments fails first", func(t *testing.T) {
		router := newTestRouter(t, stubATS(t).URL)

		rec, env := doJSON(t, router, http.MethodPost, "/v1/jobs/2/submit", map[string]interface{}{
			"confirm_name": "John Locke",
			"values":       map[string]string{"name": "John Locke", "email": "john@island.org"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "At least one attachment is required", env.Message)
	})

	t.Run("Saved draft then submit succeeds", func(t *testing.T) {
		router := newTestRouter(t, stubATS(t).URL)

		_, env := doJSON(t, router, http.MethodPost, "/v1/applications/save", map[string]interface{}{
			"job_id": 2,
			"attachments": []map[string]string{{
				"filename": "cv.pdf",
				"type":     "resume",
				"content":  pdfBase64(),
			}},
		})
		require.True(t, env.Success)

		rec, env := doJSON(t, router, http.MethodPost, "/v1/jobs/2/submit", map[string]interface{}{
			"confirm_name": "john locke",
			"values":       map[string]string{"name": "John Locke", "email": "john@island.org"},
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Application submitted successfully", env.Message)
		assert.Equal(t, float64(987001), env.Data["id"])
	})

	t.Run("Name mismatch blocks submission", func(t *testing.T) {
		router := newTestRouter(t, stubATS(t).URL)

		doJSON(t, router, http.MethodPost, "/v1/applications/save", map[string]interface{}{
			"job_id": 2,
			"attachments": []map[string]string{{
				"filename": "cv.pdf", "type": "resume", "content": pdfBase64(),
			}},
		})

		rec, env := doJSON(t, router, http.MethodPost, "/v1/jobs/2/submit", map[string]interface{}{
			"confirm_name": "Jack Shephard",
			"values":       map[string]string{"name": "John Locke", "email": "john@island.org"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The name you entered does not match your profile name", env.Message)
	})

	t.Run("Duplicate application maps to 409", func(t *testing.T) {
		ats := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"errors": [{"message": "This candidate already has an active application on that job"}]}`))
		}))
		defer ats.Close()
		router := newTestRouter(t, ats.URL)

		doJSON(t, router, http.MethodPost, "/v1/applications/save", map[string]interface{}{
			"job_id": 2,
			"attachments": []map[string]string{{
				"filename": "cv.pdf", "type": "resume", "content": pdfBase64(),
			}},
		})

		rec, env := doJSON(t, router, http.MethodPost, "/v1/jobs/2/submit", map[string]interface{}{
			"confirm_name": "John Locke",
			"values":       map[string]string{"name": "John Locke", "email": "john@island.org"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "You have already submitted an application for this job.", env.Message)
	})

	t.Run("Missing confirmation name is 400", func(t *testing.T) {
		router := newTestRouter(t, stubATS(t).URL)
		rec, _ := doJSON(t, router, http.MethodPost, "/v1/jobs/2/submit", map[string]interface{}{
			"values": map[string]string{"name": "John Locke"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSupportEndpointUnconfigured(t *testing.T) {
	router := newTestRouter(t, stubATS(t).URL)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/support", map[string]string{
		"name":    "John Locke",
		"email":   "john@island.org",
		"subject": "Help",
		"message": "I need to go back",
	})
	// SMTP is not configured in tests
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSessionTokenSelectsProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessions("test-secret", time.Hour)
	token, err := sessions.Sign(34555007007)
	require.NoError(t, err)
	require.False(t, strings.Contains(token, " "))

	applicantID, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(34555007007), applicantID)

	_, err = sessions.Parse(token + "tampered")
	assert.Error(t, err)
}
