// Package encoder turns an uploaded file into a transmittable attachment:
// validated against the policy for its declared kind, then base64 encoded.
package encoder

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"go-apply-portal/internal/domain"
	"go-apply-portal/pkg/apperror"
	"go-apply-portal/pkg/logger"
	"go-apply-portal/pkg/security"

	"github.com/gabriel-vasile/mimetype"
)

// OnEncodedFunc is notified after each successful encode. The HTTP layer
// wires it to the draft store so an upload persists immediately; the
// encoder itself has no persistence dependency. A hook error fails the
// encode so the caller never holds an attachment that was not persisted.
type OnEncodedFunc func(ctx context.Context, jobID int64, attachment domain.Attachment) error

// Encoder converts user-selected files into attachments
type Encoder struct {
	onEncoded OnEncodedFunc
}

func New(onEncoded OnEncodedFunc) *Encoder {
	return &Encoder{onEncoded: onEncoded}
}

// Encode reads the file fully, validates it against the policy for its
// declared kind, and returns the encoded attachment. On any failure nothing
// is stored and no notification fires, so existing form state is untouched.
func (e *Encoder) Encode(ctx context.Context, jobID int64, kind, filename string, r io.Reader) (*domain.Attachment, error) {
	policy, ok := security.PolicyFor(kind)
	if !ok {
		return nil, apperror.BadRequest("Unknown attachment type: " + kind)
	}

	// Read one byte past the cap so oversized files are detected without
	// buffering the entire stream
	data, err := io.ReadAll(io.LimitReader(r, policy.MaxBytes+1))
	if err != nil {
		return nil, apperror.Unprocessable("Failed to process file content")
	}
	if len(data) == 0 {
		return nil, apperror.Unprocessable("Failed to process file content")
	}
	if int64(len(data)) > policy.MaxBytes {
		return nil, apperror.Unprocessable(fmt.Sprintf("%s exceeds the %dMB limit", filename, policy.MaxBytes/(1<<20)))
	}

	if result := security.ValidateUpload(kind, filename, data); !result.Valid {
		return nil, apperror.Unprocessable(result.Error)
	}

	attachment := &domain.Attachment{
		Filename:    filename,
		Type:        kind,
		Content:     base64.StdEncoding.EncodeToString(data),
		ContentType: mimetype.Detect(data).String(),
	}

	logger.Log.Debug("Encoded attachment",
		"job_id", jobID,
		"kind", kind,
		"filename", filename,
		"size_bytes", len(data),
		"content_type", attachment.ContentType,
	)

	if e.onEncoded != nil {
		if err := e.onEncoded(ctx, jobID, *attachment); err != nil {
			return nil, err
		}
	}

	return attachment, nil
}
