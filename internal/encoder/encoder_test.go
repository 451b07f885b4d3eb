package encoder_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"go-apply-portal/internal/domain"
	"go-apply-portal/internal/encoder"
	"go-apply-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfContent = "%PDF-1.4\nminimal test document\n"

func TestEncode(t *testing.T) {
	var hooked []domain.Attachment
	enc := encoder.New(func(ctx context.Context, jobID int64, a domain.Attachment) error {
		hooked = append(hooked, a)
		return nil
	})

	attachment, err := enc.Encode(context.Background(), 42, domain.AttachmentResume, "cv.pdf", strings.NewReader(pdfContent))
	require.NoError(t, err)

	assert.Equal(t, "cv.pdf", attachment.Filename)
	assert.Equal(t, domain.AttachmentResume, attachment.Type)
	assert.Contains(t, attachment.ContentType, "application/pdf")

	decoded, err := base64.StdEncoding.DecodeString(attachment.Content)
	require.NoError(t, err)
	assert.Equal(t, pdfContent, string(decoded))

	require.Len(t, hooked, 1)
	assert.Equal(t, attachment.Content, hooked[0].Content)
}

func TestEncodeRejections(t *testing.T) {
	enc := encoder.New(nil)
	ctx := context.Background()

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := enc.Encode(ctx, 42, "portfolio", "work.pdf", strings.NewReader(pdfContent))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("Empty file", func(t *testing.T) {
		_, err := enc.Encode(ctx, 42, domain.AttachmentResume, "cv.pdf", strings.NewReader(""))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.Code)
		assert.Equal(t, "Failed to process file content", appErr.Message)
	})

	t.Run("Spoofed content", func(t *testing.T) {
		_, err := enc.Encode(ctx, 42, domain.AttachmentResume, "cv.pdf", strings.NewReader("#!/bin/sh\necho hi\n"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 422, appErr.Code)
	})
}

func TestEncodeHookFailureFailsEncode(t *testing.T) {
	hookErr := errors.New("disk full")
	enc := encoder.New(func(ctx context.Context, jobID int64, a domain.Attachment) error {
		return hookErr
	})

	_, err := enc.Encode(context.Background(), 42, domain.AttachmentResume, "cv.pdf", strings.NewReader(pdfContent))
	assert.ErrorIs(t, err, hookErr)
}
