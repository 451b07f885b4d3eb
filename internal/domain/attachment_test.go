package domain_test

import (
	"encoding/base64"
	"testing"

	"go-apply-portal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContent(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))

	a := domain.Attachment{Content: "data:application/pdf;base64," + encoded}
	a.NormalizeContent()
	assert.Equal(t, encoded, a.Content)

	// Already-bare content is untouched
	b := domain.Attachment{Content: encoded}
	b.NormalizeContent()
	assert.Equal(t, encoded, b.Content)
}

func TestFilterValid(t *testing.T) {
	good := base64.StdEncoding.EncodeToString([]byte("content"))

	valid := domain.FilterValid([]domain.Attachment{
		{Filename: "a.pdf", Content: good},
		{Filename: "empty.pdf", Content: ""},
		{Filename: "garbage.pdf", Content: "%%%not-base64%%%"},
		{Filename: "wrapped.pdf", Content: "data:application/pdf;base64," + good},
	})

	assert.Len(t, valid, 2)
	assert.Equal(t, "a.pdf", valid[0].Filename)
	assert.Equal(t, "wrapped.pdf", valid[1].Filename)
	// Data-URL prefix is stripped during filtering
	assert.Equal(t, good, valid[1].Content)
}
