package security

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	megabyte = 1 << 20

	// MaxDocumentBytes caps resume and cover letter uploads
	MaxDocumentBytes = 10 * megabyte
	// MaxVideoBytes caps video introduction uploads
	MaxVideoBytes = 100 * megabyte
)

// UploadPolicy describes what a declared attachment kind accepts.
type UploadPolicy struct {
	Kind       string
	MaxBytes   int64
	Extensions map[string]bool // nil means any extension; MIME prefix gates content
	MIMEPrefix string          // non-empty restricts by sniffed MIME type prefix
}

var documentExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var policies = map[string]UploadPolicy{
	"resume": {
		Kind:       "resume",
		MaxBytes:   MaxDocumentBytes,
		Extensions: documentExtensions,
	},
	"cover_letter": {
		Kind:       "cover_letter",
		MaxBytes:   MaxDocumentBytes,
		Extensions: documentExtensions,
	},
	"video": {
		Kind:       "video",
		MaxBytes:   MaxVideoBytes,
		MIMEPrefix: "video/",
	},
}

// Magic byte signatures for allowed document types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},         // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                 // ZIP (PK..)
}

// UploadValidationResult contains the result of upload validation
type UploadValidationResult struct {
	Valid        bool   // Whether the upload passed all validation checks
	Extension    string // Detected file extension
	DetectedMIME string // Sniffed MIME type
	Error        string // Error message if validation failed
}

// PolicyFor returns the policy for a declared attachment kind.
func PolicyFor(kind string) (UploadPolicy, bool) {
	p, ok := policies[kind]
	return p, ok
}

// ValidateUpload performs layered validation of an uploaded file against the
// policy for its declared kind:
// 1. Size cap
// 2. Extension whitelist (document kinds)
// 3. Magic byte verification (content matches extension)
// 4. Sniffed MIME type check (video kinds)
func ValidateUpload(kind, filename string, data []byte) UploadValidationResult {
	result := UploadValidationResult{}

	policy, ok := policies[kind]
	if !ok {
		result.Error = "unknown attachment kind: " + kind
		return result
	}

	if len(data) == 0 {
		result.Error = "file content is empty"
		return result
	}
	if int64(len(data)) > policy.MaxBytes {
		result.Error = fmt.Sprintf("file exceeds the %dMB limit", policy.MaxBytes/megabyte)
		return result
	}

	detected := mimetype.Detect(data)
	result.DetectedMIME = detected.String()

	ext := strings.ToLower(filepath.Ext(filename))
	result.Extension = ext

	if policy.Extensions != nil {
		if ext == "" {
			result.Error = "file has no extension"
			return result
		}
		if !policy.Extensions[ext] {
			result.Error = "file extension not allowed: " + ext
			return result
		}
		if !validateMagicBytes(ext, data) {
			result.Error = "file content does not match extension (potential file spoofing detected)"
			return result
		}
	}

	if policy.MIMEPrefix != "" && !strings.HasPrefix(result.DetectedMIME, policy.MIMEPrefix) {
		result.Error = "file is not a " + strings.TrimSuffix(policy.MIMEPrefix, "/") + " file: " + result.DetectedMIME
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // File too small to validate
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false // Unknown extension
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
