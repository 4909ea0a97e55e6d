package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/inioluwa/atelier/internal/model"
	"github.com/inioluwa/atelier/internal/storage"
	"github.com/inioluwa/atelier/internal/validation"
)

// UploadKind selects validation constraints and the target bucket.
type UploadKind string

const (
	UploadKindImage    UploadKind = "image"
	UploadKindDocument UploadKind = "document"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// UploadService resolves file form fields against object storage.
//
// Every uploadable field follows the same protocol: a fresh binary replaces
// the stored object, a `<field>_original_url` value keeps the existing URL,
// and absence of both clears the field. Handlers call Resolve for each field
// before any database write so a failed upload never leaves a half-updated
// row.
type UploadService struct {
	storage storage.Storage
}

func NewUploadService(store storage.Storage) *UploadService {
	return &UploadService{storage: store}
}

// Resolve determines the final URL for one file field.
// Returns nil when the field should be cleared.
func (s *UploadService) Resolve(form *multipart.Form, field string, kind UploadKind) (*string, error) {
	if form != nil {
		if headers := form.File[field]; len(headers) > 0 && headers[0].Size > 0 {
			url, err := s.upload(headers[0], kind)
			if err != nil {
				return nil, fmt.Errorf("upload failed for %q: %w", field, err)
			}
			return &url, nil
		}

		// No new binary: an `<field>_original_url` value means "keep what's
		// already stored".
		if vals := form.Value[field+"_original_url"]; len(vals) > 0 {
			if existing := strings.TrimSpace(vals[0]); existing != "" {
				return &existing, nil
			}
		}
	}

	return nil, nil
}

// ResolveDetailBlocks resolves per-index image fields (`details_image_<i>`)
// for a project's detail block sequence. Image blocks that resolve to no URL
// are dropped; text and quote blocks pass through untouched.
func (s *UploadService) ResolveDetailBlocks(form *multipart.Form, blocks model.DetailBlocks) (model.DetailBlocks, error) {
	resolved := make(model.DetailBlocks, 0, len(blocks))
	for i, block := range blocks {
		if block.Type != model.DetailBlockImage {
			resolved = append(resolved, block)
			continue
		}

		url, err := s.Resolve(form, fmt.Sprintf("details_image_%d", i), UploadKindImage)
		if err != nil {
			return nil, err
		}
		if url == nil || *url == "" {
			continue
		}
		block.Content = *url
		resolved = append(resolved, block)
	}
	return resolved, nil
}

func (s *UploadService) upload(header *multipart.FileHeader, kind UploadKind) (string, error) {
	constraints := validation.ImageConstraints
	bucket := storage.BucketImages
	if kind == UploadKindDocument {
		constraints = validation.DocumentConstraints
		bucket = storage.BucketDocuments
	}

	if err := validation.ValidateFile(header, constraints); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	// uuid prefix keeps object names collision-free while preserving the
	// original filename for readability.
	key := fmt.Sprintf("%ss/%s-%s", kind, uuid.New().String(), sanitizeFilename(header.Filename))

	url, err := s.storage.Save(bucket, key, file)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", fmt.Errorf("storage returned no URL for %q", key)
	}
	return url, nil
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = unsafeFilenameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	return base
}
