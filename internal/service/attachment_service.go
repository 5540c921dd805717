package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"infracore/internal/errors"
	"infracore/internal/model"
	"infracore/internal/repository"
	"infracore/internal/storage"
)

// Attachment uploads share the products bucket under their own prefixes.
var attachmentFilePrefixes = map[string]string{
	"image":       "attachments",
	"pdfFile":     "attachments/pdfs",
	"specPdfFile": "attachments/specs",
}

// AttachmentForm carries the raw multipart form values of a create request.
type AttachmentForm struct {
	Name           string
	Description    string
	Category       string
	Features       string
	Specifications string
}

// AttachmentPatch is the sparse field set of an update request; nil means
// absent, non-nil is always applied.
type AttachmentPatch struct {
	Name           *string
	Description    *string
	Category       *string
	Features       *string
	Specifications *string
}

// AttachmentService implements the attachment upsert pipeline.
type AttachmentService interface {
	Create(ctx context.Context, form AttachmentForm, files map[string]FilePart) (*model.Attachment, error)
	Update(ctx context.Context, id uuid.UUID, patch AttachmentPatch, files map[string]FilePart) (*model.Attachment, error)
	List(ctx context.Context) ([]model.Attachment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Attachment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type attachmentService struct {
	attachments repository.AttachmentRepository
	uploader    storage.Uploader
}

// NewAttachmentService creates a new attachment service.
func NewAttachmentService(attachments repository.AttachmentRepository, uploader storage.Uploader) AttachmentService {
	return &attachmentService{attachments: attachments, uploader: uploader}
}

func (s *attachmentService) uploadAttachmentFiles(ctx context.Context, files map[string]FilePart) (map[string]string, error) {
	urls := make(map[string]string)
	for _, field := range []string{"image", "pdfFile", "specPdfFile"} {
		part, ok := files[field]
		if !ok {
			continue
		}
		key := storage.ObjectKey(attachmentFilePrefixes[field], part.Filename)
		url, err := s.uploader.Upload(ctx, key, part.ContentType, part.Data)
		if err != nil {
			return nil, fmt.Errorf("%s upload failed: %w", field, err)
		}
		urls[field] = url
	}
	return urls, nil
}

func (s *attachmentService) Create(ctx context.Context, form AttachmentForm, files map[string]FilePart) (*model.Attachment, error) {
	if form.Name == "" || form.Category == "" {
		return nil, errors.ErrMissingRequiredFields
	}
	if _, ok := files["image"]; !ok {
		return nil, errors.ErrMissingRequiredFields
	}

	urls, err := s.uploadAttachmentFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		ID:             uuid.New(),
		Name:           form.Name,
		Category:       normalizeCategory(form.Category),
		Description:    form.Description,
		Features:       ParseFeatures(form.Features),
		Specifications: form.Specifications,
		Image:          urls["image"],
		PDFURL:         nilIfEmpty(urls["pdfFile"]),
		SpecPDFURL:     nilIfEmpty(urls["specPdfFile"]),
	}

	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("insert attachment: %w", err)
	}
	return attachment, nil
}

func (s *attachmentService) Update(ctx context.Context, id uuid.UUID, patch AttachmentPatch, files map[string]FilePart) (*model.Attachment, error) {
	existing, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("fetch attachment: %w", err)
	}

	var urls map[string]string
	if len(files) > 0 {
		urls, err = s.uploadAttachmentFiles(ctx, files)
		if err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if patch.Name != nil && *patch.Name != "" {
		updates["name"] = *patch.Name
	}
	if patch.Category != nil && *patch.Category != "" {
		updates["category"] = normalizeCategory(*patch.Category)
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Specifications != nil {
		updates["specifications"] = *patch.Specifications
	}
	if patch.Features != nil {
		updates["features"] = ParseFeatures(*patch.Features)
	}
	for field, column := range map[string]string{
		"image":       "image",
		"pdfFile":     "pdf_url",
		"specPdfFile": "spec_pdf_url",
	} {
		if url, ok := urls[field]; ok {
			updates[column] = url
		}
	}

	if len(updates) == 0 {
		return existing, nil
	}

	rows, err := s.attachments.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("update attachment: %w", err)
	}
	if rows == 0 {
		return nil, errors.ErrAttachmentNotFound
	}

	updated, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch updated attachment: %w", err)
	}
	return updated, nil
}

func (s *attachmentService) List(ctx context.Context) ([]model.Attachment, error) {
	return s.attachments.List(ctx)
}

func (s *attachmentService) Get(ctx context.Context, id uuid.UUID) (*model.Attachment, error) {
	attachment, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("fetch attachment: %w", err)
	}
	return attachment, nil
}

func (s *attachmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.attachments.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrAttachmentNotFound
		}
		return fmt.Errorf("fetch attachment: %w", err)
	}
	if err := s.attachments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}
