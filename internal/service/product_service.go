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

// Product form file fields and the storage prefixes their uploads land under.
var productFilePrefixes = map[string]string{
	"image1":      "images",
	"image2":      "images",
	"image3":      "images",
	"image4":      "images",
	"pdfFile":     "pdfs",
	"specPdfFile": "specs",
}

// ProductForm carries the raw multipart form values of a create request.
// Numeric fields stay textual here; parsing decides value vs NULL.
type ProductForm struct {
	Name                       string
	Description                string
	Category                   string
	Features                   string
	Specifications             string
	Horsepower                 string
	RatedOperatingCapacity     string
	RatedOperatingCapacityUnit string
	OperatingWeight            string
	DigDepth                   string
	Featured                   string
}

// ProductPatch is the sparse field set of an update request. A nil pointer
// means the field was absent from the form and must leave the stored value
// untouched; a non-nil pointer is always applied, which is how "omitted" and
// "explicitly cleared" stay distinguishable.
type ProductPatch struct {
	Name                       *string
	Description                *string
	Category                   *string
	Features                   *string
	Specifications             *string
	Horsepower                 *string
	RatedOperatingCapacity     *string
	RatedOperatingCapacityUnit *string
	OperatingWeight            *string
	DigDepth                   *string
	Featured                   *string
}

// ProductService implements the product upsert pipeline.
type ProductService interface {
	Create(ctx context.Context, form ProductForm, files map[string]FilePart) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch, files map[string]FilePart) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products repository.ProductRepository
	uploader storage.Uploader
}

// NewProductService creates a new product service.
func NewProductService(products repository.ProductRepository, uploader storage.Uploader) ProductService {
	return &productService{products: products, uploader: uploader}
}

// uploadProductFiles stores every provided file part and maps form field to
// public URL. The first failure aborts the batch; earlier uploads are not
// rolled back.
func (s *productService) uploadProductFiles(ctx context.Context, files map[string]FilePart) (map[string]string, error) {
	urls := make(map[string]string)
	for _, field := range []string{"image1", "image2", "image3", "image4", "pdfFile", "specPdfFile"} {
		part, ok := files[field]
		if !ok {
			continue
		}
		key := storage.ObjectKey(productFilePrefixes[field], part.Filename)
		url, err := s.uploader.Upload(ctx, key, part.ContentType, part.Data)
		if err != nil {
			return nil, fmt.Errorf("%s upload failed: %w", field, err)
		}
		urls[field] = url
	}
	return urls, nil
}

func (s *productService) Create(ctx context.Context, form ProductForm, files map[string]FilePart) (*model.Product, error) {
	if form.Name == "" || form.Category == "" {
		return nil, errors.ErrMissingRequiredFields
	}
	if _, ok := files["image1"]; !ok {
		return nil, errors.ErrMissingRequiredFields
	}

	urls, err := s.uploadProductFiles(ctx, files)
	if err != nil {
		return nil, err
	}

	unit := form.RatedOperatingCapacityUnit
	if unit == "" {
		unit = "kg"
	}

	product := &model.Product{
		ID:                         uuid.New(),
		Name:                       form.Name,
		Category:                   normalizeCategory(form.Category),
		Description:                form.Description,
		Features:                   ParseFeatures(form.Features),
		Specifications:             form.Specifications,
		Horsepower:                 parseNullableFloat(form.Horsepower),
		RatedOperatingCapacity:     parseNullableFloat(form.RatedOperatingCapacity),
		RatedOperatingCapacityUnit: unit,
		OperatingWeight:            parseNullableFloat(form.OperatingWeight),
		DigDepth:                   parseNullableFloat(form.DigDepth),
		Featured:                   parseCheckbox(form.Featured),
		Image1:                     urls["image1"],
		Image2:                     nilIfEmpty(urls["image2"]),
		Image3:                     nilIfEmpty(urls["image3"]),
		Image4:                     nilIfEmpty(urls["image4"]),
		PDFURL:                     nilIfEmpty(urls["pdfFile"]),
		SpecPDFURL:                 nilIfEmpty(urls["specPdfFile"]),
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, patch ProductPatch, files map[string]FilePart) (*model.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}

	var urls map[string]string
	if len(files) > 0 {
		urls, err = s.uploadProductFiles(ctx, files)
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
	if patch.Horsepower != nil {
		updates["horsepower"] = parseNullableFloat(*patch.Horsepower)
	}
	if patch.RatedOperatingCapacity != nil {
		updates["rated_operating_capacity"] = parseNullableFloat(*patch.RatedOperatingCapacity)
	}
	if patch.RatedOperatingCapacityUnit != nil && *patch.RatedOperatingCapacityUnit != "" {
		updates["rated_operating_capacity_unit"] = *patch.RatedOperatingCapacityUnit
	}
	if patch.OperatingWeight != nil {
		updates["operating_weight"] = parseNullableFloat(*patch.OperatingWeight)
	}
	if patch.DigDepth != nil {
		updates["dig_depth"] = parseNullableFloat(*patch.DigDepth)
	}
	if patch.Featured != nil {
		updates["featured"] = parseCheckbox(*patch.Featured)
	}
	for field, column := range map[string]string{
		"image1":      "image1",
		"image2":      "image2",
		"image3":      "image3",
		"image4":      "image4",
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

	rows, err := s.products.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if rows == 0 {
		// row vanished between the existence check and the write
		return nil, errors.ErrProductNotFound
	}

	updated, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch updated product: %w", err)
	}
	return updated, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	return product, nil
}

// Delete removes the row only. Uploaded files are not cleaned up; the system
// does not track file ownership.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProductNotFound
		}
		return fmt.Errorf("fetch product: %w", err)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
