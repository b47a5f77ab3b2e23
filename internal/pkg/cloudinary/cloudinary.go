// Package cloudinary is the gallery store for analyzed scam screenshots.
// High-risk captures land in a dedicated folder that feeds the public
// scam-gallery page; everything else goes to an analysis folder for audit.
package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin/search"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const (
	highRiskFolder = "high-risk"
	analysisFolder = "analysis"
)

// Service handles screenshot storage on Cloudinary
type Service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// GalleryItem is one stored high-risk screenshot as listed by the gallery API
type GalleryItem struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Path      string `json:"path"`
	CreatedAt string `json:"created_at,omitempty"`
	Size      int    `json:"size"`
}

// Screenshot upload constraints
var (
	AllowedScreenshotTypes = []string{".jpg", ".jpeg", ".png", ".webp"}
	MaxScreenshotSize      = int64(5 * 1024 * 1024) // 5MB
)

// NewService creates a new Cloudinary service instance
func NewService(cloudName, apiKey, apiSecret, folder string) (*Service, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if folder == "" {
		folder = "scamlens"
	}

	return &Service{
		cld:    cld,
		folder: folder,
	}, nil
}

// SaveScreenshot uploads an analyzed screenshot. highRisk routes it to the
// gallery folder. Returns the public URL and the storage path (public ID).
func (s *Service) SaveScreenshot(ctx context.Context, data []byte, filename string, highRisk bool) (string, string, error) {
	folder := s.folder + "/" + analysisFolder
	if highRisk {
		folder = s.folder + "/" + highRiskFolder
	}

	// Unique name so repeated uploads of the same file never collide
	name := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102_150405"), uuid.NewString()[:8])

	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     name,
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload screenshot %s: %w", filename, err)
	}

	return result.SecureURL, result.PublicID, nil
}

// ListHighRisk returns stored gallery screenshots, newest first.
func (s *Service) ListHighRisk(ctx context.Context, limit int) ([]GalleryItem, error) {
	result, err := s.cld.Admin.Search(ctx, search.Query{
		Expression: fmt.Sprintf("folder:%s/%s", s.folder, highRiskFolder),
		SortBy:     []search.SortByField{{"created_at": search.Descending}},
		MaxResults: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery screenshots: %w", err)
	}

	items := make([]GalleryItem, 0, len(result.Assets))
	for _, asset := range result.Assets {
		name := asset.Filename
		if asset.Format != "" {
			name = name + "." + asset.Format
		}

		item := GalleryItem{
			Name: name,
			URL:  asset.SecureURL,
			Path: asset.PublicID,
			Size: asset.Bytes,
		}
		if !asset.CreatedAt.IsZero() {
			item.CreatedAt = asset.CreatedAt.UTC().Format(time.RFC3339)
		}

		items = append(items, item)
	}

	return items, nil
}

// Delete removes a stored screenshot by its storage path (public ID)
func (s *Service) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("publicID is required")
	}

	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to delete screenshot: %w", err)
	}

	return nil
}

// Ping verifies credentials against the Cloudinary admin API
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.cld.Admin.Ping(ctx)
	return err
}

// ValidateScreenshot validates a screenshot upload before any processing
func ValidateScreenshot(header *multipart.FileHeader) error {
	if header.Size > MaxScreenshotSize {
		return fmt.Errorf("file too large, maximum %d MB allowed", MaxScreenshotSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range AllowedScreenshotTypes {
		if ext == allowed {
			return nil
		}
	}

	return fmt.Errorf("invalid image type %s, allowed types: %s", ext, strings.Join(AllowedScreenshotTypes, ", "))
}
