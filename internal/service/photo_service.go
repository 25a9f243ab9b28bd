package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"aisleplan/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PhotoStore is the slice of the photo repository the service needs.
type PhotoStore interface {
	Create(ctx context.Context, p *models.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	ListByWedding(ctx context.Context, weddingID uuid.UUID) ([]*models.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PhotoService struct {
	photos     PhotoStore
	weddings   WeddingGetter
	uploadDir  string
	publicPath string
	logger     *zap.Logger
}

func NewPhotoService(photos PhotoStore, weddings WeddingGetter, uploadDir, publicPath string, logger *zap.Logger) *PhotoService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &PhotoService{
		photos:     photos,
		weddings:   weddings,
		uploadDir:  uploadDir,
		publicPath: publicPath,
		logger:     logger,
	}
}

// UploadPhoto stores the file on disk under a generated name and records the
// photo row. A failed insert removes the file again.
func (s *PhotoService) UploadPhoto(ctx context.Context, userID, weddingID uuid.UUID, file io.Reader, fileName, caption, album string) (*models.Photo, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}

	fileID := uuid.New()
	ext := filepath.Ext(fileName)
	storedName := fileID.String() + ext
	filePath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	fileSize, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	now := time.Now()
	photo := &models.Photo{
		ID:         fileID,
		WeddingID:  weddingID,
		UploaderID: userID,
		Caption:    caption,
		Album:      album,
		FileName:   fileName,
		FileSize:   fileSize,
		FileURL:    s.publicPath + "/" + storedName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	return photo, nil
}

func (s *PhotoService) ListPhotos(ctx context.Context, userID, weddingID uuid.UUID) ([]*models.Photo, error) {
	if _, err := ensureWeddingOwner(ctx, s.weddings, weddingID, userID); err != nil {
		return nil, err
	}
	return s.photos.ListByWedding(ctx, weddingID)
}

func (s *PhotoService) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	photo, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return ErrNotFound
	}
	if _, err := ensureWeddingOwner(ctx, s.weddings, photo.WeddingID, userID); err != nil {
		return err
	}

	if err := s.photos.Delete(ctx, photoID); err != nil {
		return err
	}

	filePath := filepath.Join(s.uploadDir, filepath.Base(photo.FileURL))
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove photo file", zap.String("path", filePath), zap.Error(err))
	}

	return nil
}
