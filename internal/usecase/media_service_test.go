package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/stockplus/stockplus-server/internal/domain/errors"
	"github.com/stockplus/stockplus-server/internal/domain/model"
)

func TestMediaService_Upload(t *testing.T) {
	logger := zap.NewNop()
	body := []byte("fake image bytes")

	mediaRepo := new(MockMediaFileRepository)
	uploader := new(MockMediaUploader)

	uploader.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "uploads/42/") && strings.HasSuffix(key, ".png")
	}), "image/png", body).Return(nil)
	mediaRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.MediaFile) bool {
		return f.OwnerID == 42 && f.FileName == "logo.png" && f.Size == int64(len(body))
	})).Return(nil)

	service := NewMediaService(mediaRepo, uploader, logger)
	file, err := service.Upload(context.Background(), 42, "logo.png", "image/png", body)

	assert.NoError(t, err)
	assert.Equal(t, "logo.png", file.FileName)
	uploader.AssertExpectations(t)
	mediaRepo.AssertExpectations(t)
}

func TestMediaService_Upload_StorageRejects(t *testing.T) {
	logger := zap.NewNop()

	mediaRepo := new(MockMediaFileRepository)
	uploader := new(MockMediaUploader)
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domainErrors.ErrObjectExists)

	service := NewMediaService(mediaRepo, uploader, logger)
	_, err := service.Upload(context.Background(), 42, "logo.png", "image/png", []byte("x"))

	assert.ErrorIs(t, err, domainErrors.ErrObjectExists)
	mediaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMediaService_DownloadURL(t *testing.T) {
	logger := zap.NewNop()

	mediaRepo := new(MockMediaFileRepository)
	uploader := new(MockMediaUploader)

	mediaRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&model.MediaFile{ID: 7, Key: "uploads/42/123.png"}, nil)
	uploader.On("PresignedURL", mock.Anything, "uploads/42/123.png", 15*time.Minute).
		Return("https://bucket.example.com/signed", nil)

	service := NewMediaService(mediaRepo, uploader, logger)
	url, err := service.DownloadURL(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/signed", url)
}

func TestMediaService_DownloadURL_NotFound(t *testing.T) {
	logger := zap.NewNop()

	mediaRepo := new(MockMediaFileRepository)
	mediaRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := NewMediaService(mediaRepo, new(MockMediaUploader), logger)
	_, err := service.DownloadURL(context.Background(), 99)

	assert.ErrorIs(t, err, domainErrors.ErrMediaFileNotFound)
}
