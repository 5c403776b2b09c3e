package storage

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/stockplus/stockplus-server/internal/config"
)

func TestMediaStorageObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		location string
		key      string
		want     string
	}{
		{"prefixes with location", "media", "uploads/1/file.png", "media/uploads/1/file.png"},
		{"trims slashes around location", "/media/", "uploads/1/file.png", "media/uploads/1/file.png"},
		{"trims leading slash on key", "media", "/uploads/1/file.png", "media/uploads/1/file.png"},
		{"empty location keeps key", "", "uploads/1/file.png", "uploads/1/file.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMediaStorage(s3.New(s3.Options{}), &config.StorageConfig{
				Bucket:   "bucket",
				Location: tt.location,
			}, zap.NewNop())
			assert.Equal(t, tt.want, m.objectKey(tt.key))
		})
	}
}
