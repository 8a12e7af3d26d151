package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of service.FileService for testing
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockFileService) GetKeyFromUrl(fileUrl string) (string, error) {
	args := m.Called(fileUrl)
	return args.String(0), args.Error(1)
}
