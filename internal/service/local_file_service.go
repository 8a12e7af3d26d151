package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// localFileService keeps uploads on the local filesystem, for
// development without an object store.
type localFileService struct {
	basePath string
	baseURL  string
}

func NewLocalFileService(basePath, baseURL string) (FileService, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &localFileService{basePath: basePath, baseURL: baseURL}, nil
}

func (l *localFileService) Upload(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	fullPath := filepath.Join(l.basePath, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, file); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return fmt.Sprintf("%s/%s", l.baseURL, key), nil
}

func (l *localFileService) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(l.basePath, key))
}

func (l *localFileService) GetKeyFromUrl(fileUrl string) (string, error) {
	prefix := l.baseURL + "/"
	if strings.HasPrefix(fileUrl, prefix) && len(fileUrl) > len(prefix) {
		return fileUrl[len(prefix):], nil
	}
	return "", fmt.Errorf("url does not match expected format: %s", fileUrl)
}
