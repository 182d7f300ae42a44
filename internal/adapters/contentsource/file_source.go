package contentsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abin-codes/orukachavadakaran-realestate/internal/constants"
	"github.com/abin-codes/orukachavadakaran-realestate/internal/core/domain"
)

// FileSource реализует ContentSourcePort поверх локальной директории
// со статикой сайта (root/content/...). Используется при совместном
// деплое сервиса и контента.
type FileSource struct {
	root string
}

func NewFileSource(root string) (*FileSource, error) {
	if root == "" {
		return nil, fmt.Errorf("content root directory is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root %s is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}
	return &FileSource{root: root}, nil
}

func (s *FileSource) read(path string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("document %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %v: %w", path, err, domain.ErrNetwork)
	}
	return raw, nil
}

func (s *FileSource) FetchPropertyIndex(ctx context.Context) ([]string, error) {
	raw, err := s.read(constants.PropertyIndexPath)
	if err != nil {
		return nil, err
	}
	return parsePropertyIndex(raw)
}

func (s *FileSource) FetchProperty(ctx context.Context, propertyID string) (*domain.PropertyRecord, error) {
	raw, err := s.read(fmt.Sprintf(constants.PropertyDocumentPath, propertyID))
	if err != nil {
		return nil, err
	}
	return toDomainProperty(raw)
}

func (s *FileSource) FetchBlogIndex(ctx context.Context) ([]string, error) {
	raw, err := s.read(constants.BlogIndexPath)
	if err != nil {
		return nil, err
	}
	return parseBlogIndex(raw)
}

func (s *FileSource) FetchBlogArticle(ctx context.Context, blogID string) (*domain.BlogArticle, error) {
	raw, err := s.read(fmt.Sprintf(constants.BlogDocumentPath, blogID))
	if err != nil {
		return nil, err
	}
	return toDomainArticle(raw)
}

func (s *FileSource) FetchPageContent(ctx context.Context, pageName string) (domain.PageContent, error) {
	raw, err := s.read(fmt.Sprintf(constants.PageDocumentPath, pageName))
	if err != nil {
		return nil, err
	}
	return toDomainPageContent(raw)
}
