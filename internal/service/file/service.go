// Package file stores uploaded binaries and hands back their public URLs.
package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
)

type Service struct {
	storage storage.FileStorage
}

func NewFileService(st storage.FileStorage) *Service {
	return &Service{storage: st}
}

// SavePhoto stores an employee photo under a collision-free name and
// returns its public URL.
func (s *Service) SavePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("photos/%s-%s%s", sanitize(employeeID), uuid.NewString(), ext)

	path, err := s.storage.Upload(ctx, file, name)
	if err != nil {
		return "", fmt.Errorf("upload photo: %w", err)
	}

	return s.storage.GetURL(path), nil
}

// DeletePhoto removes a previously stored photo given its public URL.
// Unknown URLs are ignored.
func (s *Service) DeletePhoto(ctx context.Context, url string) error {
	idx := strings.Index(url, "photos/")
	if idx < 0 {
		return nil
	}
	return s.storage.Delete(ctx, url[idx:])
}

func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, id)
}
