package filetransfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arthurdotwork/atrium/internal/domain"
)

type API interface {
	UploadFile(ctx context.Context, roomID, name string, data []byte) (string, error)
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)
}

// Service exposes room-scoped file transfer.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) Name() string { return "filetransfer" }

func (s *Service) Start(ctx context.Context, _ domain.TransportChannel, _ domain.AuthGateway) error {
	slog.DebugContext(ctx, "filetransfer module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	slog.DebugContext(ctx, "filetransfer module stopped")
	return nil
}

func (s *Service) Upload(ctx context.Context, roomID, name string, data []byte) (string, error) {
	if roomID == "" {
		return "", fmt.Errorf("empty room: %w", domain.ErrBadRequest)
	}

	if name == "" {
		return "", fmt.Errorf("empty name: %w", domain.ErrBadRequest)
	}

	fileID, err := s.api.UploadFile(ctx, roomID, name, data)
	if err != nil {
		return "", fmt.Errorf("api.UploadFile: %w", err)
	}

	return fileID, nil
}

func (s *Service) Download(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("empty file id: %w", domain.ErrBadRequest)
	}

	data, err := s.api.DownloadFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("api.DownloadFile: %w", err)
	}

	return data, nil
}
