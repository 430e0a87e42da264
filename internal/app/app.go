package app

import (
	"context"
	"fmt"

	"github.com/glabrego/reels-cli/internal/media"
)

type Repository interface {
	MediaList(ctx context.Context) ([]string, error)
	SaveMediaList(ctx context.Context, refs []string) error
}

// Service owns the feed's persistence contract: the in-memory list is the
// caller's, every append is written through as the full serialized list.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Load(ctx context.Context) ([]media.Item, error) {
	refs, err := s.repo.MediaList(ctx)
	if err != nil {
		return nil, fmt.Errorf("load media list: %w", err)
	}
	return media.FromRefs(refs), nil
}

// Append adds item to the end of items and persists the updated list. The
// updated list is returned even when the write fails, so the feed can keep the
// post on screen and surface the persistence failure separately.
func (s *Service) Append(ctx context.Context, items []media.Item, item media.Item) ([]media.Item, error) {
	updated := append(append([]media.Item(nil), items...), item)
	if err := s.repo.SaveMediaList(ctx, media.Refs(updated)); err != nil {
		return updated, fmt.Errorf("persist media list: %w", err)
	}
	return updated, nil
}
