package app

import (
	"context"
	"errors"
	"testing"

	"github.com/glabrego/reels-cli/internal/media"
)

type fakeRepo struct {
	refs    []string
	saved   []string
	loadErr error
	saveErr error
}

func (f *fakeRepo) MediaList(context.Context) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.refs, nil
}

func (f *fakeRepo) SaveMediaList(_ context.Context, refs []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append([]string(nil), refs...)
	return nil
}

func TestService_Load_ReproducesPersistedOrder(t *testing.T) {
	repo := &fakeRepo{refs: []string{"a.jpg", "b.mp4", "c.png"}}
	svc := NewService(repo)

	items, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range repo.refs {
		if items[i].URI != want {
			t.Fatalf("item %d has URI %q, want %q", i, items[i].URI, want)
		}
		if items[i].ID == "" {
			t.Fatalf("item %d has no ID", i)
		}
	}
}

func TestService_Load_EmptyStore(t *testing.T) {
	svc := NewService(&fakeRepo{})
	items, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty feed, got %v", items)
	}
}

func TestService_Load_PropagatesError(t *testing.T) {
	svc := NewService(&fakeRepo{loadErr: errors.New("boom")})
	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestService_Append_WritesThroughFullList(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	existing := media.FromRefs([]string{"a.jpg"})
	item := media.New("b.mp4")

	updated, err := svc.Append(context.Background(), existing, item)
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if len(updated) != 2 || updated[1].ID != item.ID {
		t.Fatalf("unexpected updated list: %+v", updated)
	}
	if len(repo.saved) != 2 || repo.saved[0] != "a.jpg" || repo.saved[1] != "b.mp4" {
		t.Fatalf("persisted record does not match in-memory list: %v", repo.saved)
	}
	if len(existing) != 1 {
		t.Fatalf("caller's list was mutated: %+v", existing)
	}
}

func TestService_Append_ReturnsListOnPersistFailure(t *testing.T) {
	svc := NewService(&fakeRepo{saveErr: errors.New("disk full")})

	updated, err := svc.Append(context.Background(), nil, media.New("a.jpg"))
	if err == nil {
		t.Fatal("expected persist error")
	}
	if len(updated) != 1 || updated[0].URI != "a.jpg" {
		t.Fatalf("expected updated list despite persist failure, got %+v", updated)
	}
}
