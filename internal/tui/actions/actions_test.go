package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/glabrego/reels-cli/internal/capture"
	"github.com/glabrego/reels-cli/internal/media"
	"github.com/glabrego/reels-cli/internal/tui/platform"
)

type fakeService struct {
	loadItems []media.Item
	loadErr   error
	appendErr error

	appended []media.Item
}

func (f *fakeService) Load(context.Context) ([]media.Item, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.loadItems, nil
}

func (f *fakeService) Append(_ context.Context, items []media.Item, item media.Item) ([]media.Item, error) {
	f.appended = append(f.appended, item)
	updated := append(append([]media.Item(nil), items...), item)
	if f.appendErr != nil {
		return updated, f.appendErr
	}
	return updated, nil
}

type fakeProvider struct {
	result     capture.Result
	lastSource capture.Source
	lastOpts   capture.Options
}

func (f *fakeProvider) Launch(_ context.Context, source capture.Source, opts capture.Options) capture.Result {
	f.lastSource = source
	f.lastOpts = opts
	return f.result
}

func TestLoadFeedCmd(t *testing.T) {
	svc := &fakeService{loadItems: media.FromRefs([]string{"a.jpg"})}
	msg := LoadFeedCmd(svc)()
	loaded, ok := msg.(FeedLoadedMsg)
	if !ok {
		t.Fatalf("expected FeedLoadedMsg, got %T", msg)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].URI != "a.jpg" {
		t.Fatalf("unexpected payload: %+v", loaded)
	}

	svc.loadErr = errors.New("boom")
	if _, ok := LoadFeedCmd(svc)().(FeedLoadErrorMsg); !ok {
		t.Fatal("expected FeedLoadErrorMsg")
	}
}

func TestCaptureCmd_PostsImmediately(t *testing.T) {
	svc := &fakeService{}
	provider := &fakeProvider{result: capture.Result{Assets: []capture.Asset{{URI: "shot.jpg"}, {URI: "ignored.jpg"}}}}
	existing := media.FromRefs([]string{"a.jpg"})

	msg := CaptureCmd(svc, provider, existing, capture.Options{MediaType: "mixed", Quality: 1}, func() bool { return true })()
	posted, ok := msg.(PostedMsg)
	if !ok {
		t.Fatalf("expected PostedMsg, got %T", msg)
	}
	if provider.lastSource != capture.SourceCamera {
		t.Fatalf("expected camera source, got %q", provider.lastSource)
	}
	if len(posted.Items) != 2 || posted.Items[1].URI != "shot.jpg" {
		t.Fatalf("expected only the first asset appended: %+v", posted.Items)
	}
	if posted.PersistErr != nil {
		t.Fatalf("unexpected persist error: %v", posted.PersistErr)
	}
}

func TestCaptureCmd_PermissionDeniedAbortsSilently(t *testing.T) {
	svc := &fakeService{}
	provider := &fakeProvider{result: capture.Result{Assets: []capture.Asset{{URI: "shot.jpg"}}}}

	msg := CaptureCmd(svc, provider, nil, capture.Options{}, func() bool { return false })()
	if _, ok := msg.(PermissionDeniedMsg); !ok {
		t.Fatalf("expected PermissionDeniedMsg, got %T", msg)
	}
	if provider.lastSource != "" {
		t.Fatal("provider must not launch when permission is denied")
	}
	if len(svc.appended) != 0 {
		t.Fatal("no state change expected on denial")
	}
}

func TestCaptureCmd_CancelledAndError(t *testing.T) {
	svc := &fakeService{}

	provider := &fakeProvider{result: capture.Result{Cancelled: true}}
	if _, ok := CaptureCmd(svc, provider, nil, capture.Options{}, nil)().(CaptureCancelledMsg); !ok {
		t.Fatal("expected CaptureCancelledMsg")
	}

	provider.result = capture.Result{ErrorCode: "camera_unavailable", ErrorMessage: "no device"}
	msg := CaptureCmd(svc, provider, nil, capture.Options{}, nil)()
	errMsg, ok := msg.(CaptureErrorMsg)
	if !ok {
		t.Fatalf("expected CaptureErrorMsg, got %T", msg)
	}
	if errMsg.Code != "camera_unavailable" {
		t.Fatalf("unexpected code: %q", errMsg.Code)
	}
	if len(svc.appended) != 0 {
		t.Fatal("no state change expected on cancel or error")
	}
}

func TestCaptureCmd_SurfacesPersistFailure(t *testing.T) {
	svc := &fakeService{appendErr: errors.New("disk full")}
	provider := &fakeProvider{result: capture.Result{Assets: []capture.Asset{{URI: "shot.jpg"}}}}

	msg := CaptureCmd(svc, provider, nil, capture.Options{}, nil)()
	posted, ok := msg.(PostedMsg)
	if !ok {
		t.Fatalf("expected PostedMsg, got %T", msg)
	}
	if posted.PersistErr == nil {
		t.Fatal("expected persist error surfaced")
	}
	if len(posted.Items) != 1 {
		t.Fatalf("expected in-memory append kept: %+v", posted.Items)
	}
}

func TestPickCmd_GatesBehindPreview(t *testing.T) {
	provider := &fakeProvider{result: capture.Result{Assets: []capture.Asset{{URI: "pick.jpg"}, {URI: "other.jpg"}}}}

	msg := PickCmd(provider, capture.Options{MediaType: "mixed", Quality: 1})()
	picked, ok := msg.(PickedMsg)
	if !ok {
		t.Fatalf("expected PickedMsg, got %T", msg)
	}
	if provider.lastSource != capture.SourceLibrary {
		t.Fatalf("expected library source, got %q", provider.lastSource)
	}
	if picked.Item.URI != "pick.jpg" || picked.Item.ID == "" {
		t.Fatalf("unexpected pending item: %+v", picked.Item)
	}
}

func TestPickCmd_CancelledAndError(t *testing.T) {
	provider := &fakeProvider{result: capture.Result{Cancelled: true}}
	if _, ok := PickCmd(provider, capture.Options{})().(CaptureCancelledMsg); !ok {
		t.Fatal("expected CaptureCancelledMsg")
	}

	provider.result = capture.Result{ErrorCode: "library_unavailable"}
	if _, ok := PickCmd(provider, capture.Options{})().(CaptureErrorMsg); !ok {
		t.Fatal("expected CaptureErrorMsg")
	}
}

func TestConfirmPostCmd(t *testing.T) {
	svc := &fakeService{}
	pending := media.New("pick.jpg")
	existing := media.FromRefs([]string{"a.jpg"})

	msg := ConfirmPostCmd(svc, existing, pending)()
	posted, ok := msg.(PostedMsg)
	if !ok {
		t.Fatalf("expected PostedMsg, got %T", msg)
	}
	if len(posted.Items) != 2 || posted.Items[1].ID != pending.ID {
		t.Fatalf("pending item not appended: %+v", posted.Items)
	}
}

func TestShareCmd(t *testing.T) {
	msg := ShareCmd("a.jpg", func(message string) (platform.ShareResult, error) {
		if message != "a.jpg" {
			t.Fatalf("unexpected share message: %q", message)
		}
		return platform.ShareResult{Action: platform.ActionShared, ActivityType: "pbcopy"}, nil
	})()
	done, ok := msg.(ShareDoneMsg)
	if !ok {
		t.Fatalf("expected ShareDoneMsg, got %T", msg)
	}
	if done.Result.Action != platform.ActionShared {
		t.Fatalf("unexpected share result: %+v", done.Result)
	}

	msg = ShareCmd("a.jpg", func(string) (platform.ShareResult, error) {
		return platform.ShareResult{}, errors.New("no clipboard")
	})()
	if _, ok := msg.(ShareErrorMsg); !ok {
		t.Fatalf("expected ShareErrorMsg, got %T", msg)
	}
}
