package actions

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/reels-cli/internal/capture"
	"github.com/glabrego/reels-cli/internal/media"
	"github.com/glabrego/reels-cli/internal/tui/platform"
)

type FeedService interface {
	Load(ctx context.Context) ([]media.Item, error)
	Append(ctx context.Context, items []media.Item, item media.Item) ([]media.Item, error)
}

type FeedLoadedMsg struct {
	Items []media.Item
}

type FeedLoadErrorMsg struct {
	Err error
}

type PermissionDeniedMsg struct{}

type CaptureCancelledMsg struct {
	Source capture.Source
}

type CaptureErrorMsg struct {
	Source  capture.Source
	Code    string
	Message string
}

// PostedMsg carries the authoritative list after a camera capture or a
// confirmed pick was appended. PersistErr is set when the in-memory append
// succeeded but the write-through did not.
type PostedMsg struct {
	Items      []media.Item
	PersistErr error
}

type PickedMsg struct {
	Item media.Item
}

type ShareDoneMsg struct {
	Result platform.ShareResult
}

type ShareErrorMsg struct {
	Err error
}

func LoadFeedCmd(service FeedService) tea.Cmd {
	return func() tea.Msg {
		items, err := service.Load(context.Background())
		if err != nil {
			return FeedLoadErrorMsg{Err: err}
		}
		return FeedLoadedMsg{Items: items}
	}
}

// CaptureCmd runs the full camera workflow: permission probe, capture, then
// append-and-persist in one step. Camera captures post immediately, no
// preview.
func CaptureCmd(service FeedService, provider capture.Provider, items []media.Item, opts capture.Options, permissionFn func() bool) tea.Cmd {
	return func() tea.Msg {
		if permissionFn != nil && !permissionFn() {
			return PermissionDeniedMsg{}
		}

		res := provider.Launch(context.Background(), capture.SourceCamera, opts)
		switch {
		case res.Cancelled, len(res.Assets) == 0 && !res.Failed():
			return CaptureCancelledMsg{Source: capture.SourceCamera}
		case res.Failed():
			return CaptureErrorMsg{Source: capture.SourceCamera, Code: res.ErrorCode, Message: res.ErrorMessage}
		}

		updated, err := service.Append(context.Background(), items, media.New(res.Assets[0].URI))
		return PostedMsg{Items: updated, PersistErr: err}
	}
}

// PickCmd runs the library workflow up to the preview gate: the chosen asset
// becomes a pending item awaiting explicit confirmation, nothing is appended.
func PickCmd(provider capture.Provider, opts capture.Options) tea.Cmd {
	return func() tea.Msg {
		res := provider.Launch(context.Background(), capture.SourceLibrary, opts)
		switch {
		case res.Cancelled, len(res.Assets) == 0 && !res.Failed():
			return CaptureCancelledMsg{Source: capture.SourceLibrary}
		case res.Failed():
			return CaptureErrorMsg{Source: capture.SourceLibrary, Code: res.ErrorCode, Message: res.ErrorMessage}
		}
		return PickedMsg{Item: media.New(res.Assets[0].URI)}
	}
}

// ConfirmPostCmd appends a previously previewed item and persists the list.
func ConfirmPostCmd(service FeedService, items []media.Item, item media.Item) tea.Cmd {
	return func() tea.Msg {
		updated, err := service.Append(context.Background(), items, item)
		return PostedMsg{Items: updated, PersistErr: err}
	}
}

func ShareCmd(message string, shareFn func(string) (platform.ShareResult, error)) tea.Cmd {
	return func() tea.Msg {
		result, err := shareFn(message)
		if err != nil {
			return ShareErrorMsg{Err: err}
		}
		return ShareDoneMsg{Result: result}
	}
}
