package media

import (
	"strings"

	"github.com/google/uuid"
)

const videoSuffix = ".mp4"

// Item is one posted capture: a stable identity plus the URI of the underlying
// file. Only the URI is persisted; IDs are minted in-process so interaction
// state keyed by them survives list reordering.
type Item struct {
	ID  string
	URI string
}

func New(uri string) Item {
	return Item{ID: uuid.NewString(), URI: uri}
}

func (i Item) IsVideo() bool {
	return strings.HasSuffix(i.URI, videoSuffix)
}

// FromRefs rebuilds items from their persisted references, preserving order.
func FromRefs(refs []string) []Item {
	items := make([]Item, 0, len(refs))
	for _, ref := range refs {
		items = append(items, New(ref))
	}
	return items
}

// Refs flattens items back to the persisted wire shape.
func Refs(items []Item) []string {
	refs := make([]string, 0, len(items))
	for _, item := range items {
		refs = append(refs, item.URI)
	}
	return refs
}
