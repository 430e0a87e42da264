package state

import (
	"strings"

	"github.com/glabrego/reels-cli/internal/media"
)

// VisibleEntry is one on-screen post as reported by the scroll window, in
// display order.
type VisibleEntry struct {
	Index int
	Item  media.Item
}

// ToggleLike flips the liked marker for id and returns a new map, leaving the
// input untouched. Presence means liked; untoggling deletes the key rather
// than storing false.
func ToggleLike(likes map[string]bool, id string) map[string]bool {
	updated := make(map[string]bool, len(likes)+1)
	for k, v := range likes {
		updated[k] = v
	}
	if updated[id] {
		delete(updated, id)
	} else {
		updated[id] = true
	}
	return updated
}

func Liked(likes map[string]bool, id string) bool {
	return likes[id]
}

// LikeCount counts like-set keys equal to id. With single-user likes this is
// always 0 or 1; the counting shape is kept as-is rather than generalized.
func LikeCount(likes map[string]bool, id string) int {
	count := 0
	for k := range likes {
		if k == id {
			count++
		}
	}
	return count
}

// AppendComment appends text to id's thread and returns a new map with a new
// slice for that thread, leaving the input untouched. Whitespace-only text is
// a no-op, reported by the second return.
func AppendComment(comments map[string][]string, id, text string) (map[string][]string, bool) {
	if strings.TrimSpace(text) == "" {
		return comments, false
	}

	updated := make(map[string][]string, len(comments)+1)
	for k, v := range comments {
		updated[k] = v
	}
	updated[id] = append(append([]string(nil), comments[id]...), text)
	return updated, true
}

func CommentCount(comments map[string][]string, id string) int {
	return len(comments[id])
}

// VisibleEntries reports the entries inside the scroll window, oldest-first
// within the window: items[offset:offset+count].
func VisibleEntries(items []media.Item, offset, count int) []VisibleEntry {
	if count <= 0 || offset >= len(items) {
		return nil
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + count
	if end > len(items) {
		end = len(items)
	}

	visible := make([]VisibleEntry, 0, end-offset)
	for i := offset; i < end; i++ {
		visible = append(visible, VisibleEntry{Index: i, Item: items[i]})
	}
	return visible
}

// PlayingID picks the single autoplaying video: the first visible entry, in
// the order of the visibility report, whose item is a video. No visible video
// means nothing plays.
func PlayingID(visible []VisibleEntry) string {
	for _, entry := range visible {
		if entry.Item.IsVideo() {
			return entry.Item.ID
		}
	}
	return ""
}

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// ScrollOffset keeps cursor inside a window of count entries over size items,
// moving the window as little as possible from the previous offset.
func ScrollOffset(offset, cursor, count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	cursor = ClampCursor(cursor, size)
	if offset < 0 {
		offset = 0
	}
	maxOffset := size - count
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if cursor < offset {
		return cursor
	}
	if cursor >= offset+count {
		return cursor - count + 1
	}
	return offset
}
