package view

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/reels-cli/internal/media"
	tuitheme "github.com/glabrego/reels-cli/internal/tui/theme"
)

// EntryHeight is the number of terminal rows one feed entry occupies.
const EntryHeight = 4

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type EntryParams struct {
	Item         media.Item
	Liked        bool
	LikeCount    int
	CommentCount int
	Playing      bool
	Active       bool
	Width        int
}

// RenderEntry renders one post: media line with playback badge, action hints,
// and the likes/comments line.
func RenderEntry(p EntryParams, th tuitheme.Theme) string {
	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}

	kind := "[photo]"
	styled := th.MediaImage
	if p.Item.IsVideo() {
		kind = "[video]"
		styled = th.MediaVideo
	}
	label := truncateRunes(path.Base(p.Item.URI), maxInt(p.Width-20, 8))

	badge := ""
	if p.Item.IsVideo() {
		if p.Playing {
			badge = th.PlayingBadge.Render("▶ playing")
		} else {
			badge = th.PausedBadge.Render("⏸ paused")
		}
	}

	mediaLine := fmt.Sprintf("%s %s %s", cursorMarker, styled.Render(kind), label)
	if badge != "" {
		gap := p.Width - visibleLen(mediaLine) - visibleLen(badge)
		if gap < 1 {
			gap = 1
		}
		mediaLine += strings.Repeat(" ", gap) + badge
	}

	actionLine := "  " + th.Hint.Render(fmt.Sprintf("%s like (l) · comment (m) · share (s)", th.RenderHeart(p.Liked)))
	countsLine := "  " + th.RenderHeart(p.Liked) + " " + th.Counts.Render(fmt.Sprintf("%d Likes   %d Comments", p.LikeCount, p.CommentCount))
	rule := "  " + th.Hint.Render(strings.Repeat("─", maxInt(p.Width-4, 4)))

	var b strings.Builder
	b.WriteString(th.RenderActiveLine(p.Active, mediaLine))
	b.WriteString("\n")
	b.WriteString(actionLine)
	b.WriteString("\n")
	b.WriteString(countsLine)
	b.WriteString("\n")
	b.WriteString(rule)
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(reANSICodes.ReplaceAllString(s, ""))
}
