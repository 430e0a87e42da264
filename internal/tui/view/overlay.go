package view

import (
	"path"
	"strings"

	"github.com/glabrego/reels-cli/internal/media"
	tuitheme "github.com/glabrego/reels-cli/internal/tui/theme"
)

// RenderPreview renders the pick-confirmation overlay for the pending item.
func RenderPreview(item media.Item, width int, th tuitheme.Theme) string {
	kind := "photo"
	if item.IsVideo() {
		kind = "video"
	}

	var b strings.Builder
	b.WriteString(th.ModalTitle.Render("Preview"))
	b.WriteString("\n\n")
	b.WriteString(th.MediaImage.Render(truncateRunes(path.Base(item.URI), maxInt(width-12, 8))))
	b.WriteString("  ")
	b.WriteString(th.Hint.Render("(" + kind + ")"))
	b.WriteString("\n\n")
	b.WriteString(th.Hint.Render("enter: post · esc: cancel"))
	return th.ModalFrame.Render(b.String())
}

// RenderComposer renders the comment modal: the thread so far in insertion
// order plus the input line.
func RenderComposer(comments []string, input string, width int, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(th.ModalTitle.Render("Comments"))
	b.WriteString("\n\n")

	if len(comments) == 0 {
		b.WriteString(th.Hint.Render("No comments yet."))
		b.WriteString("\n")
	} else {
		for _, comment := range comments {
			b.WriteString(th.Comment.Render(truncateRunes(comment, maxInt(width-8, 8))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n\n")
	b.WriteString(th.Hint.Render("enter: add comment · esc: cancel"))
	return th.ModalFrame.Render(b.String())
}
