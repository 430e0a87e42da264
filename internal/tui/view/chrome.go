package view

import (
	"strings"

	tuitheme "github.com/glabrego/reels-cli/internal/tui/theme"
)

// RenderHeader renders the top bar: capture trigger on the left, the app title
// in the middle, messages icon on the right.
func RenderHeader(width int, th tuitheme.Theme) string {
	left := th.Hint.Render("📷 c: capture")
	title := th.Title.Render("⌁ Reels")
	right := th.Hint.Render("✉")

	gap := (width - visibleLen(left) - visibleLen(title) - visibleLen(right)) / 2
	if gap < 1 {
		gap = 1
	}
	spacer := strings.Repeat(" ", gap)

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(spacer)
	b.WriteString(title)
	b.WriteString(spacer)
	b.WriteString(right)
	b.WriteString("\n")
	b.WriteString(th.Hint.Render(strings.Repeat("─", maxInt(width, 10))))
	return b.String()
}

func RenderFooter(width int, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(th.Hint.Render(strings.Repeat("─", maxInt(width, 10))))
	b.WriteString("\n")
	b.WriteString(th.FooterLabel.Render("+ p: pick from library"))
	return b.String()
}

func RenderHelp(th tuitheme.Theme) string {
	lines := []string{
		"j/k/arrows  move through the feed",
		"g/G         first/last post",
		"pgup/pgdn   jump by a screen",
		"c           capture from camera (posts immediately)",
		"p           pick from library (preview before posting)",
		"l           like / unlike",
		"m           comments",
		"s           share",
		"?           toggle help",
		"q/ctrl+c    quit",
	}
	var b strings.Builder
	b.WriteString(th.ModalTitle.Render("Help"))
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString(th.Comment.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
