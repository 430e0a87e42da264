package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title      lipgloss.Style
	Hint       lipgloss.Style
	ActiveLine lipgloss.Style

	HeartLiked   lipgloss.Style
	HeartIdle    lipgloss.Style
	Counts       lipgloss.Style
	PlayingBadge lipgloss.Style
	PausedBadge  lipgloss.Style
	MediaVideo   lipgloss.Style
	MediaImage   lipgloss.Style

	ModalFrame  lipgloss.Style
	ModalTitle  lipgloss.Style
	Comment     lipgloss.Style
	StatusWarn  lipgloss.Style
	FooterLabel lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Hint:       lipgloss.NewStyle().Foreground(cpOverlay1),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),

		HeartLiked:   lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		HeartIdle:    lipgloss.NewStyle().Foreground(cpText),
		Counts:       lipgloss.NewStyle().Bold(true).Foreground(cpSubtext0),
		PlayingBadge: lipgloss.NewStyle().Bold(true).Foreground(cpGreen),
		PausedBadge:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MediaVideo:   lipgloss.NewStyle().Foreground(cpTeal),
		MediaImage:   lipgloss.NewStyle().Foreground(cpText),

		ModalFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cpMauve).
			Padding(1, 2),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Comment:     lipgloss.NewStyle().Foreground(cpText),
		StatusWarn:  lipgloss.NewStyle().Foreground(cpRed),
		FooterLabel: lipgloss.NewStyle().Foreground(cpOverlay1),
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

func (t Theme) RenderHeart(liked bool) string {
	if liked {
		return t.HeartLiked.Render("♥")
	}
	return t.HeartIdle.Render("♡")
}
