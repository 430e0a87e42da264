package platform

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

type ShareAction string

const (
	ActionShared    ShareAction = "shared"
	ActionDismissed ShareAction = "dismissed"
)

type ShareResult struct {
	Action       ShareAction
	ActivityType string
}

// RequestStoragePermission reports whether the app may write captures under
// dir. The probe is a throwaway file; any failure counts as a denial.
func RequestStoragePermission(dir string) bool {
	if dir == "" {
		return false
	}
	probe := filepath.Join(dir, ".reels-permission-probe")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return true
}

// Share hands the message to the system clipboard, the terminal's stand-in for
// a share sheet. No clipboard tool on the host maps to a dismissed share; a
// tool that exists but fails is a delivery error.
func Share(message string) (ShareResult, error) {
	commands := [][]string{
		{"pbcopy"},
		{"xclip", "-selection", "clipboard"},
		{"wl-copy"},
	}

	for _, c := range commands {
		if _, err := exec.LookPath(c[0]); err != nil {
			continue
		}
		cmd := exec.Command(c[0], c[1:]...)
		cmd.Stdin = bytes.NewBufferString(message)
		if err := cmd.Run(); err != nil {
			return ShareResult{}, fmt.Errorf("share via %s: %w", c[0], err)
		}
		return ShareResult{Action: ActionShared, ActivityType: c[0]}, nil
	}

	return ShareResult{Action: ActionDismissed}, nil
}
