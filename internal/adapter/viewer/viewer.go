// Package viewer hands files to the platform's default document
// viewer.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open asks the platform's default handler to open the file at path.
// The viewer is started, not awaited: the caller only waits long
// enough for it to pick the file up before the temp file is released.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open viewer: %w", err)
	}
	return nil
}
