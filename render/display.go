package render

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Open shows the image at path in the platform's default viewer.
// The launcher hands the file to the desktop and exits; ctx bounds how long
// Open waits for it.
func Open(ctx context.Context, path string) error {
	name, args := viewerCommand(runtime.GOOS, path)
	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("failed to launch viewer %s: %w", name, err)
	}
	return nil
}

func viewerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}
