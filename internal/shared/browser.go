package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

// launchers maps GOOS to the argv prefix that hands a URL to the system
// browser.
var launchers = map[string][]string{
	"darwin":  {"open"},
	"linux":   {"xdg-open"},
	"windows": {"cmd", "/c", "start"},
}

// browserCommand builds the launch command for the given platform.
func browserCommand(goos, url string) (*exec.Cmd, error) {
	argv, ok := launchers[goos]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
	return exec.Command(argv[0], append(argv[1:], url)...), nil
}

// OpenBrowser opens the default system browser at the given URL. Its
// signature matches the opener callback that auth.Manager.Authorize accepts,
// so hosts can pass it straight through.
func OpenBrowser(url string) error {
	cmd, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}
