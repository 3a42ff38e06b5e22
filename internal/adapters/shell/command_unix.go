//go:build !windows

package shell

import "os/exec"

func defaultShell() string {
	return "/bin/sh"
}

func newCommand(shell, line string) *exec.Cmd {
	return exec.Command(shell, "-c", line) //nolint:gosec // user provided command
}
