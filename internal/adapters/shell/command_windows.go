//go:build windows

package shell

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func defaultShell() string {
	if comspec := os.Getenv("ComSpec"); comspec != "" {
		return comspec
	}
	return "cmd.exe"
}

// newCommand passes the line to cmd.exe verbatim. Go's default argument
// quoting would escape the quotes cmd.exe relies on.
func newCommand(shell, line string) *exec.Cmd {
	cmd := exec.Command(shell) //nolint:gosec // user provided command
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    fmt.Sprintf(`%s /d /s /c "%s"`, shell, line),
		HideWindow: true,
	}
	return cmd
}
