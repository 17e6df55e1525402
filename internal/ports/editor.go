package ports

import "os/exec"

// EditorOpener opens documents in an external editor
type EditorOpener interface {
	OpenFile(path string) error

	// Command returns the editor process without starting it, so a TUI
	// can hand the terminal over with tea.ExecProcess
	Command(path string) (*exec.Cmd, error)
}
