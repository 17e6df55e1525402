package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"timelog/internal/ports"
)

var ErrNoEditor = errors.New("no editor found: set editor in the config file or $EDITOR")

// fallbacks are tried in order when nothing is configured
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	editor   string
	lookPath func(string) (string, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener for the configured editor command, which may
// carry arguments (e.g. "code --wait"). An empty command falls back to
// $VISUAL and then to the first editor found on $PATH.
func NewOpener(editor string) *Opener {
	return &Opener{editor: editor, lookPath: exec.LookPath}
}

// OpenFile opens a document and waits for the editor to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the editor process attached to the terminal
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv, err := o.argv()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) argv() ([]string, error) {
	if fields := strings.Fields(o.editor); len(fields) > 0 {
		return fields, nil
	}
	if fields := strings.Fields(os.Getenv("VISUAL")); len(fields) > 0 {
		return fields, nil
	}
	for _, name := range fallbacks {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, ErrNoEditor
}
