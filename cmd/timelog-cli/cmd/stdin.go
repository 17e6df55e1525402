package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// stdinPaths returns the non-empty lines piped into the command, or nil
// when stdin is a terminal.
func stdinPaths() ([]string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil
	}
	return readPaths(os.Stdin)
}

func readPaths(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, sc.Err()
}

// resolvePaths prefers the explicit flag value over piped input
func resolvePaths(flag string) ([]string, error) {
	if flag != "" {
		return []string{flag}, nil
	}
	return stdinPaths()
}

// terminalWidth returns the stdout width, or 0 when it is not a terminal
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
