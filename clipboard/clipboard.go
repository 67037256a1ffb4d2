// Package clipboard provides clipboard operations for copying screenplays.
package clipboard

import (
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var (
	_ fountain.Clipboard = (*System)(nil)
	_ fountain.Clipboard = (*PBCopy)(nil)
)

// System implements Clipboard using the platform clipboard
// (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return clipboard.WriteAll(content)
}

// Available reports whether a clipboard backend was found.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// PBCopy implements Clipboard using macOS pbcopy command.
type PBCopy struct{}

// NewPBCopy returns a new PBCopy clipboard.
func NewPBCopy() *PBCopy {
	return &PBCopy{}
}

// Copy writes content to the system clipboard using pbcopy.
func (p *PBCopy) Copy(content string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
