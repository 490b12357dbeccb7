package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	liveGlyph = "⬛"
	deadGlyph = "⬜"
	liveDigit = "1"
	deadDigit = "0"

	macosClearCmd = "clear"
)

// Style selects how cells are drawn
type Style int

const (
	// StyleBlocks draws double-width blocks for the terminal
	StyleBlocks Style = iota
	// StyleGlyphs draws filled and empty squares
	StyleGlyphs
	// StyleDigits draws 1 and 0
	StyleDigits
)

func (st Style) cells() (live, dead string) {
	switch st {
	case StyleGlyphs:
		return liveGlyph, deadGlyph
	case StyleDigits:
		return liveDigit, deadDigit
	default:
		return gridPosBlock, gridPosEmpty
	}
}

// FormatGrid renders a snapshot as text, one line per row
func FormatGrid(s Snapshot, style Style) string {
	live, dead := style.cells()

	var b strings.Builder
	for r := range s.Rows() {
		for c := range s.Cols() {
			if s.Alive(r, c) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(s Snapshot) {
	fmt.Fprint(r.out(), FormatGrid(s, StyleBlocks))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// FileRenderer appends every rendered generation to a log file
type FileRenderer struct {
	Path  string
	Style Style
}

// Reset removes the log file so a new run starts from an empty log
func (r *FileRenderer) Reset() error {
	if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "[FileRenderer.Reset] failed to remove file: %+v", r.Path)
	}
	return nil
}

// Append writes the grid followed by a blank line to the end of the log
func (r *FileRenderer) Append(s Snapshot) error {
	f, err := os.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "[FileRenderer.Append] failed to open file: %+v", r.Path)
	}
	defer f.Close()

	if _, err = fmt.Fprintln(f, FormatGrid(s, r.Style)); err != nil {
		return errors.Wrapf(err, "[FileRenderer.Append] failed to write file: %+v", r.Path)
	}
	return nil
}

// Open hands the log file to the operating system's default opener
func (r *FileRenderer) Open() error {
	name, args := openerCommand(runtime.GOOS, r.Path)
	if err := exec.Command(name, args...).Start(); err != nil {
		return errors.Wrapf(err, "[FileRenderer.Open] failed to run %s for file: %+v", name, r.Path)
	}
	return nil
}

func openerCommand(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}
