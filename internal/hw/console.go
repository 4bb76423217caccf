package hw

import (
	"fmt"
	"io"
	"os"
)

// ConsoleDisplay renders messages as truecolor ANSI lines on stdout. It is
// the default driver for development off-device.
type ConsoleDisplay struct {
	w io.Writer
}

func NewConsoleDisplay() *ConsoleDisplay {
	return &ConsoleDisplay{w: os.Stdout}
}

func (d *ConsoleDisplay) ShowMessage(text string, c RGB) error {
	_, err := fmt.Fprintf(d.w, "\033[38;2;%d;%d;%dm%s\033[0m\n", c.R, c.G, c.B, text)
	return err
}

func (d *ConsoleDisplay) Clear() error {
	_, err := fmt.Fprint(d.w, "\033[0m")
	return err
}
