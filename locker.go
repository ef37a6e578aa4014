package blurlock

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultLocker is the screen locker started when none is configured.
const DefaultLocker = "i3lock"

// Locker runs a screen locker that reads its background image as raw RGB
// data from standard input.
type Locker struct {
	Command string
	// Args are passed to the locker after the image arguments, untouched.
	Args []string
	// Wait makes Lock wait for the locker to exit and report its status.
	Wait bool
}

// CommandLine returns the arguments telling the locker to read a raw
// g.Width x g.Height RGB image from stdin, followed by the extra args.
func (l *Locker) CommandLine(g Geometry) []string {
	args := []string{
		"-i", "/dev/stdin",
		"--raw", fmt.Sprintf("%dx%d:rgb", g.Width, g.Height),
	}
	return append(args, l.Args...)
}

// Lock starts the locker and writes img to its standard input in one go.
// The input is closed on every path, so the locker never blocks waiting for
// more data.
func (l *Locker) Lock(img *RGB) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrLocker, err)
	}
	name := l.Command
	if name == "" {
		name = DefaultLocker
	}

	cmd := exec.Command(name, l.CommandLine(Geometry{Width: img.Width, Height: img.Height})...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLocker, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("%w: %v", ErrLocker, err)
	}

	closed := false
	defer func() {
		if !closed {
			stdin.Close()
		}
	}()

	if _, err := stdin.Write(img.Pix); err != nil {
		return fmt.Errorf("%w: writing image data to %s: %v", ErrLocker, name, err)
	}
	closed = true
	if err := stdin.Close(); err != nil {
		return fmt.Errorf("%w: closing input of %s: %v", ErrLocker, name, err)
	}

	if l.Wait {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrLocker, name, err)
		}
	}
	return nil
}
