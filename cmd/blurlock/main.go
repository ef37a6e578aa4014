package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/esimov/blurlock"
	"github.com/esimov/blurlock/utils"
	"github.com/fogleman/gg"
)

const helpBanner = `
blurlock: lock the screen behind a blurred copy of itself.

Usage: blurlock [flags] [--] [locker args...]

Arguments after the flags are passed to the locker untouched.

`

var (
	// Flags
	imagePath   = flag.String("image", "", "Use this image (path or URL) instead of capturing the screen")
	displayName = flag.String("display", "", "X11 display to capture (defaults to $DISPLAY)")
	lockerCmd   = flag.String("locker", blurlock.DefaultLocker, "Screen locker reading a raw RGB image from stdin")
	scale       = flag.Int("scale", blurlock.DefaultScale, "Downscale factor applied before blurring")
	blurRadius  = flag.Int("blur", blurlock.DefaultBlurRadius, "Blur radius at the downscaled size")
	dim         = flag.Float64("dim", 0, "Darken the backdrop by this amount (0-1)")
	noise       = flag.Int("noise", 0, "Noise factor")
	wait        = flag.Bool("wait", false, "Wait for the locker to exit")
	output      = flag.String("out", "", "Save the backdrop as PNG to this path instead of locking")
	verbose     = flag.Bool("v", false, "Print the duration of every stage")
)

// screen is the part of an X display the program needs.
type screen interface {
	Geometry() (blurlock.Geometry, error)
	Capture(g blurlock.Geometry) (*blurlock.RGB, error)
	Close()
}

var openDisplay = func(name string) (screen, error) {
	d, err := blurlock.OpenDisplay(name)
	if err != nil {
		return nil, err
	}
	return d, nil
}

type options struct {
	image      string
	display    string
	locker     string
	lockerArgs []string
	wait       bool
	output     string
	verbose    bool
	proc       blurlock.Processor
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, helpBanner)
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := options{
		image:      *imagePath,
		display:    *displayName,
		locker:     *lockerCmd,
		lockerArgs: flag.Args(),
		wait:       *wait,
		output:     *output,
		verbose:    *verbose,
		proc: blurlock.Processor{
			Scale:      *scale,
			BlurRadius: *blurRadius,
			Dim:        *dim,
			Noise:      *noise,
		},
	}

	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%sblurlock: %v%s\n", utils.ErrorColor, err, utils.DefaultColor)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.proc.Scale < 1 {
		return fmt.Errorf("invalid scale factor %d", opts.proc.Scale)
	}
	if opts.proc.BlurRadius < 0 {
		return fmt.Errorf("invalid blur radius %d", opts.proc.BlurRadius)
	}

	stage := stageTimer(opts.verbose)

	disp, err := openDisplay(opts.display)
	if err != nil {
		return err
	}
	defer disp.Close()

	geom, err := disp.Geometry()
	if err != nil {
		return err
	}
	stage("connected to display, screen is %s", geom)

	var src image.Image
	if opts.image != "" {
		fs := &blurlock.FileSource{Path: opts.image}
		if src, err = fs.Image(); err != nil {
			return err
		}
		stage("decoded %s", opts.image)
	} else {
		if src, err = disp.Capture(geom); err != nil {
			return err
		}
		stage("captured screen")
	}

	backdrop, err := opts.proc.Process(src, geom)
	if err != nil {
		return err
	}
	stage("blurred backdrop")

	if opts.output != "" {
		if err := gg.SavePNG(opts.output, backdrop); err != nil {
			return fmt.Errorf("unable to save backdrop: %w", err)
		}
		stage("saved %s", opts.output)
		fmt.Fprintf(os.Stderr, "Saved as: %s %s✓%s\n", opts.output, utils.SuccessColor, utils.DefaultColor)
		return nil
	}

	locker := &blurlock.Locker{
		Command: opts.locker,
		Args:    opts.lockerArgs,
		Wait:    opts.wait,
	}
	if err := locker.Lock(backdrop); err != nil {
		return err
	}
	stage("handed backdrop to %s", opts.locker)
	return nil
}

// stageTimer returns a function logging the time elapsed since its previous
// call. It does nothing unless enabled.
func stageTimer(enabled bool) func(format string, args ...interface{}) {
	last := time.Now()
	return func(format string, args ...interface{}) {
		if !enabled {
			return
		}
		now := time.Now()
		log.Printf("%s in %s%s%s", fmt.Sprintf(format, args...),
			utils.SuccessColor, utils.FormatTime(now.Sub(last)), utils.DefaultColor)
		last = now
	}
}
