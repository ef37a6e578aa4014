/*
Package blurlock builds a blurred copy of the screen and hands it to a screen
locker as its background image.

The screen is captured through the X11 protocol (or an image file is loaded
instead), shrunk, box blurred at the reduced size, scaled back up to the full
screen size and written as raw RGB bytes to the standard input of the locker,
which is i3lock by default.

The package provides a command line utility. Check the supported flags by
typing:

	$ blurlock --help

Example producing a backdrop from an image file:

	package main

	import (
		"fmt"

		"github.com/esimov/blurlock"
	)

	func main() {
		src, err := (&blurlock.FileSource{Path: "wallpaper.jpg"}).Image()
		if err != nil {
			fmt.Printf("Error loading the image: %s", err.Error())
			return
		}

		p := blurlock.DefaultProcessor()
		backdrop, err := p.Process(src, blurlock.Geometry{Width: 1920, Height: 1080})
		if err != nil {
			fmt.Printf("Error processing the image: %s", err.Error())
			return
		}

		locker := &blurlock.Locker{Command: "i3lock"}
		if err := locker.Lock(backdrop); err != nil {
			fmt.Printf("Error starting the locker: %s", err.Error())
		}
	}
*/
package blurlock
