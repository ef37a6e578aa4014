package blurlock

import (
	"encoding/binary"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// allPlanes requests every bit plane of the drawable.
const allPlanes = ^uint32(0)

// Geometry is the size of the screen in pixels.
type Geometry struct {
	Width  int
	Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// Display is a connection to an X server and the root window of its
// default screen.
type Display struct {
	conn   *xgb.Conn
	setup  *xproto.SetupInfo
	screen *xproto.ScreenInfo
}

// OpenDisplay connects to the named X display. An empty name falls back to
// the DISPLAY environment variable.
func OpenDisplay(name string) (*Display, error) {
	conn, err := xgb.NewConnDisplay(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplay, err)
	}
	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) == 0 {
		conn.Close()
		return nil, fmt.Errorf("%w: no screens available", ErrDisplay)
	}
	return &Display{
		conn:   conn,
		setup:  setup,
		screen: setup.DefaultScreen(conn),
	}, nil
}

// Geometry queries the dimensions of the root window.
func (d *Display) Geometry() (Geometry, error) {
	geom, err := xproto.GetGeometry(d.conn, xproto.Drawable(d.screen.Root)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: root window geometry: %v", ErrDisplay, err)
	}
	return Geometry{Width: int(geom.Width), Height: int(geom.Height)}, nil
}

// Capture grabs the root window area described by g, as returned by
// Geometry, and decodes it into an RGB buffer.
func (d *Display) Capture(g Geometry) (*RGB, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid screen size %s", ErrCapture, g)
	}
	reply, err := xproto.GetImage(d.conn, xproto.ImageFormatZPixmap, xproto.Drawable(d.screen.Root),
		0, 0, uint16(g.Width), uint16(g.Height), allPlanes).Reply()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	if reply == nil || len(reply.Data) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrCapture)
	}

	f, err := d.pixelFormat(reply.Depth, reply.Visual)
	if err != nil {
		return nil, err
	}
	f.Width, f.Height = g.Width, g.Height
	return DecodeZPixmap(reply.Data, f)
}

// pixelFormat resolves the channel masks of the visual and the pixmap
// layout of the depth an image was delivered in.
func (d *Display) pixelFormat(depth byte, visual xproto.Visualid) (PixelFormat, error) {
	var f PixelFormat

	if visual == 0 {
		visual = d.screen.RootVisual
	}
	vi := d.visualInfo(visual)
	if vi == nil {
		return f, fmt.Errorf("%w: unknown visual 0x%x", ErrCapture, visual)
	}
	f.Masks = ChannelMasks{
		Red:   vi.RedMask,
		Green: vi.GreenMask,
		Blue:  vi.BlueMask,
	}

	for _, pf := range d.setup.PixmapFormats {
		if pf.Depth == depth {
			f.BitsPerPixel = int(pf.BitsPerPixel)
			f.ScanlinePad = int(pf.ScanlinePad)
			break
		}
	}
	if f.BitsPerPixel == 0 {
		return f, fmt.Errorf("%w: no pixmap format for depth %d", ErrCapture, depth)
	}
	if depth == 32 {
		f.Masks.Alpha = ^(f.Masks.Red | f.Masks.Green | f.Masks.Blue)
	}

	f.ByteOrder = binary.LittleEndian
	if d.setup.ImageByteOrder == xproto.ImageOrderMSBFirst {
		f.ByteOrder = binary.BigEndian
	}
	return f, nil
}

func (d *Display) visualInfo(id xproto.Visualid) *xproto.VisualInfo {
	for _, depth := range d.screen.AllowedDepths {
		for i := range depth.Visuals {
			if depth.Visuals[i].VisualId == id {
				return &depth.Visuals[i]
			}
		}
	}
	return nil
}

// Close shuts down the connection to the X server.
func (d *Display) Close() {
	if d.conn != nil {
		d.conn.Close()
	}
}
