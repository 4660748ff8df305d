// Package x11 answers active-window and window-name queries over the
// X protocol directly, via EWMH. The integration tests use it as an
// independent check of what libxdo reports.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// ActiveWindow returns the window the window manager reports as
// active (_NET_ACTIVE_WINDOW).
func (c *Connection) ActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// WindowName returns the window's name, preferring _NET_WM_NAME and
// falling back to the ICCCM WM_NAME property.
func (c *Connection) WindowName(windowID xproto.Window) (string, error) {
	name, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil && name != "" {
		return name, nil
	}

	return icccm.WmNameGet(c.XUtil, windowID)
}
