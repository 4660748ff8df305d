// Package xdo is a safe Go wrapper around a small subset of libxdo,
// the X11 automation library behind xdotool.
//
// An Xdo handle owns one libxdo instance. Windows are referenced
// through the Window type, which borrows the handle and owns nothing
// itself. The covered operations are querying the active window,
// reading a window's name, synthesizing key sequences, and saving and
// replaying modifier key state:
//
//	x, err := xdo.New()
//	if err != nil {
//		// no display, or libxdo refused the connection
//	}
//	defer x.Close()
//
//	win, err := x.ActiveWindow()
//	if err != nil {
//		// ...
//	}
//	err = win.SendKeySequence("ctrl+shift+t", 12*time.Millisecond)
//
// All calls are synchronous and block for as long as the underlying
// X round-trip takes. libxdo is not documented as thread-safe, so a
// single handle should not be shared between goroutines without
// external locking.
package xdo
