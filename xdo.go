package xdo

import (
	"runtime"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
)

// Xdo wraps an instance of the libxdo library. It owns the native
// instance pointer and must be released with Close; a runtime cleanup
// frees the instance if the handle is collected without one.
//
// libxdo is not documented as thread-safe. Serialize access to a
// single handle, or open one handle per goroutine.
type Xdo struct {
	ptr     unsafe.Pointer
	lib     nativeLib
	cleanup runtime.Cleanup
}

// New opens a connection to the default display. It fails when the
// native constructor returns no instance.
func New() (*Xdo, error) {
	return newXdo(sysLib{})
}

func newXdo(lib nativeLib) (*Xdo, error) {
	ptr := lib.new(nil)
	if ptr == nil {
		return nil, &OpError{Op: "xdo_new"}
	}
	Logger.Debug("xdo_new", "ptr", ptr)
	x := &Xdo{ptr: ptr, lib: lib}
	x.cleanup = runtime.AddCleanup(x, lib.free, ptr)
	return x, nil
}

// Close releases the native instance. Calling Close more than once is
// a no-op. Every Window derived from the handle becomes invalid.
func (x *Xdo) Close() {
	if x.ptr == nil {
		return
	}
	x.cleanup.Stop()
	x.lib.free(x.ptr)
	x.ptr = nil
	Logger.Debug("xdo_free")
}

// handle returns the instance pointer, guarding against use after
// Close.
func (x *Xdo) handle() unsafe.Pointer {
	if x.ptr == nil {
		panic("xdo: use of closed Xdo handle")
	}
	return x.ptr
}

// ActiveWindow returns a reference to the window currently holding
// input focus.
func (x *Xdo) ActiveWindow() (Window, error) {
	id, ret := x.lib.getActiveWindow(x.handle())
	if err := checkStatus(ret, "get_active_window"); err != nil {
		return Window{}, err
	}
	Logger.Debug("get_active_window", "window", id)
	return Window{id: id, xdo: x}, nil
}

// Window returns a reference to the window named by id. The id is
// passed through to libxdo unvalidated.
func (x *Xdo) Window(id xproto.Window) Window {
	return Window{id: id, xdo: x}
}

// ActiveModifiers returns a snapshot of the currently pressed
// modifier keys. The snapshot owns a native-allocated array and must
// be released with its Close.
func (x *Xdo) ActiveModifiers() (*Modifiers, error) {
	arr, n, ret := x.lib.getActiveModifiers(x.handle())
	if err := checkStatus(ret, "get_active_modifiers"); err != nil {
		return nil, err
	}
	Logger.Debug("get_active_modifiers", "count", n)
	return newModifiers(x.lib, arr, n), nil
}
