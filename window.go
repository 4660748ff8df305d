package xdo

import (
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
)

// CurrentWindow is libxdo's CURRENTWINDOW sentinel. Operations given
// this identifier act on whichever window currently has focus.
const CurrentWindow xproto.Window = 0

// Window references a window on the display served by an Xdo handle.
// It holds no native resources of its own; the handle must outlive
// every Window derived from it.
type Window struct {
	id  xproto.Window
	xdo *Xdo
}

// ID returns the X11 window identifier.
func (w Window) ID() xproto.Window {
	return w.id
}

// String renders the window identifier only; the embedded handle is
// deliberately not printed.
func (w Window) String() string {
	return fmt.Sprintf("Window(%#x)", uint32(w.id))
}

// Name returns the window's name.
//
// libxdo hands back an Xlib-allocated buffer; it is released before
// Name returns, whether or not the contents decode as UTF-8.
func (w Window) Name() (string, error) {
	name, _, _, ret := w.xdo.lib.getWindowName(w.xdo.handle(), w.id)
	if err := checkStatus(ret, "get_window_name"); err != nil {
		return "", err
	}

	// Copy out, then free. The length and type outputs are ignored:
	// the buffer is NUL-terminated by contract.
	b := goBytes(name)
	w.xdo.lib.xFree(name)

	if err := checkUTF8(b); err != nil {
		return "", err
	}
	Logger.Debug("get_window_name", "window", w.id, "name", string(b))
	return string(b), nil
}

// SendKeySequence synthesizes the keystrokes named by seq (libxdo
// grammar, e.g. "Return" or "ctrl+shift+a") on the window, pausing
// delay between emitted events. A zero delay sends the events
// back to back.
//
// The delay is converted to microseconds before forwarding; delays
// beyond the 32-bit microsecond range are clamped to the maximum.
func (w Window) SendKeySequence(seq string, delay time.Duration) error {
	return w.sendKeys("send_keysequence", w.xdo.lib.sendKeysequence, seq, delay)
}

// SendKeySequenceDown presses and holds the keys named by seq. See
// SendKeySequence for the sequence grammar and delay conversion.
func (w Window) SendKeySequenceDown(seq string, delay time.Duration) error {
	return w.sendKeys("send_keysequence_down", w.xdo.lib.sendKeysequenceDown, seq, delay)
}

// SendKeySequenceUp releases the keys named by seq. See
// SendKeySequence for the sequence grammar and delay conversion.
func (w Window) SendKeySequenceUp(seq string, delay time.Duration) error {
	return w.sendKeys("send_keysequence_up", w.xdo.lib.sendKeysequenceUp, seq, delay)
}

type sendFunc func(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int

func (w Window) sendKeys(op string, send sendFunc, seq string, delay time.Duration) error {
	if err := checkNoNul(seq); err != nil {
		return err
	}
	micros := delayMicros(delay)
	// NUL-terminated copy for the C side.
	buf := append([]byte(seq), 0)
	Logger.Debug(op, "window", w.id, "sequence", seq, "delay_us", micros)
	return checkStatus(send(w.xdo.handle(), w.id, buf, micros), op)
}

// SetModifiers asks the X server to behave as if the modifiers in m
// were pressed. The snapshot is read, not consumed; an empty snapshot
// is forwarded as-is.
func (w Window) SetModifiers(m *Modifiers) error {
	ret := w.xdo.lib.setActiveModifiers(w.xdo.handle(), w.id, m.ptr, m.n)
	return checkStatus(ret, "set_active_modifiers")
}

// ClearModifiers asks the X server to behave as if the modifiers in m
// were released. The snapshot is read, not consumed; an empty
// snapshot is forwarded as-is.
func (w Window) ClearModifiers(m *Modifiers) error {
	ret := w.xdo.lib.clearActiveModifiers(w.xdo.handle(), w.id, m.ptr, m.n)
	return checkStatus(ret, "clear_active_modifiers")
}

// delayMicros converts d to libxdo's microsecond delay argument,
// saturating at the 32-bit ceiling. Non-positive durations map to
// zero.
func delayMicros(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	us := int64(d / time.Microsecond)
	if us > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(us)
}
