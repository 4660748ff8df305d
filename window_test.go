package xdo

import (
	"math"
	"testing"
	"time"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandle(t *testing.T, lib *fakeLib) *Xdo {
	t.Helper()
	x, err := newXdo(lib)
	require.NoError(t, err)
	t.Cleanup(x.Close)
	return x
}

func TestWindowName(t *testing.T) {
	lib := &fakeLib{nameBuf: []byte("xterm\x00")}
	x := newTestHandle(t, lib)

	name, err := x.Window(7).Name()
	require.NoError(t, err)
	assert.Equal(t, "xterm", name)

	require.Len(t, lib.xFreed, 1)
	assert.Equal(t, unsafe.Pointer(&lib.nameBuf[0]), lib.xFreed[0],
		"the native buffer must be released with XFree")
}

func TestWindowName_InvalidUTF8(t *testing.T) {
	lib := &fakeLib{nameBuf: []byte{0xff, 0xfe, 0x00}}
	x := newTestHandle(t, lib)

	_, err := x.Window(7).Name()
	var utf8Err *UTF8Error
	require.ErrorAs(t, err, &utf8Err)

	// The buffer is freed even when decoding fails.
	require.Len(t, lib.xFreed, 1)
	assert.Equal(t, unsafe.Pointer(&lib.nameBuf[0]), lib.xFreed[0])
}

func TestWindowName_Failure(t *testing.T) {
	lib := &fakeLib{nameRet: xdoError}
	x := newTestHandle(t, lib)

	_, err := x.Window(7).Name()
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "get_window_name", opErr.Op)
	assert.Empty(t, lib.xFreed)
}

func TestSendKeySequence(t *testing.T) {
	lib := &fakeLib{}
	x := newTestHandle(t, lib)

	err := x.Window(0x42).SendKeySequence("ctrl+shift+a", 0)
	require.NoError(t, err)

	require.Len(t, lib.sends, 1)
	assert.Equal(t, sendCall{
		op:  "send_keysequence",
		win: 0x42,
		seq: "ctrl+shift+a",
	}, lib.sends[0])
}

func TestSendKeySequence_NulByte(t *testing.T) {
	lib := &fakeLib{}
	x := newTestHandle(t, lib)

	err := x.Window(0x42).SendKeySequence("Ret\x00urn", 0)
	var nulErr *NulByteError
	require.ErrorAs(t, err, &nulErr)
	assert.Empty(t, lib.sends, "a sequence with an embedded NUL must never reach the native layer")
}

func TestSendKeySequence_Failure(t *testing.T) {
	lib := &fakeLib{sendRet: xdoError}
	x := newTestHandle(t, lib)

	err := x.Window(0x42).SendKeySequence("Return", 0)
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "send_keysequence", opErr.Op)
}

func TestSendKeySequence_DownUp(t *testing.T) {
	lib := &fakeLib{}
	x := newTestHandle(t, lib)
	win := x.Window(CurrentWindow)

	require.NoError(t, win.SendKeySequenceDown("shift", 0))
	require.NoError(t, win.SendKeySequenceUp("shift", 0))

	require.Len(t, lib.sends, 2)
	assert.Equal(t, "send_keysequence_down", lib.sends[0].op)
	assert.Equal(t, "send_keysequence_up", lib.sends[1].op)
	assert.Equal(t, CurrentWindow, lib.sends[0].win)
}

func TestSendKeySequence_DelayConversion(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		want  uint32
	}{
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
		{"sub-microsecond rounds down", 1500 * time.Nanosecond, 1},
		{"seconds plus nanoseconds", 2*time.Second + 500000*time.Nanosecond, 2_000_500},
		{"clamped at the 32-bit ceiling", time.Duration(math.MaxInt64), math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := &fakeLib{}
			x := newTestHandle(t, lib)

			require.NoError(t, x.Window(1).SendKeySequence("Return", tt.delay))
			require.Len(t, lib.sends, 1)
			assert.Equal(t, tt.want, lib.sends[0].micros)
		})
	}
}

func TestSetAndClearModifiers(t *testing.T) {
	lib := &fakeLib{modsBuf: make([]byte, 32), modsN: 3}
	x := newTestHandle(t, lib)

	mods, err := x.ActiveModifiers()
	require.NoError(t, err)
	defer mods.Close()

	win := x.Window(0x42)
	require.NoError(t, win.SetModifiers(mods))
	require.NoError(t, win.ClearModifiers(mods))

	want := modCall{win: 0x42, ptr: unsafe.Pointer(&lib.modsBuf[0]), n: 3}
	require.Len(t, lib.setCalls, 1)
	assert.Equal(t, want, lib.setCalls[0])
	require.Len(t, lib.clearCalls, 1)
	assert.Equal(t, want, lib.clearCalls[0])

	// The snapshot is read, not consumed.
	assert.Equal(t, 3, mods.Len())
	assert.Empty(t, lib.cFreed)
}

func TestSetModifiers_EmptySnapshot(t *testing.T) {
	lib := &fakeLib{}
	x := newTestHandle(t, lib)

	mods, err := x.ActiveModifiers()
	require.NoError(t, err)

	require.NoError(t, x.Window(1).SetModifiers(mods))
	require.Len(t, lib.setCalls, 1)
	assert.Equal(t, modCall{win: 1, ptr: nil, n: 0}, lib.setCalls[0])
}

func TestSetModifiers_Failure(t *testing.T) {
	lib := &fakeLib{modOpRet: xdoError}
	x := newTestHandle(t, lib)

	mods, err := x.ActiveModifiers()
	require.NoError(t, err)

	err = x.Window(1).SetModifiers(mods)
	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "set_active_modifiers", opErr.Op)

	err = x.Window(1).ClearModifiers(mods)
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "clear_active_modifiers", opErr.Op)
}

func TestWindowString(t *testing.T) {
	x := newTestHandle(t, &fakeLib{})
	assert.Equal(t, "Window(0x4200007)", x.Window(0x4200007).String())
	assert.Equal(t, "Window(0x0)", x.Window(CurrentWindow).String())
}

func TestWindowID(t *testing.T) {
	x := newTestHandle(t, &fakeLib{})
	assert.Equal(t, xproto.Window(0xdeadbeef), x.Window(0xdeadbeef).ID())
}
