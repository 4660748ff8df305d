package xdo

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger receives a debug trace of every native call. It discards
// everything by default; point it somewhere (or swap in your own) to
// watch the traffic:
//
//	xdo.Logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
var Logger = log.New(io.Discard)
