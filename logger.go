package winepaint

import (
	"log/slog"
	"sync/atomic"
)

// silent is the logger in effect until SetLogger installs one. Its handler
// reports every level disabled, so stage timings and attributes are never
// formatted on the default path.
var silent = slog.New(slog.DiscardHandler)

// current is read once per render and per recovered input problem.
var current atomic.Pointer[slog.Logger]

// SetLogger routes the renderer's diagnostics to l. Renders already in
// flight keep the logger they started with. Pass nil to go silent again.
//
// winepaint never logs at Error: failures come back as errors. It uses
//   - [slog.LevelDebug] for the resolved family, per-stage timings and the
//     render summary (rings, marks, blur radius, sugar bar);
//   - [slog.LevelWarn] for inputs that were replaced by defaults and for
//     label fonts that could not be used.
//
// The label font loader in internal/label logs through the same logger.
//
//	winepaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}
