package winepaint

import (
	"log/slog"
	"time"
)

// Frame is the state threaded through the stage list for one render.
// Every field is owned by the render call that built it.
type Frame struct {
	Record   AttributeRecord // clamped
	Family   Family          // resolved, never FamilyAuto
	Geometry *Geometry
	Canvas   *Canvas
	Rand     *RandomState
	Tuning   Tuning
	Stats    Stats
}

// NewFrame prepares a frame for a size x size render. The record is
// clamped and its family resolved; the canvas starts black.
func NewFrame(rec AttributeRecord, size int, seed uint64, tuning Tuning) *Frame {
	rec = rec.Clamp()
	fam := Classify(rec.BaseColor, rec.Family)
	return &Frame{
		Record:   rec,
		Family:   fam,
		Geometry: NewGeometry(size, tuning.DiskScale),
		Canvas:   NewCanvas(size),
		Rand:     NewRandomState(seed),
		Tuning:   tuning,
		Stats:    Stats{Family: fam},
	}
}

// Stats summarizes what a render drew.
type Stats struct {
	Family     Family
	Rings      []string // names of the rings drawn, in compositing order
	Dots       int      // ambient highlight dots placed
	Stars      int      // star-shaped sparkle marks
	Bubbles    int      // round bubble marks
	BlurRadius float64
	RimRepair  bool

	// Sugar bar; zero when no bar was appended.
	SugarBarWidth int
	SugarFill     float64
	SugarLabel    bool
}

// Marks returns the number of sparkle marks drawn.
func (s Stats) Marks() int {
	return s.Stars + s.Bubbles
}

// Stage is one step of the compositing pipeline. Stages read and write
// only the frame they are given.
type Stage struct {
	Name  string
	Apply func(*Frame)
}

// Stages returns the pipeline in execution order:
// base gradient, aroma rings, texture and sparkle, blur, rim repair,
// circular mask. The sugar bar is appended after encoding to 8-bit.
func Stages() []Stage {
	return []Stage{
		{Name: "base", Apply: applyBase},
		{Name: "rings", Apply: applyRings},
		{Name: "texture", Apply: applyTexture},
		{Name: "blur", Apply: applyBlur},
		{Name: "rim", Apply: applyRimRepair},
		{Name: "mask", Apply: applyMask},
	}
}

// Run applies stages to f in order.
func Run(f *Frame, stages []Stage) {
	log := Logger()
	for _, s := range stages {
		start := time.Now()
		s.Apply(f)
		log.Debug("winepaint: stage done",
			slog.String("stage", s.Name),
			slog.Int("size", f.Canvas.Size()),
			slog.Duration("elapsed", time.Since(start)))
	}
}
