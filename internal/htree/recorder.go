package htree

import "image/color"

// OpKind identifies a recorded drawing command.
type OpKind int

const (
	// OpLine is a stroked segment from From to To.
	OpLine OpKind = iota
	// OpCircle is a filled disc centred on From.
	OpCircle
)

// Op is one recorded drawing command. Lines use From, To and Width;
// circles use From as the centre and Width as the radius.
type Op struct {
	Kind  OpKind
	From  Point
	To    Point
	Width float32
	Color color.Color
}

// Recorder is a Painter that keeps every command it receives.
type Recorder struct {
	Ops []Op
}

// Line records a line segment.
func (r *Recorder) Line(from, to Point, width float32, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Width: width, Color: c})
}

// Circle records a filled circle.
func (r *Recorder) Circle(center Point, radius float32, fill color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, From: center, Width: radius, Color: fill})
}

// Stats tallies the recorded commands. Branches is derived from line pairs.
func (r *Recorder) Stats() Stats {
	var s Stats
	for _, op := range r.Ops {
		switch op.Kind {
		case OpLine:
			s.Lines++
		case OpCircle:
			s.Circles++
		}
	}
	s.Branches = s.Lines / 2
	return s
}

// Replay sends the recorded commands to p in their original order.
func (r *Recorder) Replay(p Painter) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpLine:
			p.Line(op.From, op.To, op.Width, op.Color)
		case OpCircle:
			p.Circle(op.From, op.Width, op.Color)
		}
	}
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
