package htree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(depth int, center Point, length float32) *Recorder {
	rec := &Recorder{}
	NewRenderer(depth).Draw(rec, center, length)
	return rec
}

func TestDrawDepthOne(t *testing.T) {
	pal := DefaultPalette()
	rec := record(1, Point{100, 100}, 80)

	require.Len(t, rec.Ops, 4)
	assert.Equal(t, Op{Kind: OpLine, From: Point{60, 100}, To: Point{100, 100}, Width: 4, Color: pal.Near}, rec.Ops[0])
	assert.Equal(t, Op{Kind: OpLine, From: Point{100, 100}, To: Point{140, 100}, Width: 4, Color: pal.Far}, rec.Ops[1])
	assert.Equal(t, Op{Kind: OpCircle, From: Point{100, 100}, Width: 4, Color: pal.Marker}, rec.Ops[2])
	assert.Equal(t, Op{Kind: OpCircle, From: Point{100, 100}, Width: 2, Color: pal.Pip}, rec.Ops[3])
}

func TestDrawDepthTwo(t *testing.T) {
	rec := record(2, Point{100, 100}, 80)

	require.Len(t, rec.Ops, 12)
	assert.Equal(t, Stats{Branches: 3, Lines: 6, Circles: 6}, rec.Stats())

	half := 80 * invSqrt2 / 2
	left := rec.Ops[2]
	assert.Equal(t, OpLine, left.Kind)
	assert.Equal(t, float32(60), left.From.X)
	assert.InDelta(t, 100-half, left.From.Y, 1e-4)
	assert.Equal(t, Point{60, 100}, left.To)
	assert.Equal(t, float32(3.75), left.Width)

	right := rec.Ops[6]
	assert.Equal(t, Point{140, 100}, right.To)
	assert.InDelta(t, 100-half, right.From.Y, 1e-4)

	// Root markers come last, after both children.
	assert.Equal(t, Op{Kind: OpCircle, From: Point{100, 100}, Width: 4, Color: DefaultPalette().Marker}, rec.Ops[10])
	assert.Equal(t, OpCircle, rec.Ops[11].Kind)
	assert.Equal(t, float32(2), rec.Ops[11].Width)
}

func TestDrawVerticalChildrenAreVertical(t *testing.T) {
	rec := record(2, Point{0, 0}, 10)
	for _, op := range rec.Ops[2:4] {
		assert.Equal(t, op.From.X, op.To.X)
	}
	for _, op := range rec.Ops[6:8] {
		assert.Equal(t, op.From.X, op.To.X)
	}
}

func TestDrawCountsMatchForAllDepths(t *testing.T) {
	for depth := MinDepth; depth <= MaxDepth; depth++ {
		rec := record(depth, Point{512, 512}, 700)
		want := Count(depth)
		assert.Equal(t, want, rec.Stats(), "depth %d", depth)
		assert.Equal(t, 1<<depth-1, want.Branches, "depth %d", depth)
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	a := record(9, Point{320, 240}, 339)
	b := record(9, Point{320, 240}, 339)
	assert.Equal(t, a.Ops, b.Ops)
}

func TestDrawClampsDepth(t *testing.T) {
	assert.Len(t, record(0, Point{}, 10).Ops, 4)
	assert.Len(t, record(-5, Point{}, 10).Ops, 4)

	r := Renderer{Depth: 40, Palette: DefaultPalette()}
	rec := &Recorder{}
	r.Draw(rec, Point{}, 10)
	assert.Equal(t, Count(MaxDepth), rec.Stats())
}

func TestBaseCaseEmitsNothing(t *testing.T) {
	rec := &Recorder{}
	b := branch{p: rec, depth: 3, palette: DefaultPalette()}
	b.horizontal(Point{}, 10, 3)
	b.vertical(Point{}, 10, 3)
	assert.Empty(t, rec.Ops)
}

func TestThickness(t *testing.T) {
	assert.Equal(t, float32(4), Thickness(0))
	assert.Equal(t, float32(3.75), Thickness(1))
	assert.Equal(t, float32(1), Thickness(12))
	assert.Equal(t, float32(1), Thickness(15))

	prev := Thickness(0)
	for level := 1; level < MaxDepth; level++ {
		w := Thickness(level)
		assert.LessOrEqual(t, w, prev)
		assert.GreaterOrEqual(t, w, float32(1))
		prev = w
	}
}

func TestLinesThinWithLevel(t *testing.T) {
	rec := record(4, Point{200, 200}, 200)
	lengths := map[float32]float32{}
	for _, op := range rec.Ops {
		if op.Kind != OpLine {
			continue
		}
		dx := float64(op.To.X - op.From.X)
		dy := float64(op.To.Y - op.From.Y)
		lengths[op.Width] = float32(math.Hypot(dx, dy))
	}
	for level := 0; level < 4; level++ {
		assert.InDelta(t, SegmentLength(200, level)/2, lengths[Thickness(level)], 1e-3, "level %d", level)
	}
}

func TestSegmentLength(t *testing.T) {
	assert.Equal(t, float32(100), SegmentLength(100, 0))
	assert.InDelta(t, 100/math.Sqrt2, SegmentLength(100, 1), 1e-4)
	assert.InDelta(t, 50, SegmentLength(100, 2), 1e-4)
	assert.InDelta(t, 100*math.Pow(1/math.Sqrt2, 7), SegmentLength(100, 7), 1e-4)
}

func TestFrame(t *testing.T) {
	c, l := Frame(800, 600)
	assert.Equal(t, Point{400, 300}, c)
	assert.InDelta(t, 600/math.Sqrt2, l, 1e-3)

	_, l = Frame(300, 900)
	assert.InDelta(t, 300/math.Sqrt2, l, 1e-3)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0))
	assert.Equal(t, 1, Clamp(1))
	assert.Equal(t, 7, Clamp(7))
	assert.Equal(t, 16, Clamp(16))
	assert.Equal(t, 16, Clamp(17))
}

func TestRecorderReplay(t *testing.T) {
	src := record(3, Point{50, 50}, 40)
	dst := &Recorder{}
	src.Replay(dst)
	assert.Equal(t, src.Ops, dst.Ops)

	dst.Reset()
	assert.Empty(t, dst.Ops)
}
