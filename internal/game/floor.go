package game

import "fmt"

// Floor is one platform segment. Left and Right are inclusive tile
// columns; Left > Right marks a row with no platform at all.
type Floor struct {
	Left  int
	Right int
}

// IsGap reports whether this row has no platform.
func (f Floor) IsGap() bool {
	return f.Left > f.Right
}

// Width returns the platform width in tiles, or 0 for a gap.
func (f Floor) Width() int {
	if f.IsGap() {
		return 0
	}
	return f.Right - f.Left + 1
}

// Row generation periods. Every wideFloorPeriod rows the tower has a
// guaranteed full-width rest platform; every floorPeriod rows it has a
// drifting platform; everything in between is a gap.
const (
	wideFloorPeriod = 250
	floorPeriod     = 5
)

// floorRing is an append-only log of generated floors over a fixed
// ring. Rows are identified by a monotonically increasing index and
// generated strictly in order; once the ring wraps, the oldest rows are
// overwritten. It is seeded so that consecutive reachable platforms
// stay within jump range: the platform origin performs a bounded
// random walk (step 5-9 tiles, wrapped) instead of being drawn
// uniformly over the field.
type floorRing struct {
	rows []Floor
	next int // index of the next row to generate
	fpos int // origin cursor of the platform random walk
	rng  *RNG
	cfg  Config
}

// newFloorRing creates the ring and pre-fills its whole capacity,
// starting a few rows below the initial visible field.
func newFloorRing(cfg Config, rng *RNG) *floorRing {
	r := &floorRing{
		rows: make([]Floor, cfg.FloorCap),
		next: -fieldExtra,
		fpos: int(rng.Range(0, uint32(cfg.FieldWidth-11))),
		rng:  rng,
		cfg:  cfg,
	}
	for i := 0; i < cfg.FloorCap; i++ {
		r.generate()
	}
	return r
}

// generate emits the floor for the next row. Platform positions are in
// tiles: the walls occupy columns 0 and FieldWidth-1, the interior is
// [1, FieldWidth-2]. The origin ranges [5, FieldWidth-6] and is encoded
// by fpos in [0, FieldWidth-11]; a platform extends 2-4 tiles to each
// side of its origin, for a total width of 5-9 tiles.
func (r *floorRing) generate() {
	n := r.next
	r.next++

	fl := &r.rows[mod(n, len(r.rows))]
	switch {
	case mod(n, wideFloorPeriod) == 0:
		fl.Left = 1
		fl.Right = r.cfg.FieldWidth - 2

	case mod(n, floorPeriod) == 0:
		sign := +1
		if r.rng.Bounded(2) == 0 {
			sign = -1
		}
		magnitude := int(r.rng.Range(5, 9))
		r.fpos = mod(r.fpos+sign*magnitude, r.cfg.FieldWidth-10)
		fl.Left = r.fpos + 5 - int(r.rng.Range(2, 4))
		fl.Right = r.fpos + 5 + int(r.rng.Range(2, 4))

	default:
		fl.Left = -10
		fl.Right = -20
	}
}

// At returns the floor for row n. Reading a row that was never
// generated, or that the ring has already overwritten, is a bug in the
// caller and panics.
func (r *floorRing) At(n int) Floor {
	if n >= r.next || n < r.next-len(r.rows) {
		panic(fmt.Sprintf("game: floor row %d outside generated window [%d, %d]",
			n, r.next-len(r.rows), r.next-1))
	}
	return r.rows[mod(n, len(r.rows))]
}

// mod is the mathematical remainder, always in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
