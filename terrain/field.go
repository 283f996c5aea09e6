// Package terrain is a reference collision mover: a sparse grid of raised columns
// over a flat floor, and a Body that slides across it and reports ground contact.
package terrain

import (
	"iter"
	"math"

	"github.com/kamstrup/intmap"
)

// Cell addresses one grid column.
type Cell struct {
	X, Z int32
}

func (c Cell) key() uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Z))
}

func cellFromKey(k uint64) Cell {
	return Cell{X: int32(uint32(k >> 32)), Z: int32(uint32(k))}
}

// Field stores column heights keyed by cell. Cells without a column sit at the floor height.
type Field struct {
	cellSize float64
	floor    float64
	columns  *intmap.Map[uint64, float64]
}

// NewField creates an empty field. It panics if cellSize is not positive.
func NewField(cellSize, floor float64) *Field {
	if !(cellSize > 0) {
		panic("terrain: cell size must be positive")
	}
	return &Field{
		cellSize: cellSize,
		floor:    floor,
		columns:  intmap.New[uint64, float64](256),
	}
}

func (f *Field) CellSize() float64 {
	return f.cellSize
}

func (f *Field) Floor() float64 {
	return f.floor
}

// CellAt returns the cell containing the world position (x, z).
func (f *Field) CellAt(x, z float64) Cell {
	return Cell{
		X: int32(math.Floor(x / f.cellSize)),
		Z: int32(math.Floor(z / f.cellSize)),
	}
}

// SetColumn raises (or lowers) a cell to height. Setting a cell to the floor height removes it.
func (f *Field) SetColumn(c Cell, height float64) {
	if height == f.floor {
		f.columns.Del(c.key())
		return
	}
	f.columns.Put(c.key(), height)
}

// Fill sets every cell in the inclusive rectangle [min, max] to height.
func (f *Field) Fill(min, max Cell, height float64) {
	for x := min.X; x <= max.X; x++ {
		for z := min.Z; z <= max.Z; z++ {
			f.SetColumn(Cell{x, z}, height)
		}
	}
}

// Height returns the surface height of a cell.
func (f *Field) Height(c Cell) float64 {
	if h, ok := f.columns.Get(c.key()); ok {
		return h
	}
	return f.floor
}

// HeightUnder returns the highest surface under the square footprint of half-width
// radius centered on (x, z).
func (f *Field) HeightUnder(x, z, radius float64) float64 {
	lo := f.CellAt(x-radius, z-radius)
	hi := f.CellAt(x+radius, z+radius)

	h := math.Inf(-1)
	for cx := lo.X; cx <= hi.X; cx++ {
		for cz := lo.Z; cz <= hi.Z; cz++ {
			h = math.Max(h, f.Height(Cell{cx, cz}))
		}
	}
	return h
}

// Columns iterates over every raised or lowered cell.
func (f *Field) Columns() iter.Seq2[Cell, float64] {
	return func(yield func(Cell, float64) bool) {
		for k, h := range f.columns.All() {
			if !yield(cellFromKey(k), h) {
				return
			}
		}
	}
}

// Len returns the number of stored columns.
func (f *Field) Len() int {
	return f.columns.Len()
}
