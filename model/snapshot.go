package model

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// Snapshot is an immutable copy of a grid captured at one point in time.
// The zero value is an empty snapshot that equals only other empty snapshots.
type Snapshot struct {
	rows  int
	cols  int
	cells []byte // row-major, 1 for alive
	live  int
	hash  [md5.Size]byte
}

func newSnapshot(rows, cols int, alive func(r, c int) bool) Snapshot {
	s := Snapshot{rows: rows, cols: cols, cells: make([]byte, rows*cols)}
	for r := range rows {
		for c := range cols {
			if alive(r, c) {
				s.cells[r*cols+c] = 1
				s.live++
			}
		}
	}

	// Dimensions are part of the digest so that equal cell bytes with a
	// different shape never collide.
	h := md5.New()
	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(rows))
	binary.BigEndian.PutUint64(dims[8:], uint64(cols))
	h.Write(dims[:])
	h.Write(s.cells)
	copy(s.hash[:], h.Sum(nil))

	return s
}

// Rows returns the number of rows captured
func (s Snapshot) Rows() int {
	return s.rows
}

// Cols returns the number of columns captured
func (s Snapshot) Cols() int {
	return s.cols
}

// Alive reports the state of a cell; out-of-bounds cells read as dead
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col] == 1
}

// LiveCount returns the number of living cells
func (s Snapshot) LiveCount() int {
	return s.live
}

// Hash returns the hex digest identifying the snapshot's shape and contents
func (s Snapshot) Hash() string {
	return fmt.Sprintf("%x", s.hash)
}

// Equal reports whether both snapshots have the same dimensions and the same
// state at every position.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.rows != o.rows || s.cols != o.cols || s.hash != o.hash {
		return false
	}
	return bytes.Equal(s.cells, o.cells)
}

// Matrix returns a fresh copy of the cells as a row-major matrix
func (s Snapshot) Matrix() [][]bool {
	m := make([][]bool, s.rows)
	for r := range m {
		m[r] = make([]bool, s.cols)
		for c := range m[r] {
			m[r][c] = s.cells[r*s.cols+c] == 1
		}
	}
	return m
}

// Grid returns a mutable grid holding a copy of the snapshot
func (s Snapshot) Grid() *Grid {
	g := NewGrid(s.rows, s.cols)
	for r := range s.rows {
		for c := range s.cols {
			g.cells[r][c] = s.cells[r*s.cols+c] == 1
		}
	}
	return g
}
