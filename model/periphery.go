package model

// Growth records which sides of a grid were extended by ExpandPeriphery
type Growth struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether at least one side grew
func (gr Growth) Any() bool {
	return gr.Top || gr.Bottom || gr.Left || gr.Right
}

// ExpandPeriphery adds an all-dead row or column on every side whose edge
// holds a living cell, as long as that axis is still below its maximum.
// Sides are handled top, bottom, left, right, each re-evaluated against the
// already grown grid. The grid never shrinks.
func ExpandPeriphery(g *Grid, rowMax, colMax int) Growth {
	var gr Growth

	if g.rowAlive(0) && g.rows < rowMax {
		g.cells = append([][]bool{make([]bool, g.cols)}, g.cells...)
		g.rows++
		gr.Top = true
	}

	if g.rowAlive(g.rows-1) && g.rows < rowMax {
		g.cells = append(g.cells, make([]bool, g.cols))
		g.rows++
		gr.Bottom = true
	}

	if g.colAlive(0) && g.cols < colMax {
		for r := range g.rows {
			row := make([]bool, g.cols+1, g.cols+2)
			copy(row[1:], g.cells[r])
			g.cells[r] = row
		}
		g.cols++
		gr.Left = true
	}

	if g.colAlive(g.cols-1) && g.cols < colMax {
		for r := range g.rows {
			g.cells[r] = append(g.cells[r], false)
		}
		g.cols++
		gr.Right = true
	}

	return gr
}

func (g *Grid) rowAlive(row int) bool {
	for _, alive := range g.cells[row] {
		if alive {
			return true
		}
	}
	return false
}

func (g *Grid) colAlive(col int) bool {
	for r := range g.rows {
		if g.cells[r][col] {
			return true
		}
	}
	return false
}
