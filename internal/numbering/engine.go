// Package numbering derives seat labels from a zone's numbering configuration.
// Every function in this package is pure.
package numbering

import (
	"sort"
	"strconv"
)

// Cell addresses a seat by grid row and column.
type Cell struct {
	Row int
	Col int
}

// ComputeLabel returns the row and seat label of cell (r, c) in a rowsTotal x colsTotal grid.
func ComputeLabel(cfg Config, r, c, rowsTotal, colsTotal int) Label {
	cfg = cfg.Normalize()

	logicalRow := logicalIndex(r, rowsTotal, cfg.Vertical == VerticalTTB)
	logicalCol := logicalIndex(c, colsTotal, cfg.Direction == DirectionLTR)

	var k int
	if cfg.Mode == ModeColumn {
		minor := logicalRow
		if cfg.Snake && logicalCol%2 == 1 {
			minor = rowsTotal - 1 - logicalRow
		}
		k = minor
		if cfg.Continuous {
			k = logicalCol*rowsTotal + minor
		}
	} else {
		minor := logicalCol
		if cfg.Snake && logicalRow%2 == 1 {
			minor = colsTotal - 1 - logicalCol
		}
		k = minor
		if cfg.Continuous {
			k = logicalRow*colsTotal + minor
		}
	}

	return Label{
		Row:  RowLabel(cfg.RowLabelType, logicalRow),
		Seat: strconv.Itoa(cfg.StartNumber + k),
	}
}

// Grid labels every cell of a rows x cols grid, indexed [row][col].
func Grid(cfg Config, rows, cols int) [][]Label {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	out := make([][]Label, rows)
	for r := 0; r < rows; r++ {
		out[r] = make([]Label, cols)
		for c := 0; c < cols; c++ {
			out[r][c] = ComputeLabel(cfg, r, c, rows, cols)
		}
	}
	return out
}

// Relabel labels an arbitrary set of cells as if only those cells had been generated.
// Rows and columns without any cell collapse, and every major line is numbered densely,
// so on a complete grid the result equals ComputeLabel for each cell.
func Relabel(cfg Config, cells []Cell) map[Cell]Label {
	cfg = cfg.Normalize()
	out := make(map[Cell]Label, len(cells))
	if len(cells) == 0 {
		return out
	}

	rowRank := rankOf(cells, func(c Cell) int { return c.Row })
	colRank := rankOf(cells, func(c Cell) int { return c.Col })
	rowsTotal, colsTotal := len(rowRank), len(colRank)

	type placed struct {
		cell  Cell
		minor int
	}
	lines := make(map[int][]placed)
	logicalRows := make(map[Cell]int, len(cells))

	for _, cell := range cells {
		if _, seen := logicalRows[cell]; seen {
			continue
		}
		lr := logicalIndex(rowRank[cell.Row], rowsTotal, cfg.Vertical == VerticalTTB)
		lc := logicalIndex(colRank[cell.Col], colsTotal, cfg.Direction == DirectionLTR)
		logicalRows[cell] = lr

		major, minor := lr, lc
		if cfg.Mode == ModeColumn {
			major, minor = lc, lr
		}
		lines[major] = append(lines[major], placed{cell: cell, minor: minor})
	}

	majors := make([]int, 0, len(lines))
	for m := range lines {
		majors = append(majors, m)
	}
	sort.Ints(majors)

	offset := 0
	for lineIndex, major := range majors {
		line := lines[major]
		sort.Slice(line, func(i, j int) bool { return line[i].minor < line[j].minor })

		n := len(line)
		for pos, p := range line {
			k := pos
			if cfg.Snake && lineIndex%2 == 1 {
				k = n - 1 - pos
			}
			if cfg.Continuous {
				k += offset
			}
			out[p.cell] = Label{
				Row:  RowLabel(cfg.RowLabelType, logicalRows[p.cell]),
				Seat: strconv.Itoa(cfg.StartNumber + k),
			}
		}
		offset += n
	}

	return out
}

func logicalIndex(i, total int, natural bool) int {
	if natural {
		return i
	}
	return total - 1 - i
}

// rankOf maps each distinct value of key to its position in ascending order.
func rankOf(cells []Cell, key func(Cell) int) map[int]int {
	seen := make(map[int]struct{})
	var values []int
	for _, c := range cells {
		v := key(c)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Ints(values)

	ranks := make(map[int]int, len(values))
	for i, v := range values {
		ranks[v] = i
	}
	return ranks
}
