// SPDX-License-Identifier: MIT
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a text grid, one row per line:
//
//	'#'        wall (value 0)
//	'.'        open ground (value 1)
//	'1'..'9'   terrain with that entry cost
//
// Blank lines are skipped. The remaining rows must share one width.
func Parse(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var values [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == '#':
				row = append(row, 0)
			case ch == '.':
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrBadCell, ch, line, col+1)
			}
		}
		values = append(values, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}
	return NewGridGraph(values, opts)
}

// Render draws the grid in Parse's notation with the cells of path marked
// '*'. Values outside 0..9 are drawn as '?'.
func (gg *GridGraph) Render(path []Cell) string {
	onPath := make(map[Cell]struct{}, len(path))
	for _, c := range path {
		onPath[c] = struct{}{}
	}
	var b strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if _, ok := onPath[Cell{x, y}]; ok {
				b.WriteByte('*')
				continue
			}
			switch v := gg.CellValues[y][x]; {
			case v == 0:
				b.WriteByte('#')
			case v == 1:
				b.WriteByte('.')
			case v > 1 && v <= 9:
				b.WriteByte(byte('0' + v))
			default:
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
