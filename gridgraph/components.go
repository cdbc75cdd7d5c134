// SPDX-License-Identifier: MIT
package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// according to gg.Conn connectivity; under Conn8 cells touching at a corner
// belong to one component.
// Components are discovered in row-major order of their first cell; each
// lists its cells in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			root := Cell{x, y}
			if !gg.Passable(root) || seen[gg.index(x, y)] {
				continue
			}
			seen[gg.index(x, y)] = true
			queue := []Cell{root}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range gg.neighborOffsets {
					v := Cell{u.X + d[0], u.Y + d[1]}
					if !gg.Passable(v) {
						continue
					}
					vi := gg.index(v.X, v.Y)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
