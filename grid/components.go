package grid

// Components finds all 4-connected regions of Path cells.
// Components are returned in row-major order of their first cell; each
// component lists its cells in BFS discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, cell := range g.cells {
		if cell != Path || seen[i0] {
			continue
		}
		queue := []Coord{g.Coordinate(i0)}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi]) {
				vi := g.index(v.Row, v.Col)
				if g.cells[vi] != Path || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
