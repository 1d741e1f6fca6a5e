package maze

// Components finds every contiguous region of passable cells under
// orthogonal connectivity. Each component lists cell ids in discovery order;
// components are ordered by the id of their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, g.Size())
	var comps [][]int

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			c := g.cells[x][y]
			if !c.Passable || seen[c.ID] {
				continue
			}
			comps = append(comps, g.flood(c, seen))
		}
	}
	return comps
}

// Reachable reports whether the end cell lies in the same passable region as
// the start cell. Generation never checks this; callers that want solvable
// mazes can regenerate until it holds.
func (g *Grid) Reachable() bool {
	seen := make([]bool, g.Size())
	end := g.End().ID
	for _, id := range g.flood(g.Start(), seen) {
		if id == end {
			return true
		}
	}
	return false
}

// flood collects the region containing from, marking seen as it goes.
func (g *Grid) flood(from Cell, seen []bool) []int {
	queue := []Cell{from}
	seen[from.ID] = true
	var comp []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u.ID)
		for _, v := range g.Neighbors(u) {
			if !seen[v.ID] {
				seen[v.ID] = true
				queue = append(queue, v)
			}
		}
	}
	return comp
}
