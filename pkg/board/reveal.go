package board

// Reveal uncovers cell i. A mine ends the game and exposes every mine.
// A cell with no adjacent mines starts a breadth-first flood fill that
// uncovers every neighbour of each zero cell it reaches and keeps expanding
// through the zero cells among them.
//
// Neighbours are uncovered whether or not they are mines; only the cell
// passed to Reveal can end the game.
func (b *Board) Reveal(i int) {
	if !b.InBounds(i) || b.gameOver {
		return
	}

	b.uncover(i)

	if b.mines[i] {
		b.gameOver = true
		b.won = false
		b.revealMines()
		return
	}

	if b.adjacency[i] != 0 {
		return
	}

	var expanded [Capacity]bool
	expanded[i] = true
	wave := []int{i}
	neighbors := make([]int, 0, 8)

	for len(wave) > 0 {
		var next []int
		for _, idx := range wave {
			neighbors = b.appendNeighbors(neighbors[:0], idx)
			for _, n := range neighbors {
				b.uncover(n)
				if !b.mines[n] && b.adjacency[n] == 0 && !expanded[n] {
					expanded[n] = true
					next = append(next, n)
				}
			}
		}
		wave = next
	}
}

// uncover marks a cell uncovered and drops any marker on it.
func (b *Board) uncover(i int) {
	b.uncovered[i] = true
	b.markers[i] = MarkerNone
}

func (b *Board) revealMines() {
	for i := 0; i < b.Size(); i++ {
		if b.mines[i] {
			b.uncover(i)
		}
	}
}
