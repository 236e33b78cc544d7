package board

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func boardProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

// bruteAdjacency counts mine neighbours directly from coordinates.
func bruteAdjacency(b *Board, i int) int {
	col, row := b.Coordinates(i)
	count := 0
	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r == row && c == col) || r < 0 || c < 0 || r >= b.height || c >= b.width {
				continue
			}
			if b.mines[r*b.width+c] {
				count++
			}
		}
	}
	return count
}

func TestProperty_Generation(t *testing.T) {
	properties := boardProperties()

	properties.Property("generation is deterministic for a fixed seed", prop.ForAll(
		func(width, height, denominator int, seed uint64) bool {
			a, err := Generate(width, height, denominator, seed)
			if err != nil {
				return false
			}
			b, err := Generate(width, height, denominator, seed)
			if err != nil {
				return false
			}
			return a.mines == b.mines && a.adjacency == b.adjacency
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.IntRange(1, 20),
		gen.UInt64(),
	))

	properties.Property("adjacency matches a direct neighbour count", prop.ForAll(
		func(width, height, denominator int, seed uint64) bool {
			b, err := Generate(width, height, denominator, seed)
			if err != nil {
				return false
			}
			for i := 0; i < b.Size(); i++ {
				if b.Adjacency(i) != bruteAdjacency(b, i) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.IntRange(1, 10),
		gen.UInt64(),
	))

	properties.Property("cells beyond the board are never mines", prop.ForAll(
		func(width, height int, seed uint64) bool {
			b, err := Generate(width, height, 1, seed)
			if err != nil {
				return false
			}
			for i := b.Size(); i < Capacity; i++ {
				if b.mines[i] {
					return false
				}
			}
			return b.MineCount() == b.Size()
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestProperty_Reveal(t *testing.T) {
	properties := boardProperties()

	properties.Property("flood fill uncovers exactly the zero region and its border", prop.ForAll(
		func(width, height, denominator int, seed uint64, pick int) bool {
			b, err := Generate(width, height, denominator, seed)
			if err != nil {
				return false
			}
			start := pick % b.Size()
			if b.mines[start] {
				return true
			}

			// Expected: BFS over zero cells from start, plus the neighbours of every zero cell reached.
			want := map[int]bool{start: true}
			if b.adjacency[start] == 0 {
				seen := map[int]bool{start: true}
				queue := []int{start}
				for len(queue) > 0 {
					cur := queue[0]
					queue = queue[1:]
					for _, n := range b.appendNeighbors(nil, cur) {
						want[n] = true
						if !b.mines[n] && b.adjacency[n] == 0 && !seen[n] {
							seen[n] = true
							queue = append(queue, n)
						}
					}
				}
			}

			b.Reveal(start)
			for i := 0; i < b.Size(); i++ {
				if b.uncovered[i] != want[i] {
					return false
				}
			}
			return !b.GameOver()
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.IntRange(2, 12),
		gen.UInt64(),
		gen.IntRange(0, Capacity-1),
	))

	properties.Property("revealing a mine loses and exposes every mine", prop.ForAll(
		func(width, height int, seed uint64) bool {
			b, err := Generate(width, height, 3, seed)
			if err != nil {
				return false
			}
			mine := -1
			for i := 0; i < b.Size(); i++ {
				if b.mines[i] {
					mine = i
					break
				}
			}
			if mine < 0 {
				return true
			}

			b.Reveal(mine)
			if !b.GameOver() || b.Won() {
				return false
			}
			for i := 0; i < b.Size(); i++ {
				if b.mines[i] && !b.uncovered[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.UInt64(),
	))

	properties.Property("won iff uncovered cells are exactly the safe cells", prop.ForAll(
		func(width, height, denominator int, seed uint64) bool {
			b, err := Generate(width, height, denominator, seed)
			if err != nil {
				return false
			}
			for i := 0; i < b.Size(); i++ {
				if !b.mines[i] {
					b.uncovered[i] = true
				}
			}
			if !b.IsWon() || !b.Won() {
				return false
			}

			c, err := Generate(width, height, denominator, seed)
			if err != nil {
				return false
			}
			safe := -1
			for i := 0; i < c.Size(); i++ {
				if !c.mines[i] {
					c.uncovered[i] = true
					safe = i
				}
			}
			if safe < 0 {
				return true
			}
			c.uncovered[safe] = false
			return !c.IsWon() && !c.GameOver()
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.IntRange(1, 8),
		gen.UInt64(),
	))

	properties.Property("three marker cycles return to none", prop.ForAll(
		func(width, height int, seed uint64, pick int) bool {
			b, err := Generate(width, height, 4, seed)
			if err != nil {
				return false
			}
			i := pick % b.Size()
			for n := 0; n < 3; n++ {
				b.CycleMarker(i)
			}
			return b.Marker(i) == MarkerNone
		},
		gen.IntRange(1, MaxWidth),
		gen.IntRange(1, MaxHeight),
		gen.UInt64(),
		gen.IntRange(0, Capacity-1),
	))

	properties.TestingRun(t)
}
