package board

import "math"

// IsWon reports whether every safe cell is uncovered and every mine is still
// covered. The first time it holds, the game is marked over and won.
func (b *Board) IsWon() bool {
	for i := 0; i < b.Size(); i++ {
		if b.uncovered[i] == b.mines[i] {
			return false
		}
	}

	b.gameOver = true
	b.won = true
	return true
}

func (b *Board) MineCount() int {
	count := 0
	for i := 0; i < b.Size(); i++ {
		if b.mines[i] {
			count++
		}
	}
	return count
}

func (b *Board) FlaggedCount() int {
	count := 0
	for i := 0; i < b.Size(); i++ {
		if b.markers[i] == MarkerFlagged {
			count++
		}
	}
	return count
}

// RemainingFlags is the mine count minus the flag count. It goes negative
// when the player places more flags than there are mines.
func (b *Board) RemainingFlags() int {
	return b.MineCount() - b.FlaggedCount()
}

func (b *Board) TileSize() float64 {
	return b.tileSize
}

// Origin returns the pixel position of the top-left corner of the board.
func (b *Board) Origin() (left, top float64) {
	return b.left, b.top
}

// PixelSize returns the width and height of the board in pixels.
func (b *Board) PixelSize() (width, height float64) {
	return float64(b.width) * b.tileSize, float64(b.height) * b.tileSize
}

// TilePosition returns the pixel position of the top-left corner of tile i.
func (b *Board) TilePosition(i int) (x, y float64) {
	col, row := b.Coordinates(i)
	return b.left + float64(col)*b.tileSize, b.top + float64(row)*b.tileSize
}

// TileIndexForPoint maps a pixel position to the tile under it. The board
// rectangle is half-open: the right and bottom edges belong to no tile.
func (b *Board) TileIndexForPoint(x, y float64) (int, bool) {
	w, h := b.PixelSize()
	if x < b.left || y < b.top || x >= b.left+w || y >= b.top+h {
		return 0, false
	}

	col := int(math.Floor((x - b.left) / b.tileSize))
	row := int(math.Floor((y - b.top) / b.tileSize))
	if col >= b.width || row >= b.height {
		return 0, false
	}
	return b.Index(col, row), true
}
