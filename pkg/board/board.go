package board

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	// MaxWidth is the largest supported number of columns.
	MaxWidth = 15
	// MaxHeight is the largest supported number of rows.
	MaxHeight = 15
	// Capacity is the number of cells the backing arrays can hold.
	Capacity = MaxWidth * MaxHeight

	// DefaultTileSize is the pixel size of a tile when none is given.
	DefaultTileSize = 32.0

	// pcgStream selects the PCG stream; the seed selects the state.
	pcgStream = 0xda3e39cb94b95bdb
)

// Board is the state of a single game: mine layout, adjacency counts,
// uncovered cells, markers and the outcome.
//
// Cells are addressed by index = row*width + col and stored in parallel arrays.
type Board struct {
	width       int
	height      int
	denominator int
	seed        uint64

	tileSize float64
	left     float64
	top      float64

	gameOver bool
	won      bool

	mines     [Capacity]bool
	uncovered [Capacity]bool
	adjacency [Capacity]uint8
	markers   [Capacity]Marker
}

type NewBoardOptions struct {
	// Width is the number of columns, 1 to MaxWidth.
	Width int
	// Height is the number of rows, 1 to MaxHeight.
	Height int
	// Denominator sets the mine probability of each cell to 1/Denominator.
	Denominator int
	// Seed drives the mine placement. Equal seeds produce equal layouts.
	Seed uint64
	// TileSize is the pixel size of a tile. Zero means DefaultTileSize.
	TileSize float64
	// CenterX is the x pixel coordinate the board is centred on.
	CenterX float64
	// CenterY is the y pixel coordinate the board is centred on.
	CenterY float64
}

// Validate checks the dimensions and density against the engine's limits.
func (o NewBoardOptions) Validate() error {
	if o.Width < 1 || o.Width > MaxWidth {
		return &ConfigurationError{Field: "width", Value: o.Width, Message: "must be between 1 and " + strconv.Itoa(MaxWidth)}
	}
	if o.Height < 1 || o.Height > MaxHeight {
		return &ConfigurationError{Field: "height", Value: o.Height, Message: "must be between 1 and " + strconv.Itoa(MaxHeight)}
	}
	if o.Width*o.Height > Capacity {
		return &ConfigurationError{Field: "cells", Value: o.Width * o.Height, Message: "exceeds capacity of " + strconv.Itoa(Capacity)}
	}
	if o.Denominator < 1 {
		return &ConfigurationError{Field: "denominator", Value: o.Denominator, Message: "must be at least 1"}
	}
	if o.TileSize < 0 {
		return &ConfigurationError{Field: "tile_size", Value: int(o.TileSize), Message: "must not be negative"}
	}
	return nil
}

// New generates a board. Each cell is independently a mine with probability
// 1/Denominator, so the mine count is only expected, not exact.
func New(opts NewBoardOptions) (*Board, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tileSize := opts.TileSize
	if tileSize == 0 {
		tileSize = DefaultTileSize
	}

	b := &Board{
		width:       opts.Width,
		height:      opts.Height,
		denominator: opts.Denominator,
		seed:        opts.Seed,
		tileSize:    tileSize,
		left:        opts.CenterX - float64(opts.Width)*tileSize/2,
		top:         opts.CenterY - float64(opts.Height)*tileSize/2,
	}

	rng := rand.New(rand.NewPCG(opts.Seed, pcgStream))
	for i := 0; i < b.Size(); i++ {
		b.mines[i] = rng.IntN(b.denominator) == 0
	}
	b.computeAdjacency()

	return b, nil
}

// Generate is New without pixel layout.
func Generate(width, height, denominator int, seed uint64) (*Board, error) {
	return New(NewBoardOptions{
		Width:       width,
		Height:      height,
		Denominator: denominator,
		Seed:        seed,
	})
}

func (b *Board) computeAdjacency() {
	neighbors := make([]int, 0, 8)
	for i := 0; i < b.Size(); i++ {
		count := uint8(0)
		neighbors = b.appendNeighbors(neighbors[:0], i)
		for _, n := range neighbors {
			if b.mines[n] {
				count++
			}
		}
		b.adjacency[i] = count
	}
}

// appendNeighbors appends the indices of the Moore neighbourhood of i,
// clipped at the board edges.
func (b *Board) appendNeighbors(dst []int, i int) []int {
	col, row := b.Coordinates(i)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nc, nr := col+dx, row+dy
			if nc < 0 || nc >= b.width || nr < 0 || nr >= b.height {
				continue
			}
			dst = append(dst, nr*b.width+nc)
		}
	}
	return dst
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Denominator() int {
	return b.denominator
}

func (b *Board) Seed() uint64 {
	return b.seed
}

// Size is the number of cells in use.
func (b *Board) Size() int {
	return b.width * b.height
}

func (b *Board) InBounds(i int) bool {
	return i >= 0 && i < b.Size()
}

// Index returns the cell index for a column and row. It does not bounds check.
func (b *Board) Index(col, row int) int {
	return row*b.width + col
}

// Coordinates returns the column and row of a cell index.
func (b *Board) Coordinates(i int) (col, row int) {
	return i % b.width, i / b.width
}

func (b *Board) IsMine(i int) bool {
	return b.InBounds(i) && b.mines[i]
}

func (b *Board) IsUncovered(i int) bool {
	return b.InBounds(i) && b.uncovered[i]
}

func (b *Board) Adjacency(i int) int {
	if !b.InBounds(i) {
		return 0
	}
	return int(b.adjacency[i])
}

func (b *Board) Marker(i int) Marker {
	if !b.InBounds(i) {
		return MarkerNone
	}
	return b.markers[i]
}

func (b *Board) GameOver() bool {
	return b.gameOver
}

func (b *Board) Won() bool {
	return b.won
}

// String renders the board as rows of text: '-' covered, '*' mine,
// '.' empty, digits for adjacency counts.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			i := b.Index(col, row)
			switch {
			case !b.uncovered[i]:
				sb.WriteByte('-')
			case b.mines[i]:
				sb.WriteByte('*')
			case b.adjacency[i] == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte('0' + b.adjacency[i])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
