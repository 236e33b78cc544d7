package board

// Marker is the annotation a player can place on a covered cell.
type Marker uint8

const (
	MarkerNone Marker = iota
	MarkerFlagged
	MarkerQuestioned

	markerCount
)

func (m Marker) String() string {
	switch m {
	case MarkerNone:
		return "None"
	case MarkerFlagged:
		return "Flagged"
	case MarkerQuestioned:
		return "Questioned"
	}
	return "Unknown"
}

// Next returns the marker that follows m in the None, Flagged, Questioned cycle.
func (m Marker) Next() Marker {
	return (m + 1) % markerCount
}

// CycleMarker advances the marker of a covered cell by one step.
// Out of range indices, uncovered cells and finished games are ignored.
func (b *Board) CycleMarker(i int) {
	if !b.InBounds(i) || b.gameOver || b.uncovered[i] {
		return
	}
	b.markers[i] = b.markers[i].Next()
}
