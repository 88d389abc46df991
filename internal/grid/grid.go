// Package grid provides the geometry of the fixed 4x5 word grid used for
// themed bonus scoring.
//
// Layout (flat indices):
//
//	 0   1   2   3   4
//	 5   6   7   8   9
//	10  11  12  13  14
//	15  16  17  18  19
package grid

const (
	Cols = 5
	Rows = 4
)

// Pos is a row/column position on the grid
type Pos struct {
	Row int
	Col int
}

// Position converts a flat index to a grid position
func Position(index int) Pos {
	return Pos{Row: index / Cols, Col: index % Cols}
}

// Index converts a grid position to a flat index
func Index(row, col int) int {
	return row*Cols + col
}

// Adjacent reports whether two indices touch, diagonals included
func Adjacent(a, b int) bool {
	pa, pb := Position(a), Position(b)
	rowDiff := abs(pa.Row - pb.Row)
	colDiff := abs(pa.Col - pb.Col)
	return rowDiff <= 1 && colDiff <= 1 && !(rowDiff == 0 && colDiff == 0)
}

// IsCorner reports whether the index is one of the four corners
func IsCorner(index int) bool {
	switch index {
	case 0, 4, 15, 19:
		return true
	}
	return false
}

// IsEdge reports whether the index lies on the outer edge
func IsEdge(index int) bool {
	p := Position(index)
	return p.Row == 0 || p.Row == Rows-1 || p.Col == 0 || p.Col == Cols-1
}

// SameLine reports whether two indices share a row or a column
func SameLine(a, b int) bool {
	pa, pb := Position(a), Position(b)
	return pa.Row == pb.Row || pa.Col == pb.Col
}

// Qualifying counts the selected indices that qualify for the round's theme:
// round 2 corners, round 3 words touching another selected word, round 4
// edge words, round 5 words sharing a line with another selected word.
// Rounds outside 2-5 never qualify.
func Qualifying(round int, selected []int) int {
	switch round {
	case 2:
		n := 0
		for _, idx := range selected {
			if IsCorner(idx) {
				n++
			}
		}
		return n
	case 3:
		return countPaired(selected, Adjacent)
	case 4:
		n := 0
		for _, idx := range selected {
			if IsEdge(idx) {
				n++
			}
		}
		return n
	case 5:
		return countPaired(selected, SameLine)
	}
	return 0
}

// countPaired counts the indices related to at least one other selected
// index under the given predicate.
func countPaired(selected []int, related func(a, b int) bool) int {
	qualifying := make(map[int]bool)
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			if related(selected[i], selected[j]) {
				qualifying[selected[i]] = true
				qualifying[selected[j]] = true
			}
		}
	}
	return len(qualifying)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
