package model

// Direction is a slide direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// traversal returns a permutation of the size*size flat cell indices for the
// given direction. Indices are grouped into `size` independent lines of
// `size` cells, each ordered from the near edge (the edge tiles move toward)
// to the far edge. The traversal order is the only thing that differs
// between directions; shift and merge run once against it.
func traversal(size int, dir Direction) []int {
	order := make([]int, 0, size*size)
	for line := 0; line < size; line++ {
		for step := 0; step < size; step++ {
			switch dir {
			case DirLeft:
				order = append(order, line*size+step)
			case DirRight:
				order = append(order, line*size+(size-1-step))
			case DirUp:
				order = append(order, step*size+line)
			case DirDown:
				order = append(order, (size-1-step)*size+line)
			}
		}
	}
	return order
}
