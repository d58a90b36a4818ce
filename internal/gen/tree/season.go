package tree

// Season selects leaf color and visibility.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// String returns the season name.
func (s Season) String() string {
	switch s {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// Next cycles to the following season.
func (s Season) Next() Season {
	return (s + 1) % 4
}

// HasLeaves reports whether leaf clusters are drawn this season.
func (s Season) HasLeaves() bool {
	return s != Winter
}

// LeafColor returns the foliage color for the season.
func (s Season) LeafColor() [3]float32 {
	switch s {
	case Spring:
		return [3]float32{0.55, 0.78, 0.35}
	case Summer:
		return [3]float32{0.22, 0.52, 0.2}
	case Autumn:
		return [3]float32{0.82, 0.45, 0.12}
	default:
		return [3]float32{0, 0, 0} // Winter draws no leaves
	}
}
