package core

// Area represents a rectangular region in continuous space
type Area struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}
