package vmath

// DefaultEaseSpeed is the fraction of remaining distance covered per step
const DefaultEaseSpeed = 0.05

// Ease returns current moved toward dest by speed of the remaining distance
func Ease(current, dest, speed float64) float64 {
	return current + (dest-current)*speed
}

// EaseProp eases the value behind field toward dest, stores and returns it
func EaseProp(field *float64, dest, speed float64) float64 {
	*field = Ease(*field, dest, speed)
	return *field
}

// EaseAccessor is EaseProp for values only reachable through a getter/setter pair
func EaseAccessor(get func() float64, set func(float64), dest, speed float64) float64 {
	current := Ease(get(), dest, speed)
	set(current)
	return current
}
