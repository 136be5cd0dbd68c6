package sorter

// View is a read-only window onto the engine's array. It aliases the live
// array, so it reflects every later Step.
type View struct {
	values []int
}

func (v View) Len() int     { return len(v.values) }
func (v View) At(i int) int { return v.values[i] }

// Max returns the largest value the array can hold, which is its length.
func (v View) Max() int { return len(v.values) }
