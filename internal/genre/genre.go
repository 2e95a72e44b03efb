package genre

// Genre is reference data. Users declare affinities with genres and books
// are tagged with them.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Intersects reports whether a and b share at least one id.
func Intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; ok {
			return true
		}
	}
	return false
}
