package seq

// IsEmpty checks if a slice is nil or empty
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsMapEmpty checks if a map is nil or empty
func IsMapEmpty[M ~map[K]V, K comparable, V any](m M) bool {
	return len(m) == 0
}
