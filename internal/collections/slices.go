package collections

// MapSlice converts every element of the slice, preserving order.
func MapSlice[In any, Out any](slice []In, convert func(value In) Out) []Out {
	out := make([]Out, 0, len(slice))
	for _, value := range slice {
		out = append(out, convert(value))
	}
	return out
}
