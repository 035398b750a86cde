package util

// OrDefault returns def if the value is nil, otherwise the pointed-to value.
//
// This helper is commonly used when resolving optional request parameters
// and polling bounds, where a nil field means "use the documented default".
//
// Example:
//
//	limit := util.OrDefault(input.Limit, 20)
//	offset := util.OrDefault(input.Offset, 0)
func OrDefault[T any](value *T, def T) T {
	if value == nil {
		return def
	}
	return *value
}
