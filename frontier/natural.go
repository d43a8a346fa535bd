package frontier

import "golang.org/x/exp/constraints"

// NaturalLess returns the natural < ordering for the builtin ordered types
// (string, signed/unsigned integers, floats) and nil for every other V,
// including named types and interfaces. A nil result means ties fall back to
// insertion order.
func NaturalLess[V comparable]() func(a, b V) bool {
	var zero V
	switch any(zero).(type) {
	case string:
		return lessAs[string, V]()
	case int:
		return lessAs[int, V]()
	case int8:
		return lessAs[int8, V]()
	case int16:
		return lessAs[int16, V]()
	case int32:
		return lessAs[int32, V]()
	case int64:
		return lessAs[int64, V]()
	case uint:
		return lessAs[uint, V]()
	case uint8:
		return lessAs[uint8, V]()
	case uint16:
		return lessAs[uint16, V]()
	case uint32:
		return lessAs[uint32, V]()
	case uint64:
		return lessAs[uint64, V]()
	case uintptr:
		return lessAs[uintptr, V]()
	case float32:
		return lessAs[float32, V]()
	case float64:
		return lessAs[float64, V]()
	default:
		return nil
	}
}

func lessAs[T constraints.Ordered, V comparable]() func(a, b V) bool {
	return func(a, b V) bool { return any(a).(T) < any(b).(T) }
}
