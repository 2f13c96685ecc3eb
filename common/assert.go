package common

// HM_Assert panics when condition does not hold. It guards caller contracts
// (attribute numbers, flag preconditions); violating one is a logic bug, so
// execution must not continue with possibly wrong results.
func HM_Assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
