package errors

// Error is a constant string error. Packages declare their error values as
// typed consts so they can be compared with ==.
type Error string

func (e Error) Error() string {
	return string(e)
}
