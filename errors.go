package skillbotml

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrNetNotFinalized   = Error{"Network has not been finalized"}
	ErrNetFinalized      = Error{"Network has already been finalized"}
	ErrNoInput           = Error{"Network has no input layer"}
	ErrRegisterTaken     = Error{"Type name has already been registered"}
	ErrRegisterNilReturn = Error{"Constructor return is nil"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError documents errors where the length of a provided slice disagrees with the
// dimensions of the Network.
type SizeMismatchError struct {
	Expected, Got int
	Values        string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Mismatch in number of %s (expected %d, got %d)", err.Values, err.Expected, err.Got)
}
