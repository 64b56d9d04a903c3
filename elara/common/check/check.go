package check

import "fmt"

// These functions are meant to simplify panicking in the code
// Always consider returning errors instead of panicking!
//
// Panic dumps a stack trace, so messages without runtime-defined data
// do not add anything. If you wish to use a custom message, consider
// returning a wrapped error instead.

// PanicIfNot panics on false (use as simple assert).
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}

// PanicIfNotf panics on false with the given message.
func PanicIfNotf(flag bool, format string, args ...any) {
	if !flag {
		panic(fmt.Sprintf(format, args...))
	}
}

// PanicIfErr calls panic(err) if err is not nil.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}
