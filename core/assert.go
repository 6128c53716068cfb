package core

// AssertionError is the panic value of a failed assertion on host builds.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string { return "assertion failed: " + e.Msg }

// Assert halts through AssertFailed when cond is false.
func Assert(cond bool, msg string) {
	if !cond {
		AssertFailed(msg)
	}
}

// AssertFailed is the single exit for broken invariants. It logs at Critical
// level and halts. It does not return.
func AssertFailed(msg string) {
	if l := DefaultLogger(); l != nil {
		l.Critical("assertion failed: " + msg)
		l.Flush()
	}
	halt(msg)
}
