package status

import "fmt"

// Fatal is the panic value used for programmer-contract violations such as an
// out-of-range index. It is never returned as an ordinary result; hosts that
// embed libx can recover it with Catch, log it, and then terminate.
type Fatal struct {
	Code   Code
	Op     string
	Detail string
}

func (f *Fatal) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("libx: %s: %s", f.Op, Describe(f.Code))
	}
	return fmt.Sprintf("libx: %s: %s (%s)", f.Op, Describe(f.Code), f.Detail)
}

// Unwrap exposes the sentinel for errors.Is.
func (f *Fatal) Unwrap() error { return f.Code.Err() }

// Panic raises a *Fatal for op.
func Panic(c Code, op, format string, args ...any) {
	panic(&Fatal{Code: c, Op: op, Detail: fmt.Sprintf(format, args...)})
}

// Catch runs fn and returns the *Fatal it panicked with, or nil if fn
// returned normally. Panics with any other value are re-raised.
func Catch(fn func()) (f *Fatal) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ff, ok := r.(*Fatal); ok {
			f = ff
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
