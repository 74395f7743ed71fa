package hamlet

import (
	"fmt"
	"reflect"
	"testing"
)

type Hamlet struct {
	t      *testing.T
	expect bool
}

// Specifications gives a pair of assertion helpers for a test: the
// first one demands its condition to hold, the second demands the
// opposite. Intended usage:
//
//	must_be, wont_be := hamlet.Specifications(t)
func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) outcome(result bool, form string, details ...interface{}) {
	it.t.Helper()
	if result != it.expect {
		it.t.Errorf(form, details...)
	}
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	it.outcome(value, "Expected %v to be %v!", value, it.expect)
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	defended := value == nil
	if !defended {
		reflected := reflect.ValueOf(value)
		switch reflected.Kind() {
		case reflect.Chan, reflect.Func, reflect.Map, reflect.Ptr, reflect.Interface, reflect.Slice:
			defended = reflected.IsNil()
		}
	}
	it.outcome(defended, "Value %#v vs. nil conflict! (expected %v)", value, it.expect)
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	it.outcome(reflect.DeepEqual(expected, actual), "Values %#v vs. %#v conflict! (expected equal: %v)", expected, actual, it.expect)
}

// Text compares string form of given value against expected text.
func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	it.Equal(expected, fmt.Sprintf("%v", actual))
}

func (it *Hamlet) Panic(todo func()) {
	it.t.Helper()
	defer func() {
		recovered := recover()
		it.outcome(recovered != nil, "Panic %#v conflict! (expected %v)", recovered, it.expect)
	}()
	todo()
}
