package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names, generated
// lazily and memoized for the life of the process. Sampler state
// transcripts are much easier to follow as "CuddlyMarmot accepted (100, 0)"
// than as raw pointer strings. The memo is never freed, which is fine for a
// debugging aid.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in demand order, so we make them nondeterministic to
	// remind the user that the same name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
