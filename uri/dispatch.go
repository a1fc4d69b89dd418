/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

// Accessor is the read-only surface ForEach and Dispatch need: any *URI[S]
// satisfies it regardless of storage discipline.
type Accessor interface {
	Test(c Component) bool
	GetComponent(c Component) string
}

// ForEach invokes f for every component set on u, in fixed enum order, and
// returns the number of invocations. The teacher's pack has no direct
// analog; this follows the per-component-function decomposition used
// throughout autority.go/iri_parser.go, applied to traversal rather than
// parsing.
func ForEach(u Accessor, f func(Component, string)) int {
	n := 0
	for c := Scheme; c < CountOf; c++ {
		if u.Test(c) {
			f(c, u.GetComponent(c))
			n++
		}
	}
	return n
}

// DispatchEntry pairs a Component with the handler to invoke for it. A
// trailing entry whose Component is CountOf acts as the default handler
// for any set component that has no dedicated entry.
type DispatchEntry struct {
	Component Component
	Handler   func(Component, string)
}

// Dispatch invokes, for each entry in table whose Component is set on u,
// that entry's Handler. If table's last entry has Component == CountOf, it
// is invoked once for every set component (in enum order) that has no
// earlier dedicated entry. Returns the total number of invocations.
func Dispatch(u Accessor, table []DispatchEntry) int {
	var hasDefault bool
	var defaultHandler func(Component, string)
	entries := table
	if len(table) > 0 && table[len(table)-1].Component == CountOf {
		hasDefault = true
		defaultHandler = table[len(table)-1].Handler
		entries = table[:len(table)-1]
	}

	dispatched := make([]bool, CountOf)
	n := 0
	for _, e := range entries {
		if e.Component < CountOf && u.Test(e.Component) {
			e.Handler(e.Component, u.GetComponent(e.Component))
			dispatched[e.Component] = true
			n++
		}
	}
	if hasDefault {
		for c := Scheme; c < CountOf; c++ {
			if u.Test(c) && !dispatched[c] {
				defaultHandler(c, u.GetComponent(c))
				n++
			}
		}
	}
	return n
}
