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

import "strings"

// ComponentValue pairs a Component with a borrowed string value, the unit
// both MakeURI and Edit take a list of.
type ComponentValue struct {
	Component Component
	Value     string
}

// buildTable collects patch into a presence bitmap of which components
// were provided and a CountOf-sized value table, last write wins for a
// repeated component, matching the original ilist[comp] = str overwrite.
func buildTable(patch []ComponentValue, encode bool) (Presence, [CountOf]string) {
	var provided Presence
	var values [CountOf]string
	for _, cv := range patch {
		if cv.Component >= CountOf {
			continue
		}
		v := cv.Value
		if encode {
			v = EncodeHex(v, true)
		}
		provided.Set(cv.Component)
		values[cv.Component] = v
	}
	return provided, values
}

// MakeURI assembles a URI string from a sequence of (component, value)
// pairs, applying the fixed emission rule for each component that was
// provided, in fixed enum order. Every value is a borrowed view into the
// caller's strings; encode, when true, runs each value through EncodeHex
// before it is emitted.
func MakeURI(patch []ComponentValue, encode bool) string {
	provided, values := buildTable(patch, encode)
	return buildURI(provided, values)
}

// buildURI runs the emission loop once provided/values have been
// assembled by MakeURI or Edit. done tracks which components have already
// been emitted, since host's '@' insertion depends on whether user or
// password was emitted ahead of it in enum order.
func buildURI(provided Presence, values [CountOf]string) string {
	if !provided.HasAny() {
		return ""
	}
	var done Presence
	var b strings.Builder
	for ii := Scheme; ii < CountOf; ii++ {
		if !provided.Test(ii) || done.Test(ii) {
			continue
		}
		str := values[ii]
		switch ii {
		case Scheme:
			b.WriteString(str)
			b.WriteByte(':')
			if provided.HasAnyAuthority() {
				b.WriteString("//")
			}
		case Authority:
			if !provided.HasAnyAuthority() {
				b.WriteString("//")
			}
			b.WriteString(str)
		case Userinfo:
			if provided.Test(Authority) || provided.HasAnyUserinfo() {
				continue
			}
			b.WriteString(str)
		case User:
			if str == "" && (provided.Test(Authority) || provided.Test(Userinfo)) {
				continue
			}
			b.WriteString(str)
		case Password:
			if str == "" && (provided.Test(Authority) || provided.Test(Userinfo)) {
				continue
			}
			if str != "" {
				b.WriteByte(':')
				b.WriteString(str)
			}
		case Host:
			if provided.Test(Authority) {
				continue
			}
			if (values[User] != "" || values[Password] != "") && (done.Test(User) || done.Test(Password)) {
				b.WriteByte('@')
			}
			b.WriteString(str)
		case Port:
			if provided.Test(Authority) {
				continue
			}
			if str != "" {
				b.WriteByte(':')
				b.WriteString(str)
			}
		case Path:
			if str != "" {
				appendPathBoundary(&b, str)
			}
		case Query:
			if str != "" {
				b.WriteByte('?')
				b.WriteString(str)
			}
		case Fragment:
			if str != "" {
				b.WriteByte('#')
				b.WriteString(str)
			}
		default:
			continue
		}
		done.Set(ii)
	}
	return b.String()
}

// appendPathBoundary emits a path value, inserting a single '/' between
// the already-built prefix and value when neither side already has one
// and the prefix does not end in ':' (so "mailto:" + "user@host" is not
// given a spurious separating slash).
func appendPathBoundary(b *strings.Builder, value string) {
	prefix := b.String()
	if prefix != "" && !strings.HasSuffix(prefix, "/") && !strings.HasPrefix(value, "/") && !strings.HasSuffix(prefix, ":") {
		b.WriteByte('/')
	}
	b.WriteString(value)
}
