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

// NormalizeString applies RFC 3986 §6 syntax-based normalization to src,
// restricted to the components set in mask (use a Presence with every bit
// set, e.g. one built via Presence.Set(CountOf), to normalize all of
// them). It never fails: a source that does not parse is returned
// unchanged. Each numbered step below matches the order the rule must be
// applied in; several steps reparse the working buffer because the byte
// offsets shift once a substring is inserted or removed.
func NormalizeString(src string, mask Presence) string {
	if src == "" {
		return src
	}

	var ranges [10]Range
	var presence Presence
	buf := []byte(src)
	parseInto(buf, &ranges, &presence)
	if presence == 0 {
		return src
	}

	// 1. Lowercase the scheme.
	if mask.Test(Scheme) && presence.Test(Scheme) {
		lowerASCIIRange(buf, ranges[Scheme])
	}
	// 2. Lowercase the host.
	if mask.Test(Host) && presence.Test(Host) {
		lowerASCIIRange(buf, ranges[Host])
	}

	s := string(buf)
	// 3. Uppercase the hex digits of every %XX triple.
	// 4. Percent-decode triples that encode an unreserved character.
	if HasHex(s) {
		s = upperHexDigits(s)
		s = DecodeHex(s, true)
		parseInto([]byte(s), &ranges, &presence)
	}

	// 5. Strip a trailing authority ':' left with no port following it.
	if mask.Test(Port) && presence.Test(Authority) && !presence.Test(Port) {
		a := ranges[Authority]
		if a.Length > 0 && s[int(a.Offset)+int(a.Length)-1] == ':' {
			pos := int(a.Offset) + int(a.Length) - 1
			s = s[:pos] + s[pos+1:]
			parseInto([]byte(s), &ranges, &presence)
		}
	}

	// 6. Remove dot segments from the path.
	if mask.Test(Path) && presence.Test(Path) {
		p := ranges[Path]
		path := s[p.Offset : int(p.Offset)+int(p.Length)]
		if newPath := removeDotSegments(path); newPath != path {
			s = s[:p.Offset] + newPath + s[int(p.Offset)+int(p.Length):]
			parseInto([]byte(s), &ranges, &presence)
		}
	}

	// 7. An authority with an empty path gets "/".
	if mask.Test(Path) && presence.Test(Authority) {
		switch {
		case presence.Test(Path) && ranges[Path].Length == 0:
			pos := int(ranges[Path].Offset)
			s = s[:pos] + "/" + s[pos:]
		case !presence.Test(Path):
			a := ranges[Authority]
			pos := int(a.Offset) + int(a.Length)
			s = s[:pos] + "/" + s[pos:]
		}
	}

	return s
}

// NormalizeHTTPString applies NormalizeString across every component, then,
// when the scheme is http or https and the port equals that scheme's
// well-known default, removes the redundant ":port" substring.
func NormalizeHTTPString(src string) string {
	var all Presence
	all.Set(CountOf)
	s := NormalizeString(src, all)

	var ranges [10]Range
	var presence Presence
	parseInto([]byte(s), &ranges, &presence)
	if !presence.Test(Scheme) || !presence.Test(Port) {
		return s
	}
	scheme := s[ranges[Scheme].Offset : int(ranges[Scheme].Offset)+int(ranges[Scheme].Length)]
	if scheme != "http" && scheme != "https" {
		return s
	}
	port := s[ranges[Port].Offset : int(ranges[Port].Offset)+int(ranges[Port].Length)]
	if port == "" || port != FindPort(scheme) {
		return s
	}
	start := int(ranges[Port].Offset) - 1 // the ':' immediately preceding the port
	end := int(ranges[Port].Offset) + int(ranges[Port].Length)
	return s[:start] + s[end:]
}

// removeDotSegments implements the walk described in normalize_str step 6:
// decode the path into its (non-filtered) segment list, drop every ".",
// and on every ".." drop both it and the previous segment if one exists.
// Reconstruction, like the source this is grounded on, only re-emits
// non-empty segments, so an interior "//" is collapsed along with the dot
// segments rather than preserved the way DecodeSegments itself preserves
// it for display purposes.
func removeDotSegments(path string) string {
	segs := DecodeSegments(path, false)
	out := segs[:0:0]
	for _, seg := range segs {
		switch seg {
		case ".":
			continue
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, seg)
		}
	}
	var b strings.Builder
	for _, seg := range out {
		if seg != "" {
			b.WriteByte('/')
			b.WriteString(seg)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// NormalizedEqual reports whether a and b are equal after NormalizeString
// is applied to both across every component (the "≤=" relation).
func NormalizedEqual(a, b string) bool {
	var all Presence
	all.Set(CountOf)
	return NormalizeString(a, all) == NormalizeString(b, all)
}

// HTTPNormalizedEqual reports whether a and b are equal after
// NormalizeHTTPString is applied to both (the "%" relation).
func HTTPNormalizedEqual(a, b string) bool {
	return NormalizeHTTPString(a) == NormalizeHTTPString(b)
}

func lowerASCIIRange(b []byte, r Range) {
	for i := int(r.Offset); i < int(r.Offset)+int(r.Length); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
}

func upperHexDigits(s string) string {
	b := []byte(s)
	pos := 0
	for {
		idx := findHexBytes(b, pos)
		if idx < 0 {
			break
		}
		b[idx+1] = toUpperHexDigit(b[idx+1])
		b[idx+2] = toUpperHexDigit(b[idx+2])
		pos = idx + 3
	}
	return string(b)
}

func toUpperHexDigit(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}
