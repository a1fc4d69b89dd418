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

import (
	"encoding/hex"
	"strings"
)

// reservedBytes mirrors the RFC 3986 reserved set from the glossary:
// ":/?#[]@!$&'()*+,;=".
const reservedBytes = ":/?#[]@!$&'()*+,;="

// isReservedByte and isUnreservedByte are backed by 256-entry lookup
// tables built once in init(), the same shape as the pack's path-segment
// encode table (gorilla-muxy's shouldEncode[256]byte), generalized here
// from "path segment characters" to the full RFC 3986 reserved/unreserved
// classification.
var (
	reservedTable   [256]bool
	unreservedTable [256]bool
)

func init() {
	for i := range reservedTable {
		reservedTable[i] = strings.IndexByte(reservedBytes, byte(i)) >= 0
	}
	for c := byte('a'); c <= 'z'; c++ {
		unreservedTable[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		unreservedTable[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		unreservedTable[c] = true
	}
	for _, c := range []byte{'-', '.', '_', '~'} {
		unreservedTable[c] = true
	}
}

func isReservedByte(c byte) bool   { return reservedTable[c] }
func isUnreservedByte(c byte) bool { return unreservedTable[c] }

const hexDigits = "0123456789ABCDEF"

// EncodeHex percent-encodes s. With canonical true (the default per the
// component design), a byte is encoded when it is reserved or not
// unreserved — which, since the reserved and unreserved sets are
// disjoint, means every byte outside the unreserved set. With canonical
// false, every byte is force-encoded, even unreserved ones; this mode
// exists so DecodeHex(EncodeHex(b, false)) round-trips arbitrary byte
// strings (P6), including ones containing a literal '%'.
func EncodeHex(s string, canonical bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !canonical || isReservedByte(c) || !isUnreservedByte(c) {
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xF])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FindHex returns the byte offset of the first valid %XX triple in s at
// or after start, or -1 if none is found.
func FindHex(s string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i+2 < len(s); i++ {
		if s[i] == '%' && isASCIIHex(s[i+1]) && isASCIIHex(s[i+2]) {
			return i
		}
	}
	return -1
}

// HasHex reports whether s contains at least one valid %XX triple.
func HasHex(s string) bool { return FindHex(s, 0) >= 0 }

func isASCIIHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func findHexBytes(b []byte, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i+2 < len(b); i++ {
		if b[i] == '%' && isASCIIHex(b[i+1]) && isASCIIHex(b[i+2]) {
			return i
		}
	}
	return -1
}

// DecodeHex scans s for %XX triples and replaces them with the decoded
// byte. With unreservedOnly true, only triples that decode to an
// unreserved character are replaced; all others (including %25) are
// replaced when unreservedOnly is false. A literal "%25" therefore
// collapses to "%" on a full decode, and the scan resumes at the same
// position, which keeps repeated decoding idempotent (P5): once a pass
// leaves no further valid %XX, later passes are no-ops. Malformed
// trailing "%" or "%X" sequences are left untouched.
func DecodeHex(s string, unreservedOnly bool) string {
	if !HasHex(s) {
		return s
	}
	b := []byte(s)
	pos := 0
	for {
		idx := findHexBytes(b, pos)
		if idx < 0 {
			break
		}
		decoded, err := hex.DecodeString(string(b[idx+1 : idx+3]))
		if err != nil {
			pos = idx + 3
			continue
		}
		if unreservedOnly && !isUnreservedByte(decoded[0]) {
			pos = idx + 3
			continue
		}
		merged := make([]byte, 0, len(b)-2)
		merged = append(merged, b[:idx]...)
		merged = append(merged, decoded[0])
		merged = append(merged, b[idx+3:]...)
		b = merged
		pos = idx
	}
	return string(b)
}
