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

// Package uri parses, inspects, normalizes, edits, and constructs Uniform
// Resource Identifiers as defined by RFC 3986.
//
// A parse is a single, allocation-free pass over the source bytes that
// locates each of ten named components — scheme, authority, userinfo,
// user, password, host, port, path, query, and fragment — and records
// their locations as (offset, length) ranges alongside a 16-bit presence
// bitmap. Parsing never fails by panic: a malformed source yields a URI
// with no components set and an ErrorKind describing why.
//
// Three storage disciplines are available for the source bytes: Borrowed
// (a non-owning view over caller-supplied bytes), Dynamic (an owning,
// growable copy), and Bounded (a fixed-capacity inline buffer that fails
// closed on overflow). Literal is a compile-time-style variant built once
// from a string constant and is not mutable.
package uri
