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

// NewBorrowedFromPatch, NewDynamicFromPatch, NewBoundedFromPatch, and
// NewLiteralFromPatch are the per-storage-discipline forms of the library
// surface's `factory(patch, encode=false)`: build a source string with
// MakeURI, then parse it with the matching constructor.
func NewBorrowedFromPatch(patch []ComponentValue, encode bool) *Borrowed {
	return NewBorrowed([]byte(MakeURI(patch, encode)))
}

func NewDynamicFromPatch(patch []ComponentValue, encode bool) *Dynamic {
	return NewDynamic([]byte(MakeURI(patch, encode)))
}

func NewBoundedFromPatch(patch []ComponentValue, encode bool) *Bounded {
	return NewBounded([]byte(MakeURI(patch, encode)))
}

func NewLiteralFromPatch(patch []ComponentValue, encode bool) *Literal {
	return NewLiteral(MakeURI(patch, encode))
}
