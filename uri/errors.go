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

import "github.com/pkg/errors"

// ErrImmutable is returned when a mutating operation is attempted against
// storage that does not implement mutableStorage (currently only Literal).
var ErrImmutable = errors.New("uri: storage is immutable")

// ErrEdit is returned by Edit when there is nothing to build: an empty
// patch, or a patch and URI that together set no component.
var ErrEdit = errors.New("uri: edit failed")
