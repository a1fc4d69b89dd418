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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"reflect"
	"testing"
)

func TestDecodeQueryBasic(t *testing.T) {
	t.Parallel()
	got := DecodeQuery("objectClass?one", '&', '=', false)
	want := []QueryPair{{Key: "objectClass?one", Value: ""}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeQuery() = %+v, want %+v", got, want)
	}
}

func TestDecodeQueryMultiplePairs(t *testing.T) {
	t.Parallel()
	got := DecodeQuery("xt=urn:btih:abc&tr=udp%3A%2F%2Ftracker", '&', '=', false)
	want := []QueryPair{
		{Key: "xt", Value: "urn:btih:abc"},
		{Key: "tr", Value: "udp%3A%2F%2Ftracker"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeQuery() = %+v, want %+v", got, want)
	}
}

func TestDecodeQueryConsecutiveSeparatorsPreserveEmptyPair(t *testing.T) {
	t.Parallel()
	got := DecodeQuery("a=1&&b=2", '&', '=', false)
	want := []QueryPair{{Key: "a", Value: "1"}, {Key: "", Value: ""}, {Key: "b", Value: "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeQuery() = %+v, want %+v", got, want)
	}
}

func TestDecodeQueryTrailingSeparatorDropsFinalEmptyToken(t *testing.T) {
	t.Parallel()
	got := DecodeQuery("a=1&", '&', '=', false)
	want := []QueryPair{{Key: "a", Value: "1"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeQuery() = %+v, want %+v", got, want)
	}
}

func TestDecodeQueryEmpty(t *testing.T) {
	t.Parallel()
	if got := DecodeQuery("", '&', '=', false); got != nil {
		t.Fatalf("DecodeQuery(\"\") = %+v, want nil", got)
	}
}

func TestDecodeQuerySortByKey(t *testing.T) {
	t.Parallel()
	got := DecodeQuery("b=2&a=1&c=3", '&', '=', true)
	want := []QueryPair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "c", Value: "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DecodeQuery(sorted) = %+v, want %+v", got, want)
	}
}

func TestFindQuery(t *testing.T) {
	t.Parallel()
	q := DecodeQuery("b=2&a=1&c=3", '&', '=', true)
	if v, ok := FindQuery("a", q); !ok || v != "1" {
		t.Fatalf("FindQuery(a) = (%q, %v), want (1, true)", v, ok)
	}
	if _, ok := FindQuery("missing", q); ok {
		t.Fatal("FindQuery(missing) unexpectedly found")
	}
}

func TestDecodeSegments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		path   string
		filter bool
		want   []string
	}{
		{"empty path", "", false, nil},
		{"simple absolute", "/au/locator//area/file.txt", false, []string{"au", "locator", "", "area", "file.txt"}},
		{"root only", "/", false, []string{""}},
		{"all dots and slashes", "/.//", false, []string{".", "", ""}},
		{"leading double slash", "//./", false, []string{"", ".", ""}},
		{"relative path", "a/b/c", false, []string{"a", "b", "c"}},
		{"filter skips dot segments", "/./a/./b/", true, []string{"", "a", "", "b", ""}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DecodeSegments(tt.path, tt.filter)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeSegments(%q, %v) = %#v, want %#v", tt.path, tt.filter, got, tt.want)
			}
		})
	}
}

func TestSortQueryStable(t *testing.T) {
	t.Parallel()
	q := []QueryPair{{Key: "a", Value: "1"}, {Key: "a", Value: "2"}, {Key: "b", Value: "3"}}
	SortQuery(q)
	if q[0].Value != "1" || q[1].Value != "2" {
		t.Fatalf("SortQuery not stable: %+v", q)
	}
}
