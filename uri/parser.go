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

import "bytes"

// whitespaceBytes is the set of ASCII whitespace bytes that make a source
// illegal unless a '?' precedes the first literal space (queries may
// contain spaces).
const whitespaceBytes = " \t\n\f\r\v"

// parseInto is the single-pass, allocation-free scanner at the heart of
// the package. It populates ranges and presence for src and returns the
// number of components found (Presence.PopCount). It never panics: a
// refused parse leaves presence at zero with the failing ErrorKind
// recorded in ranges[0].Offset (I1).
func parseInto(src []byte, ranges *[10]Range, presence *Presence) int {
	*ranges = [10]Range{}
	*presence = 0

	if len(src) == 0 {
		ranges[0].Offset = uint16(EmptySrc)
		return 0
	}
	if len(src) > MaxSourceLength {
		ranges[0].Offset = uint16(TooLong)
		return 0
	}
	if bytes.IndexAny(src, whitespaceBytes) >= 0 {
		qur := bytes.IndexByte(src, '?')
		sps := bytes.IndexByte(src, ' ')
		if !(qur >= 0 && sps >= 0 && qur < sps) {
			ranges[0].Offset = uint16(IllegalChars)
			return 0
		}
	}

	n := len(src)
	pos := 0
	pathFound := false
	pathStart := 0
	shortCircuitQuery := false

	// 1. Scheme.
	if sch := bytes.IndexByte(src, ':'); sch >= 0 {
		ranges[Scheme] = Range{0, uint16(sch)}
		presence.Set(Scheme)
		pos = sch + 1
	}

	// 2. Short-circuit query, else authority.
	hostStart := 0
	if pos < n && src[pos] == '?' {
		shortCircuitQuery = true
	} else if auth := indexFrom(src, pos, "//"); auth >= 0 {
		auth += 2
		pth := n
		if end := bytes.IndexAny(src[auth:], "/?#"); end >= 0 {
			pth = auth + end
		}
		pathFound = true
		pathStart = pth
		ranges[Authority] = Range{uint16(auth), uint16(pth - auth)}
		presence.Set(Authority)

		usr := indexByteFrom(src, auth, '@')
		if usr >= 0 && usr < pth {
			pw := indexByteFrom(src, auth, ':')
			if pw >= 0 && pw < usr {
				ranges[User] = Range{uint16(auth), uint16(pw - auth)}
				if usr-pw-1 > 0 {
					ranges[Password] = Range{uint16(pw + 1), uint16(usr - pw - 1)}
					presence.Set(Password)
				}
			} else {
				ranges[User] = Range{uint16(auth), uint16(usr - auth)}
			}
			presence.Set(User)
			ranges[Userinfo] = Range{uint16(auth), uint16(usr - auth)}
			presence.Set(Userinfo)
			hostStart = usr + 1
			pos = hostStart
		} else {
			hostStart = auth
			pos = auth
		}

		if prt := indexByteFrom(src, pos, ':'); prt >= 0 && prt < pth {
			authBytes := src[auth:pth]
			bracketed := len(authBytes) > 0 && authBytes[0] == '[' && authBytes[len(authBytes)-1] == ']'
			if !bracketed {
				prt++
				ranges[Port] = Range{uint16(prt), uint16(n - prt)}
				presence.Set(Port)
			}
		}
	}

	// 3. Host & path finalization.
	if pathFound {
		if presence.Test(Port) {
			if pathStart-int(ranges[Port].Offset) == 0 {
				presence.Clear(Port)
			} else {
				ranges[Port].Length = uint16(pathStart - int(ranges[Port].Offset))
			}
			ranges[Host] = Range{uint16(hostStart), uint16(int(ranges[Port].Offset) - 1 - hostStart)}
		} else {
			ranges[Host] = Range{uint16(hostStart), uint16(pathStart - hostStart)}
		}
		if ranges[Host].Length > 0 {
			presence.Set(Host)
		}
		ranges[Path] = Range{uint16(pathStart), uint16(n - pathStart)}
		presence.Set(Path)
	} else if !shortCircuitQuery {
		presence.Set(Path)
		if slash := indexByteFrom(src, pos, '/'); slash >= 0 {
			ranges[Path] = Range{uint16(slash), uint16(n - slash)}
		} else if presence.Test(Scheme) {
			ranges[Path] = Range{uint16(pos), uint16(n - pos)}
		} else {
			presence.Clear(Path)
		}
	}

	// 4. Query.
	if qur := indexByteFrom(src, pos, '?'); qur >= 0 {
		if presence.Test(Path) {
			ranges[Path].Length = uint16(qur - int(ranges[Path].Offset))
		}
		ranges[Query] = Range{uint16(qur + 1), uint16(n - qur - 1)}
		presence.Set(Query)
	}

	// 5. Fragment.
	if fra := indexByteFrom(src, pos, '#'); fra >= 0 {
		if presence.Test(Query) {
			ranges[Query].Length = uint16(fra - int(ranges[Query].Offset))
		} else if presence.Test(Path) && int(ranges[Path].Offset) <= fra {
			ranges[Path].Length = uint16(fra - int(ranges[Path].Offset))
		}
		ranges[Fragment] = Range{uint16(fra + 1), uint16(n - fra - 1)}
		presence.Set(Fragment)
	}

	return presence.PopCount()
}

func indexByteFrom(src []byte, from int, b byte) int {
	if from >= len(src) {
		return -1
	}
	i := bytes.IndexByte(src[from:], b)
	if i < 0 {
		return -1
	}
	return from + i
}

func indexFrom(src []byte, from int, sub string) int {
	if from >= len(src) {
		return -1
	}
	i := bytes.Index(src[from:], []byte(sub))
	if i < 0 {
		return -1
	}
	return from + i
}
