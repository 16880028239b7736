// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tag

import (
	"fmt"
	"slices"

	"github.com/maruel/natural"
)

// Sorted returns the members of a set in natural order of their string
// representation: digit runs compare numerically, so "server-5" sorts
// before "server-11". This is the ordering Evaluate applies to its
// result; it is exposed for callers that combine EvaluateRaw results
// themselves.
func (s *Scope[T]) Sorted(set Set[T]) []T {
	out := set.Slice()
	slices.SortFunc(out, func(a, b T) int {
		sa, sb := fmt.Sprint(a), fmt.Sprint(b)
		switch {
		case sa == sb:
			return 0
		case natural.Less(sa, sb):
			return -1
		default:
			return 1
		}
	})
	return out
}
