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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Operations(t *testing.T) {
	a := NewSet(1, 2, 3, 4)
	b := NewSet(3, 4, 5, 6)

	tests := []struct {
		name string
		got  Set[int]
		want Set[int]
	}{
		{name: "union", got: a.Union(b), want: NewSet(1, 2, 3, 4, 5, 6)},
		{name: "intersection", got: a.Intersect(b), want: NewSet(3, 4)},
		{name: "difference", got: a.Difference(b), want: NewSet(1, 2)},
		{name: "symmetric difference", got: a.SymmetricDifference(b), want: NewSet(1, 2, 5, 6)},
		{name: "difference with empty", got: a.Difference(NewSet[int]()), want: a.Clone()},
		{name: "intersection with empty", got: a.Intersect(NewSet[int]()), want: NewSet[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	// Operands must be left untouched.
	assert.Equal(t, NewSet(1, 2, 3, 4), a)
	assert.Equal(t, NewSet(3, 4, 5, 6), b)
}

func TestSet_Basics(t *testing.T) {
	s := NewSet("x", "y", "x")
	assert.Equal(t, 2, s.Len(), "NewSet deduplicates")
	assert.True(t, s.Contains("x"))
	assert.False(t, s.Contains("z"))

	s.Add("z")
	assert.True(t, s.Contains("z"))

	clone := s.Clone()
	clone.Add("w")
	assert.False(t, s.Contains("w"), "Clone is detached")

	assert.ElementsMatch(t, []string{"x", "y", "z"}, s.Slice())
}
