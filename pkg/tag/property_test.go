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
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// drawScope generates a scope with a handful of extensional int tags.
func drawScope(rt *rapid.T) (*Scope[int], []string) {
	scope := New[int]()
	count := rapid.IntRange(2, 5).Draw(rt, "tagCount")
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		name := fmt.Sprintf("t%d", i)
		members := rapid.SliceOfN(rapid.IntRange(0, 20), 0, 10).Draw(rt, name+"_members")
		_, err := scope.Define(name, members...)
		require.NoError(rt, err)
		names = append(names, name)
	}
	return scope, names
}

func drawTagName(rt *rapid.T, names []string, label string) string {
	return rapid.SampledFrom(names).Draw(rt, label)
}

func evaluate(rt *rapid.T, scope *Scope[int], expr string) []int {
	got, err := scope.Evaluate(expr)
	require.NoError(rt, err, "expression %q", expr)
	return got
}

func TestEvaluate_UnionAndIntersectionAreCommutative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scope, names := drawScope(rt)
		a := drawTagName(rt, names, "a")
		b := drawTagName(rt, names, "b")

		for _, op := range []string{"|", "&"} {
			ab := evaluate(rt, scope, fmt.Sprintf("%s %s %s", a, op, b))
			ba := evaluate(rt, scope, fmt.Sprintf("%s %s %s", b, op, a))
			require.Equal(rt, ab, ba, "operator %s", op)
		}
	})
}

func TestEvaluate_UnionAndIntersectionAreAssociative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scope, names := drawScope(rt)
		a := drawTagName(rt, names, "a")
		b := drawTagName(rt, names, "b")
		c := drawTagName(rt, names, "c")

		for _, op := range []string{"|", "&"} {
			left := evaluate(rt, scope, fmt.Sprintf("(%s %s %s) %s %s", a, op, b, op, c))
			right := evaluate(rt, scope, fmt.Sprintf("%s %s (%s %s %s)", a, op, b, op, c))
			require.Equal(rt, left, right, "operator %s", op)
		}
	})
}

func TestEvaluate_SelfDifferenceAndSelfSymmetricDifferenceAreEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scope, names := drawScope(rt)
		a := drawTagName(rt, names, "a")

		require.Empty(rt, evaluate(rt, scope, fmt.Sprintf("%s - %s", a, a)))
		require.Empty(rt, evaluate(rt, scope, fmt.Sprintf("%s ^ %s", a, a)))
	})
}

func TestEvaluate_DefaultTagIsUnionOfAllTags(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scope, names := drawScope(rt)

		union := NewSet[int]()
		for _, name := range names {
			members, err := scope.EvaluateRaw(name)
			require.NoError(rt, err)
			union = union.Union(members)
		}

		require.Equal(rt, scope.Sorted(union), evaluate(rt, scope, "all"))
	})
}

func TestEvaluate_ResultIsSortedAndDeduplicated(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scope, names := drawScope(rt)
		a := drawTagName(rt, names, "a")
		b := drawTagName(rt, names, "b")

		got := evaluate(rt, scope, fmt.Sprintf("%s | %s", a, b))
		for i := 1; i < len(got); i++ {
			require.Less(rt, got[i-1], got[i], "result must be strictly increasing")
		}
	})
}

func TestEvaluate_CompositeEqualsInlineExpression(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		scope, names := drawScope(rt)
		a := drawTagName(rt, names, "a")
		b := drawTagName(rt, names, "b")
		op := rapid.SampledFrom([]string{"|", "&", "-", "^"}).Draw(rt, "op")

		expr := fmt.Sprintf("%s %s %s", a, op, b)
		_, err := scope.DefineExpr("combo", expr)
		require.NoError(rt, err)

		require.Equal(rt, evaluate(rt, scope, expr), evaluate(rt, scope, "combo"))
	})
}
