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
	"strings"

	"github.com/tombee/tagscope/pkg/errors"
)

// GenerateID derives a referenceable tag name from an arbitrary label.
//
// The label is lowercased and every run of characters outside [a-z0-9]
// is dropped (normalized) or collapsed to a single underscore
// (non-normalized), with leading and trailing underscores stripped.
// Names that would start with a digit get an underscore prefix.
//
//	GenerateID("Any user-defined string", false) == "any_user_defined_string"
//	GenerateID("Any user-defined string", true)  == "anyuserdefinedstring"
//	GenerateID("42", false)                      == "_42"
//
// A NameError is returned when nothing remains after normalization.
func GenerateID(label string, normalized bool) (string, error) {
	replacement := "_"
	if normalized {
		replacement = ""
	}
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteString(replacement)
			}
			pending = false
			b.WriteRune(r)
		} else {
			pending = true
		}
	}
	id := b.String()
	if id == "" {
		return "", &errors.NameError{
			Name:   label,
			Reason: "nothing remains of the label after normalization",
		}
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id, nil
}
