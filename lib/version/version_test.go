/*
Copyright 2024 The codecheck Authors

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

package version_test

import (
	"testing"

	"github.com/codecheck/codecheck/lib/version"
	"github.com/stretchr/testify/require"
)

func TestPacked(t *testing.T) {
	exp := version.Major<<16 | version.Minor<<8 | version.PatchLevel
	require.Equal(t, exp, version.Packed())
}

func TestString(t *testing.T) {
	require.Equal(t, "v1.2.2", version.String())
}
