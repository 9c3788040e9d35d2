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

package version

import "fmt"

const (
	Major      = 1
	Minor      = 2
	PatchLevel = 2
)

// Packed returns the version as (major<<16)|(minor<<8)|patch, the layout
// native compression libraries expose through their version macros.
func Packed() int {
	return Major<<16 | Minor<<8 | PatchLevel
}

func String() string {
	return fmt.Sprintf("v%d.%d.%d", Major, Minor, PatchLevel)
}
