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

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/codecheck/codecheck/app/cc-cli/cmd"
	"github.com/codecheck/codecheck/lib/version"
)

var (
	CcCommit string
	CcBranch string
)

func main() {
	doRun(os.Args[1:]...)
}

func doRun(args ...string) {
	if len(args) > 0 && args[0] == "version" {
		fmt.Printf("cc-cli %s (packed %#06x) %s %s %s/%s\n",
			version.String(), version.Packed(), CcBranch, CcCommit, runtime.GOOS, runtime.GOARCH)
		return
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
