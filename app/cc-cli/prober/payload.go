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

package prober

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/errno"
)

// SmokeText is the classic payload of compression link checks.
const SmokeText = "Hello Snappy!"

func BuildPayload(kind string, size int) ([]byte, error) {
	if size <= 0 {
		return nil, errno.NewError(errno.InvalidPayloadSize, size)
	}

	buf := make([]byte, size)
	switch kind {
	case config.PayloadText:
		for i := 0; i < size; i += len(SmokeText) {
			copy(buf[i:], SmokeText)
		}
	case config.PayloadZero:
		// already zeroed
	case config.PayloadRandom:
		rand.New(rand.NewSource(int64(size))).Read(buf)
	default:
		return nil, errno.NewError(errno.InvalidPayloadKind, kind)
	}
	return buf, nil
}

func Digest(b []byte) uint64 {
	return xxhash.Sum64(b)
}
