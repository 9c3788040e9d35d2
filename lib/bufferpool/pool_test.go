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

package bufferpool_test

import (
	"testing"

	"github.com/codecheck/codecheck/lib/bufferpool"
	"github.com/stretchr/testify/require"
)

func TestResize(t *testing.T) {
	b := make([]byte, 0, 8)
	b = bufferpool.Resize(b, 32)
	require.Equal(t, 32, len(b))
	require.GreaterOrEqual(t, cap(b), 32)

	b = bufferpool.Resize(b, 4)
	require.Equal(t, 4, len(b))
}

func TestPoolReuse(t *testing.T) {
	p := bufferpool.NewByteBufferPool(128, 1, 8)

	buf := p.Get()
	require.Equal(t, 0, len(buf))
	require.GreaterOrEqual(t, cap(buf), 128)

	buf = append(buf, []byte("Hello Snappy!")...)
	p.Put(buf)

	got := p.Get()
	require.Equal(t, 0, len(got))
}

func TestGetWithSize(t *testing.T) {
	buf := bufferpool.GetWithSize(1024)
	require.Equal(t, 1024, len(buf))
	bufferpool.Put(buf)
}
