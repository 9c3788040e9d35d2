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

package bufferpool

import (
	"sync"
	"sync/atomic"

	"github.com/codecheck/codecheck/lib/cpu"
)

const (
	maxDefaultSize    = 1024 * 1024 // 1M
	minDefaultSize    = 64
	MaxLocalCacheLen  = 8
	MaxLocalCacheSize = 32 * 1024 * 1024 // 32M
)

type Pool struct {
	defaultSize uint64
	pool        sync.Pool
	localCache  chan []byte
}

var defaultPool = NewByteBufferPool(0, cpu.GetCpuNum(), MaxLocalCacheLen)

func NewByteBufferPool(defaultSize uint64, localCacheNum int, maxCacheLen int) *Pool {
	if defaultSize > maxDefaultSize {
		defaultSize = maxDefaultSize
	}
	if defaultSize < minDefaultSize {
		defaultSize = minDefaultSize
	}
	var n int
	if localCacheNum == 0 {
		n = cpu.GetCpuNum()
	} else {
		n = localCacheNum
	}
	if n > maxCacheLen {
		n = maxCacheLen
	}
	return &Pool{defaultSize: defaultSize, localCache: make(chan []byte, n)}
}

func Get() []byte {
	return defaultPool.Get()
}

func Put(b []byte) {
	defaultPool.Put(b)
}

func GetWithSize(size int) []byte {
	buf := defaultPool.Get()
	if size > 0 {
		buf = Resize(buf, size)
	}
	return buf
}

func (p *Pool) Get() []byte {
	select {
	case bb := <-p.localCache:
		return bb
	default:
		v, ok := p.pool.Get().([]byte)
		if ok {
			return v
		}
		return make([]byte, 0, atomic.LoadUint64(&p.defaultSize))
	}
}

func (p *Pool) Put(b []byte) {
	b = b[:0]
	if cap(b) > MaxLocalCacheSize {
		p.pool.Put(b) //nolint:staticcheck
		return
	}

	select {
	case p.localCache <- b:
	default:
		p.pool.Put(b) //nolint:staticcheck
	}
}

func Resize(b []byte, n int) []byte {
	if nn := n - cap(b); nn > 0 {
		b = append(b[:cap(b)], make([]byte, nn)...)
	}
	return b[:n]
}
