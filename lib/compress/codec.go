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

package compress

import (
	"sort"

	"github.com/codecheck/codecheck/lib/errno"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
)

type Algorithm string

const (
	Snappy Algorithm = "snappy"
	Lz4    Algorithm = "lz4"
	Zstd   Algorithm = "zstd"
	Gzip   Algorithm = "gzip"
)

// Codec compresses and decompresses whole blocks. Compress writes into the
// caller-provided buffer, which must be sized to at least MaxCompressedLen,
// and returns the filled slice.
type Codec interface {
	Name() Algorithm
	MaxCompressedLen(srcLen int) int
	Compress(dst, src []byte) ([]byte, error)
	Decompress(dst, src []byte) ([]byte, error)
}

type codecFunc func(in, out []byte) ([]byte, error)

type codec struct {
	name  Algorithm
	bound func(srcLen int) int
	enc   codecFunc
	dec   codecFunc
}

func (c *codec) Name() Algorithm {
	return c.name
}

func (c *codec) MaxCompressedLen(srcLen int) int {
	return c.bound(srcLen)
}

func (c *codec) Compress(dst, src []byte) ([]byte, error) {
	if bound := c.bound(len(src)); cap(dst) < bound {
		return nil, errno.NewError(errno.ShortCompressBuffer, bound, cap(dst))
	}
	return c.enc(src, dst[:0])
}

func (c *codec) Decompress(dst, src []byte) ([]byte, error) {
	return c.dec(src, dst[:0])
}

var codecs = map[Algorithm]Codec{
	Snappy: &codec{
		name:  Snappy,
		bound: snappy.MaxEncodedLen,
		enc:   SnappyEncoding,
		dec:   SnappyDecoding,
	},
	Lz4: &codec{
		name:  Lz4,
		bound: func(srcLen int) int { return lz4.CompressBlockBound(srcLen) + lz4HeaderSize },
		enc:   Lz4Encoding,
		dec:   Lz4Decoding,
	},
	Zstd: &codec{
		name:  Zstd,
		bound: zstdCompressBound,
		enc:   ZstdEncoding,
		dec:   ZstdDecoding,
	},
	Gzip: &codec{
		name:  Gzip,
		bound: gzipCompressBound,
		enc:   GzipEncoding,
		dec:   GzipDecoding,
	},
}

// zstdCompressBound mirrors ZSTD_COMPRESSBOUND with extra headroom for
// small inputs; the library exposes no bound function of its own
func zstdCompressBound(srcLen int) int {
	return srcLen + srcLen>>8 + 128
}

// gzipCompressBound covers deflate stored blocks (5 bytes per 64KB chunk)
// plus the gzip header and trailer
func gzipCompressBound(srcLen int) int {
	return srcLen + (srcLen/65535+1)*5 + 18 + 64
}

func GetCodec(name Algorithm) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, errno.NewError(errno.UnknownCodecAlgorithm, name)
	}
	return c, nil
}

func MaxEncodedLen(name Algorithm, srcLen int) (int, error) {
	c, err := GetCodec(name)
	if err != nil {
		return 0, err
	}
	return c.MaxCompressedLen(srcLen), nil
}

// Algorithms returns the registered codec names in stable order.
func Algorithms() []Algorithm {
	names := make([]Algorithm, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
