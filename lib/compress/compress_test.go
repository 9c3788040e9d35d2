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

package compress_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/codecheck/codecheck/lib/bufferpool"
	"github.com/codecheck/codecheck/lib/compress"
	"github.com/codecheck/codecheck/lib/errno"
	"github.com/stretchr/testify/require"
)

type codecFunc func(in []byte, out []byte) ([]byte, error)

var textData = bytes.Repeat([]byte("Hello Snappy!"), 100)
var zeroData = make([]byte, 4096)
var randData = make([]byte, 4096)

func init() {
	r := rand.New(rand.NewSource(42))
	r.Read(randData)
}

func runCodecTest(t *testing.T, enc codecFunc, dec codecFunc, data []byte) {
	encBuf, err := enc(data, nil)
	require.NoError(t, err)

	decBuf, err := dec(encBuf, nil)
	require.NoError(t, err)
	require.Equal(t, data, decBuf)
}

func TestSnappy(t *testing.T) {
	runCodecTest(t, compress.SnappyEncoding, compress.SnappyDecoding, textData)
	runCodecTest(t, compress.SnappyEncoding, compress.SnappyDecoding, zeroData)
	runCodecTest(t, compress.SnappyEncoding, compress.SnappyDecoding, randData)
}

func TestLz4(t *testing.T) {
	runCodecTest(t, compress.Lz4Encoding, compress.Lz4Decoding, textData)
	runCodecTest(t, compress.Lz4Encoding, compress.Lz4Decoding, zeroData)
	// random data is incompressible and exercises the raw fallback
	runCodecTest(t, compress.Lz4Encoding, compress.Lz4Decoding, randData)
}

func TestZstd(t *testing.T) {
	runCodecTest(t, compress.ZstdEncoding, compress.ZstdDecoding, textData)
	runCodecTest(t, compress.ZstdEncoding, compress.ZstdDecoding, zeroData)
	runCodecTest(t, compress.ZstdEncoding, compress.ZstdDecoding, randData)
}

func TestGzip(t *testing.T) {
	runCodecTest(t, compress.GzipEncoding, compress.GzipDecoding, textData)
	runCodecTest(t, compress.GzipEncoding, compress.GzipDecoding, zeroData)
	runCodecTest(t, compress.GzipEncoding, compress.GzipDecoding, randData)
}

func TestCodecRoundTrip(t *testing.T) {
	for _, name := range compress.Algorithms() {
		codec, err := compress.GetCodec(name)
		require.NoError(t, err)

		for _, data := range [][]byte{textData, zeroData, randData} {
			bound := codec.MaxCompressedLen(len(data))
			require.GreaterOrEqual(t, bound, len(data)/2)

			dst := bufferpool.GetWithSize(bound)
			encoded, err := codec.Compress(dst, data)
			require.NoError(t, err)
			require.LessOrEqual(t, len(encoded), bound)

			decoded, err := codec.Decompress(nil, encoded)
			require.NoError(t, err)
			require.Equal(t, data, decoded)
			bufferpool.Put(dst)
		}
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, name := range compress.Algorithms() {
		codec, err := compress.GetCodec(name)
		require.NoError(t, err)

		dst := bufferpool.GetWithSize(codec.MaxCompressedLen(0))
		encoded, err := codec.Compress(dst, nil)
		require.NoError(t, err)

		decoded, err := codec.Decompress(nil, encoded)
		require.NoError(t, err)
		require.Empty(t, decoded)
		bufferpool.Put(dst)
	}
}

func TestCompressShortBuffer(t *testing.T) {
	codec, err := compress.GetCodec(compress.Snappy)
	require.NoError(t, err)

	_, err = codec.Compress(make([]byte, 0, 4), textData)
	require.True(t, errno.Equal(err, errno.ShortCompressBuffer))
}

func TestUnknownCodec(t *testing.T) {
	_, err := compress.GetCodec("lzo")
	require.True(t, errno.Equal(err, errno.UnknownCodecAlgorithm))

	_, err = compress.MaxEncodedLen("lzo", 16)
	require.True(t, errno.Equal(err, errno.UnknownCodecAlgorithm))
}

func TestMaxEncodedLenMonotone(t *testing.T) {
	for _, name := range compress.Algorithms() {
		prev := 0
		for _, srcLen := range []int{0, 13, 64, 4096, 1 << 20} {
			bound, err := compress.MaxEncodedLen(name, srcLen)
			require.NoError(t, err)
			require.GreaterOrEqual(t, bound, srcLen)
			require.Greater(t, bound, prev)
			prev = bound
		}
	}
}

func TestDecodeCorruptData(t *testing.T) {
	corrupt := []byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa}

	_, err := compress.SnappyDecoding(corrupt, nil)
	require.Error(t, err)

	_, err = compress.Lz4Decoding(corrupt[:3], nil)
	require.True(t, errno.Equal(err, errno.InvalidCompressedData))

	_, err = compress.ZstdDecoding(corrupt, nil)
	require.Error(t, err)

	_, err = compress.GzipDecoding(corrupt, nil)
	require.Error(t, err)
}

func runBenchmark(b *testing.B, enc codecFunc, data []byte) {
	b.SetBytes(int64(len(data)))
	var out []byte
	for i := 0; i < b.N; i++ {
		var err error
		out, err = enc(data, out[:0])
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnappyEncoding(b *testing.B) {
	runBenchmark(b, compress.SnappyEncoding, randData)
}

func BenchmarkLz4Encoding(b *testing.B) {
	runBenchmark(b, compress.Lz4Encoding, randData)
}

func BenchmarkZstdEncoding(b *testing.B) {
	runBenchmark(b, compress.ZstdEncoding, randData)
}

func BenchmarkGzipEncoding(b *testing.B) {
	runBenchmark(b, compress.GzipEncoding, randData)
}
