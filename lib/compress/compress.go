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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/codecheck/codecheck/lib/bufferpool"
	"github.com/codecheck/codecheck/lib/errno"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	// lz4 block header: 4-byte raw length plus a flag byte marking
	// incompressible payloads stored as-is
	lz4HeaderSize = 5

	lz4FlagCompressed = 0
	lz4FlagRaw        = 1
)

func SnappyEncoding(in []byte, out []byte) ([]byte, error) {
	pos := len(out)

	size := snappy.MaxEncodedLen(len(in))
	out = bufferpool.Resize(out, pos+size)
	buf := snappy.Encode(out[pos:], in)
	return out[:pos+len(buf)], nil
}

func SnappyDecoding(in, out []byte) ([]byte, error) {
	size, err := snappy.DecodedLen(in)
	if err != nil {
		return nil, errno.NewError(errno.InvalidCompressedData, Snappy, err)
	}

	out = bufferpool.Resize(out, size)
	out, err = snappy.Decode(out, in)
	if err != nil {
		return nil, errno.NewError(errno.FailedToDecompress, Snappy, err)
	}
	return out, nil
}

func Lz4Encoding(in []byte, out []byte) ([]byte, error) {
	pos := len(out)

	size := lz4.CompressBlockBound(len(in)) + lz4HeaderSize
	out = bufferpool.Resize(out, pos+size)
	binary.BigEndian.PutUint32(out[pos:], uint32(len(in)))

	var c lz4.Compressor
	n, err := c.CompressBlock(in, out[pos+lz4HeaderSize:])
	if err != nil {
		return nil, errno.NewError(errno.FailedToCompress, Lz4, err)
	}

	if n == 0 {
		// incompressible, store raw
		out[pos+4] = lz4FlagRaw
		out = bufferpool.Resize(out, pos+lz4HeaderSize+len(in))
		copy(out[pos+lz4HeaderSize:], in)
		return out, nil
	}

	out[pos+4] = lz4FlagCompressed
	return out[:pos+lz4HeaderSize+n], nil
}

func Lz4Decoding(in, out []byte) ([]byte, error) {
	if len(in) < lz4HeaderSize {
		return nil, errno.NewError(errno.InvalidCompressedData, Lz4, "block shorter than header")
	}

	size := int(binary.BigEndian.Uint32(in))
	flag := in[4]
	in = in[lz4HeaderSize:]

	pos := len(out)
	out = bufferpool.Resize(out, pos+size)

	if flag == lz4FlagRaw {
		if len(in) != size {
			return nil, errno.NewError(errno.InvalidCompressedData, Lz4, "raw block size mismatch")
		}
		copy(out[pos:], in)
		return out, nil
	}

	n, err := lz4.UncompressBlock(in, out[pos:])
	if err != nil {
		return nil, errno.NewError(errno.FailedToDecompress, Lz4, err)
	}
	return out[:pos+n], nil
}

var zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
var zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))

func ZstdEncoding(in []byte, out []byte) ([]byte, error) {
	return zstdEncoder.EncodeAll(in, out), nil
}

func ZstdDecoding(in, out []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(in, out)
	if err != nil {
		return nil, errno.NewError(errno.FailedToDecompress, Zstd, err)
	}
	return out, nil
}

func GzipEncoding(in []byte, out []byte) ([]byte, error) {
	sw := &sliceWriter{buf: out}
	gz, release := GetGzipWriter(sw)

	_, err := gz.Write(in)
	// release closes the writer, the gzip trailer is flushed into sw
	release()
	if err != nil {
		return nil, errno.NewError(errno.FailedToCompress, Gzip, err)
	}
	return sw.buf, nil
}

func GzipDecoding(in, out []byte) ([]byte, error) {
	zr, err := GetGzipReader(bytes.NewReader(in))
	if err != nil {
		return nil, errno.NewError(errno.InvalidCompressedData, Gzip, err)
	}
	defer PutGzipReader(zr)

	sw := &sliceWriter{buf: out}
	if _, err := io.Copy(sw, zr); err != nil {
		return nil, errno.NewError(errno.FailedToDecompress, Gzip, err)
	}
	return sw.buf, nil
}

type sliceWriter struct {
	buf []byte
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}
