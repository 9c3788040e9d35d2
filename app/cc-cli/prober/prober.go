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
	"sort"
	"time"

	"github.com/codecheck/codecheck/lib/bufferpool"
	"github.com/codecheck/codecheck/lib/compress"
	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/errno"
	"github.com/codecheck/codecheck/lib/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

// Result is the outcome of probing one codec.
type Result struct {
	Codec          string  `json:"codec"`
	PayloadSize    int     `json:"payload_size"`
	Bound          int     `json:"bound"`
	CompressedSize int     `json:"compressed_size"`
	StreamSize     int     `json:"stream_size"`
	Ratio          float64 `json:"ratio"`
	DurationNs     int64   `json:"duration_ns"`
	Verified       bool    `json:"verified"`
	Error          string  `json:"error,omitempty"`

	err error
}

func (r *Result) Failed() bool {
	return r.err != nil
}

func (r *Result) Err() error {
	return r.err
}

type Prober struct {
	conf    config.Probe
	lg      *logger.Logger
	payload []byte
	digest  uint64
}

func NewProber(conf config.Probe) (*Prober, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	size, err := conf.PayloadBytes()
	if err != nil {
		return nil, err
	}

	payload, err := BuildPayload(conf.PayloadKind, size)
	if err != nil {
		return nil, err
	}

	return &Prober{
		conf:    conf,
		lg:      logger.NewLogger(errno.ModuleProbe),
		payload: payload,
		digest:  Digest(payload),
	}, nil
}

// Run probes every configured codec and returns one result per codec.
// The returned error reports how many probes failed; per-codec failures
// are carried in the results.
func (p *Prober) Run() ([]*Result, error) {
	goPool, err := ants.NewPool(p.conf.Workers())
	if err != nil {
		return nil, errno.NewThirdParty(err, errno.ModuleProbe)
	}
	defer goPool.Release()

	results := make([]*Result, len(p.conf.Codecs))
	errs := errno.NewErrs()
	errs.Init(len(p.conf.Codecs), nil)

	for i, name := range p.conf.Codecs {
		i, name := i, name
		submitErr := goPool.Submit(func() {
			results[i] = p.probeOne(compress.Algorithm(name))
			errs.Dispatch(nil)
		})
		if submitErr != nil {
			results[i] = &Result{Codec: name, err: errno.NewThirdParty(submitErr, errno.ModuleProbe)}
			errs.Dispatch(nil)
		}
	}
	_ = errs.Err()

	sort.Slice(results, func(i, j int) bool { return results[i].Codec < results[j].Codec })

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
			r.Error = r.err.Error()
			p.lg.Error("probe failed", zap.String("codec", r.Codec), zap.Error(r.err))
		}
	}
	if failed > 0 {
		return results, errno.NewError(errno.ProbeFailed, failed, len(results))
	}
	return results, nil
}

func (p *Prober) probeOne(name compress.Algorithm) *Result {
	res := &Result{
		Codec:       string(name),
		PayloadSize: len(p.payload),
	}

	codec, err := compress.GetCodec(name)
	if err != nil {
		res.err = err
		return res
	}

	res.Bound = codec.MaxCompressedLen(len(p.payload))

	start := time.Now()
	for round := 0; round < p.conf.Rounds; round++ {
		if res.err = p.runRound(codec, res); res.err != nil {
			return res
		}
	}
	res.DurationNs = time.Since(start).Nanoseconds() / int64(p.conf.Rounds)

	if res.CompressedSize > 0 {
		res.Ratio = float64(res.CompressedSize) / float64(res.PayloadSize)
	}

	p.lg.Debug("probe finished",
		zap.String("codec", res.Codec),
		zap.Int("bound", res.Bound),
		zap.Int("compressed", res.CompressedSize))
	return res
}

func (p *Prober) runRound(codec compress.Codec, res *Result) error {
	dst := bufferpool.GetWithSize(res.Bound)
	defer bufferpool.Put(dst)

	encoded, err := codec.Compress(dst, p.payload)
	if err != nil {
		return err
	}
	res.CompressedSize = len(encoded)

	if len(encoded) > res.Bound {
		return errno.NewError(errno.CompressedExceedsBound, len(encoded), res.Bound, codec.Name())
	}

	streamed, err := compress.StreamEncoding(codec.Name(), p.payload, nil)
	if err != nil {
		return err
	}
	res.StreamSize = len(streamed)

	if !p.conf.Verify {
		// link-smoke mode: compress and discard
		return nil
	}

	decoded, err := codec.Decompress(nil, encoded)
	if err != nil {
		return err
	}

	if got := Digest(decoded); got != p.digest {
		return errno.NewError(errno.RoundTripMismatch, codec.Name(), p.digest, got)
	}
	res.Verified = true
	return nil
}
