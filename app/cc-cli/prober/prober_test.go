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

package prober_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/codecheck/codecheck/app/cc-cli/prober"
	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/errno"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	buf, err := prober.BuildPayload(config.PayloadText, 13)
	require.NoError(t, err)
	require.Equal(t, []byte(prober.SmokeText), buf)

	buf, err = prober.BuildPayload(config.PayloadText, 20)
	require.NoError(t, err)
	require.Equal(t, []byte("Hello Snappy!Hello S"), buf)

	buf, err = prober.BuildPayload(config.PayloadZero, 16)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), buf)

	buf, err = prober.BuildPayload(config.PayloadRandom, 128)
	require.NoError(t, err)
	require.Len(t, buf, 128)

	_, err = prober.BuildPayload("fibonacci", 16)
	require.True(t, errno.Equal(err, errno.InvalidPayloadKind))

	_, err = prober.BuildPayload(config.PayloadText, 0)
	require.True(t, errno.Equal(err, errno.InvalidPayloadSize))
}

func TestDigestStable(t *testing.T) {
	a := prober.Digest([]byte(prober.SmokeText))
	b := prober.Digest([]byte(prober.SmokeText))
	require.Equal(t, a, b)
	require.NotEqual(t, a, prober.Digest([]byte("Hello Snappy?")))
}

func TestProbeDefaults(t *testing.T) {
	p, err := prober.NewProber(config.NewProbe())
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)
	require.Len(t, results, len(config.DefaultCodecs))

	for _, r := range results {
		require.False(t, r.Failed(), "codec %s: %s", r.Codec, r.Error)
		require.True(t, r.Verified)
		require.LessOrEqual(t, r.CompressedSize, r.Bound)
		require.Equal(t, config.DefaultPayloadSize, r.PayloadSize)
		require.Positive(t, r.StreamSize)
	}
}

func TestProbeNoVerify(t *testing.T) {
	conf := config.NewProbe()
	conf.Verify = false
	conf.Codecs = []string{"snappy"}

	p, err := prober.NewProber(conf)
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.False(t, results[0].Verified)
	require.False(t, results[0].Failed())
}

func TestProbeUnknownCodec(t *testing.T) {
	conf := config.NewProbe()
	conf.Codecs = []string{"snappy", "lzo"}

	p, err := prober.NewProber(conf)
	require.NoError(t, err)

	results, err := p.Run()
	require.True(t, errno.Equal(err, errno.ProbeFailed))
	require.Len(t, results, 2)

	for _, r := range results {
		if r.Codec == "lzo" {
			require.True(t, r.Failed())
			require.True(t, errno.Equal(r.Err(), errno.UnknownCodecAlgorithm))
		} else {
			require.False(t, r.Failed())
		}
	}
}

func TestProbeLargePayloadRounds(t *testing.T) {
	conf := config.NewProbe()
	conf.PayloadKind = config.PayloadRandom
	conf.PayloadSize = "64kb"
	conf.Rounds = 3
	conf.Concurrency = 2

	p, err := prober.NewProber(conf)
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)
	for _, r := range results {
		require.Equal(t, 64*1024, r.PayloadSize)
		require.True(t, r.Verified)
	}
}

func TestProbeInvalidConfig(t *testing.T) {
	conf := config.NewProbe()
	conf.Codecs = nil
	_, err := prober.NewProber(conf)
	require.True(t, errno.Equal(err, errno.NoCodecSelected))
}

func TestWriteReportTable(t *testing.T) {
	conf := config.NewProbe()
	conf.Codecs = []string{"snappy"}
	p, err := prober.NewProber(conf)
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, prober.WriteReport(&buf, config.FormatTable, results))
	out := buf.String()
	require.Contains(t, out, "snappy")
	require.Contains(t, strings.ToLower(out), "bound")
}

func TestWriteReportJSON(t *testing.T) {
	conf := config.NewProbe()
	conf.Codecs = []string{"lz4"}
	p, err := prober.NewProber(conf)
	require.NoError(t, err)

	results, err := p.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, prober.WriteReport(&buf, config.FormatJSON, results))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "lz4", decoded[0]["codec"])

	require.Error(t, prober.WriteReport(&buf, "yaml", results))
}
