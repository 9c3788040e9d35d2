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

package config

import (
	"strings"

	"github.com/codecheck/codecheck/lib/cpu"
	"github.com/codecheck/codecheck/lib/errno"
	"github.com/docker/go-units"
)

const (
	PayloadText   = "text"
	PayloadRandom = "random"
	PayloadZero   = "zero"

	// DefaultPayloadSize matches the length of the classic smoke payload
	DefaultPayloadSize = 13

	DefaultRounds = 1

	FormatTable = "table"
	FormatJSON  = "json"
)

var DefaultCodecs = []string{"snappy", "lz4", "zstd", "gzip"}

// Probe holds the settings of a single probe run.
type Probe struct {
	Codecs      []string `toml:"codecs"`
	PayloadKind string   `toml:"payload-kind"`
	PayloadSize string   `toml:"payload-size"`
	Rounds      int      `toml:"rounds"`
	Concurrency int      `toml:"concurrency"`
	Verify      bool     `toml:"verify"`
	Format      string   `toml:"format"`
}

func NewProbe() Probe {
	return Probe{
		Codecs:      DefaultCodecs,
		PayloadKind: PayloadText,
		PayloadSize: units.HumanSize(DefaultPayloadSize),
		Rounds:      DefaultRounds,
		Concurrency: 0, // 0 means min(len(codecs), cpu num)
		Verify:      true,
		Format:      FormatTable,
	}
}

func (c Probe) Validate() error {
	if len(c.Codecs) == 0 {
		return errno.NewError(errno.NoCodecSelected)
	}

	switch c.PayloadKind {
	case PayloadText, PayloadRandom, PayloadZero:
	default:
		return errno.NewError(errno.InvalidPayloadKind, c.PayloadKind)
	}

	if _, err := c.PayloadBytes(); err != nil {
		return err
	}

	if c.Rounds <= 0 {
		return errno.NewError(errno.InvalidRounds, c.Rounds)
	}

	if c.Concurrency < 0 {
		return errno.NewError(errno.InvalidConcurrency, c.Concurrency)
	}

	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return errno.NewError(errno.InternalError, "format must be table or json")
	}

	return nil
}

// PayloadBytes parses the payload size, accepting human-readable
// forms such as "64kb" or "4MiB".
func (c Probe) PayloadBytes() (int, error) {
	n, err := units.RAMInBytes(strings.TrimSpace(c.PayloadSize))
	if err != nil || n <= 0 {
		return 0, errno.NewError(errno.InvalidPayloadSize, c.PayloadSize)
	}
	return int(n), nil
}

// Workers resolves the effective probe concurrency.
func (c Probe) Workers() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	n := len(c.Codecs)
	if cn := cpu.GetCpuNum(); cn < n {
		n = cn
	}
	if n < 1 {
		n = 1
	}
	return n
}

// CodecCheck represents the cc-cli configuration file format.
type CodecCheck struct {
	Logging Logger `toml:"logging"`
	Probe   Probe  `toml:"probe"`
}

func NewCodecCheck() *CodecCheck {
	return &CodecCheck{
		Logging: NewLogger(AppCli),
		Probe:   NewProbe(),
	}
}

func (c *CodecCheck) ApplyEnvOverrides(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	if v := getenv("CC_PAYLOAD_SIZE"); v != "" {
		c.Probe.PayloadSize = v
	}
	if v := getenv("CC_PAYLOAD_KIND"); v != "" {
		c.Probe.PayloadKind = v
	}
	if v := getenv("CC_CODECS"); v != "" {
		c.Probe.Codecs = splitCodecs(v)
	}
	return nil
}

func (c *CodecCheck) Validate() error {
	items := []Validator{
		c.Logging,
		c.Probe,
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c *CodecCheck) GetLogging() *Logger {
	return &c.Logging
}

func splitCodecs(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}
