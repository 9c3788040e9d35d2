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

package cmd

import (
	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/logger"
	"github.com/spf13/cobra"
)

const (
	DefaultBenchRounds      = 16
	DefaultBenchPayloadSize = "1mb"
)

func init() {
	rootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the linked compression codecs",
	Long:  `Run multiple compression rounds per codec on a large random payload and report sizes and timings`,
	Example: `
$ cc-cli bench
$ cc-cli bench --config /etc/codecheck/cc.conf`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd:   true,
		DisableDescriptions: true,
		DisableNoDescFlag:   true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer logger.CloseLogger()

		// bench defaults differ from probe, keep explicit settings
		if conf.Probe.Rounds == config.DefaultRounds {
			conf.Probe.Rounds = DefaultBenchRounds
		}
		if n, err := conf.Probe.PayloadBytes(); err == nil && n == config.DefaultPayloadSize {
			conf.Probe.PayloadKind = config.PayloadRandom
			conf.Probe.PayloadSize = DefaultBenchPayloadSize
		}

		return runProbe(conf.Probe)
	},
}
