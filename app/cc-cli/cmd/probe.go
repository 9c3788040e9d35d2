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
	"os"

	"github.com/codecheck/codecheck/app/cc-cli/prober"
	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/logger"
	"github.com/spf13/cobra"
)

var (
	probeFlags = config.NewProbe()
	noVerify   bool
)

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringSliceVarP(&probeFlags.Codecs, "codecs", "c", probeFlags.Codecs, "codecs to probe.")
	probeCmd.Flags().StringVar(&probeFlags.PayloadKind, "payload-kind", probeFlags.PayloadKind, "payload kind: text, random or zero.")
	probeCmd.Flags().StringVar(&probeFlags.PayloadSize, "payload-size", probeFlags.PayloadSize, `payload size, eg, "13B" or "64kb".`)
	probeCmd.Flags().IntVar(&probeFlags.Rounds, "rounds", probeFlags.Rounds, "compression rounds per codec.")
	probeCmd.Flags().IntVar(&probeFlags.Concurrency, "concurrency", probeFlags.Concurrency, "probe workers, 0 means one per codec capped by cpu.")
	probeCmd.Flags().BoolVar(&noVerify, "no-verify", false, "compress and discard without round-trip verification.")
	probeCmd.Flags().StringVar(&probeFlags.Format, "format", probeFlags.Format, "report format: table or json.")
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe the linked compression codecs",
	Long:  `Compute the worst-case bound, raw-compress a payload into a buffer sized to it, and verify the round trip for every selected codec`,
	Example: `
$ cc-cli probe
$ cc-cli probe --codecs snappy,zstd --payload-kind random --payload-size 64kb`,
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

		return runProbe(conf.Probe)
	},
}

func runProbe(conf config.Probe) error {
	p, err := prober.NewProber(conf)
	if err != nil {
		return err
	}

	results, runErr := p.Run()
	if err := prober.WriteReport(os.Stdout, conf.Format, results); err != nil {
		return err
	}
	return runErr
}

func applyProbeFlags(cmd *cobra.Command, conf *config.Probe) {
	f := cmd.Flags()

	if f.Changed("codecs") {
		conf.Codecs = probeFlags.Codecs
	}
	if f.Changed("payload-kind") {
		conf.PayloadKind = probeFlags.PayloadKind
	}
	if f.Changed("payload-size") {
		conf.PayloadSize = probeFlags.PayloadSize
	}
	if f.Changed("rounds") {
		conf.Rounds = probeFlags.Rounds
	}
	if f.Changed("concurrency") {
		conf.Concurrency = probeFlags.Concurrency
	}
	if f.Changed("no-verify") {
		conf.Verify = !noVerify
	}
	if f.Changed("format") {
		conf.Format = probeFlags.Format
	}
}
