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

	"github.com/codecheck/codecheck/lib/config"
	"github.com/codecheck/codecheck/lib/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:          "cc-cli",
		Short:        "codecheck CLI tool",
		Long:         `cc-cli verifies that the compression codecs this toolchain links against actually work`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return probeCmd.RunE(cmd, args)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a cc-cli toml config file.")
}

// loadConfig builds the effective configuration: defaults, then config
// file, then environment, then any changed command line flags.
func loadConfig(cmd *cobra.Command) (*config.CodecCheck, error) {
	conf := config.NewCodecCheck()

	if err := config.Parse(conf, configPath); err != nil {
		return nil, err
	}
	if err := conf.ApplyEnvOverrides(os.Getenv); err != nil {
		return nil, err
	}
	applyProbeFlags(cmd, &conf.Probe)

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	conf.Logging.SetApp(config.AppCli)
	logger.InitLogger(conf.Logging)
	return conf, nil
}
