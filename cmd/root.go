/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"fmt"
	"io"
	"log/slog"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gotab/quadrature"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gotab",
	Short: "Vector finite element and quadrature tabulation",
	Long: `
Builds Nedelec (first and second kind) and Raviart-Thomas elements on the
reference triangle and tetrahedron, and the quadrature rules they rely on.

gotab element --family N1curl --cell tetrahedron --degree 2`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		var logger *slog.Logger
		if logger, err = newLogger(viper.GetString("log.level"), cmd.ErrOrStderr()); err != nil {
			return
		}
		slog.SetDefault(logger)
		if viper.GetBool("profile") {
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		}
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gotab.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile to the working directory")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.SetDefault("newton.tolerance", quadrature.DefaultNewtonTolerance)
	viper.SetDefault("newton.maxIterations", quadrature.DefaultNewtonMaxIterations)
	viper.SetDefault("newton.strict", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gotab" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gotab")
	}
	viper.SetEnvPrefix("gotab")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(level string, w io.Writer) (logger *slog.Logger, err error) {
	var lvl slog.Level
	if err = lvl.UnmarshalText([]byte(level)); err != nil {
		err = fmt.Errorf("invalid log level %q: %w", level, err)
		return
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return
}

// newtonSettings reads the Newton iteration settings from the config
func newtonSettings() quadrature.Settings {
	return quadrature.Settings{
		Tolerance:     viper.GetFloat64("newton.tolerance"),
		MaxIterations: viper.GetInt("newton.maxIterations"),
		Strict:        viper.GetBool("newton.strict"),
	}
}
