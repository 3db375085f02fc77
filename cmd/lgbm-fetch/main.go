// Command lgbm-fetch downloads the LightGBM C API headers and the prebuilt
// shared library for the host platform, laying them out under third_party/
// where the cgo binding expects them. Run it once before building with
// -tags lightgbm.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lightgbm-go/internal/fetch"
	"github.com/YuminosukeSato/lightgbm-go/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lgbm-fetch:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		version    string
		outDir     string
		targetOS   string
		targetArch string
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "lgbm-fetch",
		Short: "Download LightGBM headers and the prebuilt shared library",
		Long: `lgbm-fetch acquires the native artifacts the cgo binding links against:
the C API headers from the LightGBM source tree and the prebuilt shared
library extracted from the matching release wheel.

Version resolution order: --version, config file, LIGHTGBM_VERSION, ` + fetch.DefaultVersion + `.
Supported platforms: linux and darwin on amd64/arm64, windows on amd64.
Anything else fails hard; there are no upstream binaries to fall back to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := log.New(os.Stderr, level)

			var opts fetch.Options
			if configPath != "" {
				opts, err = fetch.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}

			// Explicit flags win over the config file.
			flags := cmd.Flags()
			if flags.Changed("version") {
				opts.Version = version
			}
			if flags.Changed("out") {
				opts.OutDir = outDir
			}
			if flags.Changed("os") {
				opts.OS = targetOS
			}
			if flags.Changed("arch") {
				opts.Arch = targetArch
			}

			return fetch.Run(cmd.Context(), opts, logger)
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "LightGBM release version (default: LIGHTGBM_VERSION or "+fetch.DefaultVersion+")")
	cmd.Flags().StringVar(&outDir, "out", "third_party", "output directory for include/ and lib/")
	cmd.Flags().StringVar(&targetOS, "os", "", "target OS override (GOOS name; default: host)")
	cmd.Flags().StringVar(&targetArch, "arch", "", "target architecture override (GOARCH name; default: host)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file with version/out_dir/os/arch")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")

	return cmd
}
