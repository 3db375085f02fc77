package fetch

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

// Options configure an acquisition run. Zero values mean "unspecified" and
// are filled from the environment and built-in defaults.
type Options struct {
	Version string `yaml:"version"`
	OutDir  string `yaml:"out_dir"`
	OS      string `yaml:"os"`
	Arch    string `yaml:"arch"`
}

// LoadConfig reads Options from a YAML file.
func LoadConfig(path string) (Options, error) {
	var opts Options
	b, err := os.ReadFile(path)
	if err != nil {
		return opts, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return opts, errors.Wrapf(err, "parsing config %s", path)
	}
	return opts, nil
}

func (o Options) withDefaults() Options {
	if o.Version == "" {
		o.Version = os.Getenv("LIGHTGBM_VERSION")
	}
	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if o.OutDir == "" {
		o.OutDir = "third_party"
	}
	host := Host()
	if o.OS == "" {
		o.OS = host.OS
	}
	if o.Arch == "" {
		o.Arch = host.Arch
	}
	return o
}

// Run performs one acquisition: headers into <out>/include/LightGBM/ and
// the shared library (plus the import library on Windows) into <out>/lib/.
// Any failure is final; the caller should treat it as a build failure.
func Run(ctx context.Context, opts Options, logger zerolog.Logger) error {
	opts = opts.withDefaults()
	platform := Platform{OS: opts.OS, Arch: opts.Arch}

	wheelURL, err := platform.WheelURL(opts.Version)
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", opts.Version).
		Str("platform", platform.String()).
		Str("out", opts.OutDir).
		Msg("acquiring LightGBM")

	includeDir := filepath.Join(opts.OutDir, "include", "LightGBM")
	libDir := filepath.Join(opts.OutDir, "lib")

	client := &http.Client{Timeout: 5 * time.Minute}

	if err := fetchHeaders(ctx, client, opts.Version, includeDir, logger); err != nil {
		return errors.Wrap(err, "downloading headers")
	}

	wheelPath := filepath.Join(opts.OutDir, "lightgbm.whl")
	logger.Info().Str("url", wheelURL).Msg("downloading release wheel")
	if err := downloadFile(ctx, client, wheelURL, wheelPath); err != nil {
		return errors.Wrap(err, "downloading release wheel")
	}
	defer os.Remove(wheelPath)

	names := platform.LibraryNames()
	if err := extractFromWheel(wheelPath, libDir, names); err != nil {
		return err
	}
	for _, n := range names {
		logger.Info().Str("library", filepath.Join(libDir, n)).Msg("extracted")
	}

	logger.Info().Msg("done; build with -tags lightgbm")
	return nil
}
