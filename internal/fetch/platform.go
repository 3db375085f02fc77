// Package fetch implements the build-time acquisition step: it resolves a
// LightGBM release version, downloads the C API headers and the prebuilt
// shared library for the host platform, and lays them out where the cgo
// binding's link directives expect them. Acquisition failures are fatal to
// the build; nothing here runs at prediction time.
package fetch

import (
	"fmt"
	"runtime"

	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

// DefaultVersion is the LightGBM release fetched when no version is
// selected via flag, config file, or the LIGHTGBM_VERSION environment
// variable.
const DefaultVersion = "4.6.0"

// Platform identifies an OS/architecture combination in GOOS/GOARCH terms.
type Platform struct {
	OS   string
	Arch string
}

// Host returns the platform of the running toolchain.
func Host() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// wheelTags maps each supported platform to the tag of the upstream release
// wheel that carries its prebuilt shared library. Windows is amd64-only;
// upstream publishes no arm64 or 32-bit Windows binaries.
var wheelTags = map[Platform]string{
	{OS: "darwin", Arch: "amd64"}:  "macosx_10_15_x86_64",
	{OS: "darwin", Arch: "arm64"}:  "macosx_12_0_arm64",
	{OS: "linux", Arch: "amd64"}:   "manylinux_2_28_x86_64",
	{OS: "linux", Arch: "arm64"}:   "manylinux2014_aarch64",
	{OS: "windows", Arch: "amd64"}: "win_amd64",
}

// Supported reports whether upstream publishes prebuilt binaries for p.
func (p Platform) Supported() bool {
	_, ok := wheelTags[p]
	return ok
}

// WheelURL returns the release wheel URL for p. Unsupported combinations
// are a hard failure; there is nothing sensible to fall back to.
func (p Platform) WheelURL(version string) (string, error) {
	tag, ok := wheelTags[p]
	if !ok {
		return "", errors.Newf("unsupported platform/architecture combination: %s (supported: darwin and linux on amd64/arm64, windows on amd64)", p)
	}
	return fmt.Sprintf("%s/v%s/lightgbm-%s-py3-none-%s.whl", releaseBase, version, version, tag), nil
}

// LibraryNames returns the artifacts to extract from the wheel for p. On
// Windows the import library is needed at link time alongside the DLL.
func (p Platform) LibraryNames() []string {
	switch p.OS {
	case "darwin":
		return []string{"lib_lightgbm.dylib"}
	case "windows":
		return []string{"lib_lightgbm.dll", "lib_lightgbm.lib"}
	default:
		return []string{"lib_lightgbm.so"}
	}
}

// Header is one file from the upstream include/LightGBM directory.
// Optional headers only exist in some releases: arrow.h and arrow.tpp were
// added in v4.2.0 and their absence is tolerated for older versions.
type Header struct {
	Name     string
	Required bool
}

// Headers lists the headers the binding needs, in include/LightGBM/.
func Headers() []Header {
	return []Header{
		{Name: "c_api.h", Required: true},
		{Name: "export.h", Required: true},
		{Name: "arrow.h", Required: false},
		{Name: "arrow.tpp", Required: false},
	}
}

// HeaderURL returns the raw source URL of a header at the given release.
func HeaderURL(version, name string) string {
	return fmt.Sprintf("%s/v%s/include/LightGBM/%s", rawBase, version, name)
}

// Overridable in tests.
var (
	releaseBase = "https://github.com/microsoft/LightGBM/releases/download"
	rawBase     = "https://raw.githubusercontent.com/microsoft/LightGBM"
)
