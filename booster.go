package lightgbm

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/YuminosukeSato/lightgbm-go/internal/capi"
	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

// Booster is a loaded LightGBM model. It owns exactly one native handle,
// which is released exactly once: either by an explicit Close or, failing
// that, by a finalizer when the Booster is garbage collected.
//
// A Booster must not be used from multiple goroutines at once. See the
// package documentation for the recommended patterns.
type Booster struct {
	api           capi.Interface
	handle        capi.Handle
	numIterations int
	closed        bool
}

// LoadFromFile loads a model from the text file written by LightGBM's
// save_model.
func LoadFromFile(path string) (*Booster, error) {
	return loadFromFile(capi.Default(), path)
}

// LoadFromString loads a model from its text serialization, the format
// produced by LightGBM's model_to_string.
func LoadFromString(model string) (*Booster, error) {
	return loadFromString(capi.Default(), model)
}

// LoadFromBuffer loads a model from raw bytes. The bytes must be the UTF-8
// text serialization of the model; invalid UTF-8 fails before any native
// call is attempted.
func LoadFromBuffer(buf []byte) (*Booster, error) {
	return loadFromBuffer(capi.Default(), buf)
}

func loadFromFile(api capi.Interface, path string) (*Booster, error) {
	if !utf8.ValidString(path) {
		return nil, errors.NewEncodingError("path", "contains invalid UTF-8")
	}
	if strings.ContainsRune(path, 0) {
		return nil, errors.NewEncodingError("path", "contains NUL byte")
	}
	handle, numIterations, ret := api.BoosterCreateFromModelfile(path)
	if err := checkRet(api, "LoadFromFile", ret); err != nil {
		return nil, err
	}
	return newBooster(api, handle, numIterations), nil
}

func loadFromString(api capi.Interface, model string) (*Booster, error) {
	if strings.ContainsRune(model, 0) {
		return nil, errors.NewEncodingError("model", "contains NUL byte")
	}
	handle, numIterations, ret := api.BoosterLoadModelFromString(model)
	if err := checkRet(api, "LoadFromString", ret); err != nil {
		return nil, err
	}
	return newBooster(api, handle, numIterations), nil
}

func loadFromBuffer(api capi.Interface, buf []byte) (*Booster, error) {
	if !utf8.Valid(buf) {
		return nil, errors.NewEncodingError("buffer", "contains invalid UTF-8")
	}
	return loadFromString(api, string(buf))
}

func newBooster(api capi.Interface, handle capi.Handle, numIterations int32) *Booster {
	b := &Booster{api: api, handle: handle, numIterations: int(numIterations)}
	runtime.SetFinalizer(b, func(b *Booster) { _ = b.Close() })
	return b
}

// Close releases the native handle. Calling Close more than once is safe;
// the native free happens exactly once. After Close every other method
// fails with a ClosedError.
func (b *Booster) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	runtime.SetFinalizer(b, nil)
	ret := b.api.BoosterFree(b.handle)
	b.handle = 0
	return checkRet(b.api, "Close", ret)
}

// NumFeatures returns the number of features the model was trained on.
// The native library is queried on every call.
func (b *Booster) NumFeatures() (int, error) {
	if b.closed {
		return 0, errors.NewClosedError("NumFeatures")
	}
	out, ret := b.api.BoosterGetNumFeature(b.handle)
	runtime.KeepAlive(b)
	if err := checkRet(b.api, "NumFeatures", ret); err != nil {
		return 0, err
	}
	return int(out), nil
}

// NumClasses returns the number of classes for classification models, or 1
// for regression models. The native library is queried on every call.
func (b *Booster) NumClasses() (int, error) {
	if b.closed {
		return 0, errors.NewClosedError("NumClasses")
	}
	out, ret := b.api.BoosterGetNumClasses(b.handle)
	runtime.KeepAlive(b)
	if err := checkRet(b.api, "NumClasses", ret); err != nil {
		return 0, err
	}
	return int(out), nil
}

// NumIterations returns the iteration count the native library reported
// when the model was loaded. No native call is made.
func (b *Booster) NumIterations() int {
	return b.numIterations
}

// checkRet is the single translation point for native failures: any
// non-zero return code becomes a NativeError carrying the library's
// last-error message. The message is read immediately because the native
// side only keeps the most recent one.
func checkRet(api capi.Interface, op string, ret int32) error {
	if ret == 0 {
		return nil
	}
	desc := api.LastError()
	if desc == "" || !utf8.ValidString(desc) {
		desc = "unknown error"
	}
	return errors.NewNativeError(op, desc)
}
