// Package capi exposes the allow-listed subset of the LightGBM C API that
// the wrapper consumes. Methods mirror the C entry points one-to-one and
// return the raw C return code (0 means success); translating a non-zero
// code into an error via LastError is the caller's job, so that error
// semantics stay in one place.
//
// The real binding is cgo-backed and selected with the "lightgbm" build tag
// (run lgbm-fetch first to download headers and the shared library). Without
// the tag a stub is used whose calls all fail, which keeps the module
// buildable and testable on machines without the native library.
package capi

// Handle is an opaque reference to one loaded booster inside the native
// library's own memory. It refers to C-owned memory only, never to a Go
// pointer, so it is safe to hold outside the cgo layer.
type Handle uintptr

// Element type tags for dense matrix data, matching C_API_DTYPE_* in c_api.h.
const (
	DTypeFloat32 int32 = 0
	DTypeFloat64 int32 = 1
)

// Interface is the native call surface. A fake implementation stands in for
// the native library in tests.
type Interface interface {
	// BoosterCreateFromModelfile loads a model from a file on disk and
	// reports the booster's iteration count.
	BoosterCreateFromModelfile(filename string) (handle Handle, numIterations int32, ret int32)

	// BoosterLoadModelFromString loads a model from its text serialization.
	BoosterLoadModelFromString(model string) (handle Handle, numIterations int32, ret int32)

	// BoosterFree releases the native booster behind handle. The handle is
	// invalid afterwards.
	BoosterFree(handle Handle) int32

	BoosterGetNumFeature(handle Handle) (out int32, ret int32)
	BoosterGetNumClasses(handle Handle) (out int32, ret int32)

	// BoosterPredictForMat64 runs dense row-major prediction over float64
	// input. A nil out slice is the length-query phase of the C API's
	// two-phase protocol; outLen reports the required output length either
	// way. All boosting iterations are always used.
	BoosterPredictForMat64(handle Handle, data []float64, nrow, ncol, predictType int32, out []float64) (outLen int64, ret int32)

	// BoosterPredictForMat32 is BoosterPredictForMat64 for float32 input.
	// Results are float64 regardless of the input element width.
	BoosterPredictForMat32(handle Handle, data []float32, nrow, ncol, predictType int32, out []float64) (outLen int64, ret int32)

	// LastError returns the native library's last error message. The
	// underlying C string is owned by the library and copied here.
	LastError() string
}

// Default returns the process-wide implementation: the cgo-backed binding
// when built with the lightgbm tag, otherwise the failing stub.
func Default() Interface {
	return defaultAPI
}
