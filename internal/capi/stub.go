//go:build !lightgbm

package capi

// This stub stands in for the native binding when the 'lightgbm' build tag
// is not set. Every call reports failure with a fixed last-error message, so
// callers see a normal native error instead of a link failure.

const stubLastError = "lightgbm-go was built without native support; run lgbm-fetch and rebuild with -tags lightgbm"

type stubAPI struct{}

var defaultAPI Interface = stubAPI{}

func (stubAPI) BoosterCreateFromModelfile(string) (Handle, int32, int32) {
	return 0, 0, -1
}

func (stubAPI) BoosterLoadModelFromString(string) (Handle, int32, int32) {
	return 0, 0, -1
}

func (stubAPI) BoosterFree(Handle) int32 {
	return -1
}

func (stubAPI) BoosterGetNumFeature(Handle) (int32, int32) {
	return 0, -1
}

func (stubAPI) BoosterGetNumClasses(Handle) (int32, int32) {
	return 0, -1
}

func (stubAPI) BoosterPredictForMat64(Handle, []float64, int32, int32, int32, []float64) (int64, int32) {
	return 0, -1
}

func (stubAPI) BoosterPredictForMat32(Handle, []float32, int32, int32, int32, []float64) (int64, int32) {
	return 0, -1
}

func (stubAPI) LastError() string {
	return stubLastError
}
