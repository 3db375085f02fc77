//go:build lightgbm

package capi

// cgo link directives for the native binding.
//   - Headers and the shared library are placed under third_party/ by
//     lgbm-fetch (include/LightGBM/c_api.h, lib/lib_lightgbm.*).
//   - An rpath of $ORIGIN (@executable_path on macOS) lets the runtime
//     loader find lib_lightgbm next to the built binary; the absolute
//     third_party/lib rpath covers running from the source tree.
//   - On Windows the import library lib_lightgbm.lib resolves the link and
//     the DLL must sit next to the executable.

/*
#cgo CFLAGS: -I${SRCDIR}/../../third_party/include
#cgo LDFLAGS: -L${SRCDIR}/../../third_party/lib
#cgo linux LDFLAGS: -l_lightgbm -Wl,-rpath,'$ORIGIN' -Wl,-rpath,${SRCDIR}/../../third_party/lib
#cgo darwin LDFLAGS: -l_lightgbm -Wl,-rpath,@executable_path -Wl,-rpath,${SRCDIR}/../../third_party/lib
#cgo windows LDFLAGS: -llib_lightgbm
#include <stdlib.h>
#include <LightGBM/c_api.h>
*/
import "C"

import "unsafe"

type nativeAPI struct{}

var defaultAPI Interface = nativeAPI{}

func (nativeAPI) BoosterCreateFromModelfile(filename string) (Handle, int32, int32) {
	cname := C.CString(filename)
	defer C.free(unsafe.Pointer(cname))

	var handle C.BoosterHandle
	var numIterations C.int
	ret := C.LGBM_BoosterCreateFromModelfile(cname, &numIterations, &handle)
	return Handle(uintptr(unsafe.Pointer(handle))), int32(numIterations), int32(ret)
}

func (nativeAPI) BoosterLoadModelFromString(model string) (Handle, int32, int32) {
	cmodel := C.CString(model)
	defer C.free(unsafe.Pointer(cmodel))

	var handle C.BoosterHandle
	var numIterations C.int
	ret := C.LGBM_BoosterLoadModelFromString(cmodel, &numIterations, &handle)
	return Handle(uintptr(unsafe.Pointer(handle))), int32(numIterations), int32(ret)
}

func (nativeAPI) BoosterFree(handle Handle) int32 {
	return int32(C.LGBM_BoosterFree(C.BoosterHandle(unsafe.Pointer(handle))))
}

func (nativeAPI) BoosterGetNumFeature(handle Handle) (int32, int32) {
	var out C.int
	ret := C.LGBM_BoosterGetNumFeature(C.BoosterHandle(unsafe.Pointer(handle)), &out)
	return int32(out), int32(ret)
}

func (nativeAPI) BoosterGetNumClasses(handle Handle) (int32, int32) {
	var out C.int
	ret := C.LGBM_BoosterGetNumClasses(C.BoosterHandle(unsafe.Pointer(handle)), &out)
	return int32(out), int32(ret)
}

func (nativeAPI) BoosterPredictForMat64(handle Handle, data []float64, nrow, ncol, predictType int32, out []float64) (int64, int32) {
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	return predictForMat(handle, dataPtr, DTypeFloat64, nrow, ncol, predictType, out)
}

func (nativeAPI) BoosterPredictForMat32(handle Handle, data []float32, nrow, ncol, predictType int32, out []float64) (int64, int32) {
	var dataPtr unsafe.Pointer
	if len(data) > 0 {
		dataPtr = unsafe.Pointer(&data[0])
	}
	return predictForMat(handle, dataPtr, DTypeFloat32, nrow, ncol, predictType, out)
}

func predictForMat(handle Handle, dataPtr unsafe.Pointer, dtype, nrow, ncol, predictType int32, out []float64) (int64, int32) {
	var outPtr *C.double
	if len(out) > 0 {
		outPtr = (*C.double)(unsafe.Pointer(&out[0]))
	}
	var outLen C.int64_t

	ret := C.LGBM_BoosterPredictForMat(
		C.BoosterHandle(unsafe.Pointer(handle)),
		dataPtr,
		C.int(dtype),
		C.int32_t(nrow),
		C.int32_t(ncol),
		C.int(1),  // is_row_major
		C.int(predictType),
		C.int(0),  // start_iteration
		C.int(-1), // num_iteration: all
		nil,       // parameter
		&outLen,
		outPtr,
	)
	return int64(outLen), int32(ret)
}

func (nativeAPI) LastError() string {
	return C.GoString(C.LGBM_GetLastError())
}
