package lightgbm

import (
	"math"
	"math/bits"
	"runtime"

	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

// PredictType selects what the native library computes for each row. The
// values match LightGBM's C_API_PREDICT_* constants bit-for-bit.
type PredictType int32

const (
	// PredictNormal returns scores, or probabilities for classifiers.
	PredictNormal PredictType = 0
	// PredictRawScore returns raw scores before any transformation.
	PredictRawScore PredictType = 1
	// PredictLeafIndex returns the leaf id per tree per row, as float64.
	PredictLeafIndex PredictType = 2
	// PredictContrib returns SHAP-style per-feature contributions.
	PredictContrib PredictType = 3
)

// Predict runs dense prediction over float64 input. data holds rows*cols
// values in row-major order; the declared dimensions are validated against
// len(data) before anything crosses the native boundary. All boosting
// iterations are used.
//
// The length of the returned buffer is decided by the native library and
// depends on predictType and the model; the buffer is returned verbatim.
func (b *Booster) Predict(data []float64, rows, cols int, predictType PredictType) ([]float64, error) {
	const op = "Predict"
	if b.closed {
		return nil, errors.NewClosedError(op)
	}
	if err := checkDims(op, rows, cols, len(data)); err != nil {
		return nil, err
	}
	return b.predictTwoPhase(op, func(out []float64) (int64, int32) {
		return b.api.BoosterPredictForMat64(b.handle, data, int32(rows), int32(cols), int32(predictType), out)
	})
}

// PredictF32 is Predict for float32 input. Results are float64 regardless
// of the input element width; the element type tag passed to the native
// call is the only difference from Predict.
func (b *Booster) PredictF32(data []float32, rows, cols int, predictType PredictType) ([]float64, error) {
	const op = "PredictF32"
	if b.closed {
		return nil, errors.NewClosedError(op)
	}
	if err := checkDims(op, rows, cols, len(data)); err != nil {
		return nil, err
	}
	return b.predictTwoPhase(op, func(out []float64) (int64, int32) {
		return b.api.BoosterPredictForMat32(b.handle, data, int32(rows), int32(cols), int32(predictType), out)
	})
}

// predictTwoPhase runs the C API's paired call sequence: a first call with
// a nil output buffer discovers the required length, a second call fills a
// buffer of exactly that length. The length is prediction-kind-dependent
// and must come from the native side; it is never computed locally.
func (b *Booster) predictTwoPhase(op string, call func(out []float64) (int64, int32)) ([]float64, error) {
	outLen, ret := call(nil)
	if err := checkRet(b.api, op, ret); err != nil {
		runtime.KeepAlive(b)
		return nil, err
	}

	out := make([]float64, outLen)
	_, ret = call(out)
	runtime.KeepAlive(b)
	if err := checkRet(b.api, op, ret); err != nil {
		return nil, err
	}
	return out, nil
}

// checkDims validates the declared matrix shape against the supplied buffer
// length. Overflowing products and dimensions outside the C API's int32
// range are rejected so that no mismatched buffer can reach the native
// layer.
func checkDims(op string, rows, cols, got int) error {
	if rows < 0 || cols < 0 {
		return errors.Newf("lightgbm: %s: rows (%d) and cols (%d) must be non-negative", op, rows, cols)
	}
	if rows > math.MaxInt32 || cols > math.MaxInt32 {
		return errors.NewSizeOverflowError(op, rows, cols)
	}
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return errors.NewSizeOverflowError(op, rows, cols)
	}
	if int(lo) != got {
		return errors.NewShapeError(op, rows, cols, int(lo), got)
	}
	return nil
}
