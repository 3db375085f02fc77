package lightgbm

import (
	"sync/atomic"

	"github.com/YuminosukeSato/lightgbm-go/internal/capi"
)

// fakeAPI stands in for the native library in tests. It records how often
// each entry point is invoked so tests can assert that local validation
// failures never cross the boundary and that handles are freed exactly
// once. Predictions are a deterministic function of the input so that
// determinism and pass-through behaviour are observable.
type fakeAPI struct {
	numFeatures   int32
	numClasses    int32
	numTrees      int64
	numIterations int32

	failCreate  bool
	failPredict bool
	failMeta    bool
	failFree    bool
	lastError   string

	createCalls  int
	loadCalls    int
	predictCalls int
	metaCalls    int
	freeCalls    atomic.Int32 // finalizers free from the runtime's goroutine
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		numFeatures:   4,
		numClasses:    1,
		numTrees:      5,
		numIterations: 7,
		lastError:     "fake native failure",
	}
}

func (f *fakeAPI) BoosterCreateFromModelfile(string) (capi.Handle, int32, int32) {
	f.createCalls++
	if f.failCreate {
		return 0, 0, -1
	}
	return capi.Handle(1), f.numIterations, 0
}

func (f *fakeAPI) BoosterLoadModelFromString(string) (capi.Handle, int32, int32) {
	f.loadCalls++
	if f.failCreate {
		return 0, 0, -1
	}
	return capi.Handle(1), f.numIterations, 0
}

func (f *fakeAPI) BoosterFree(capi.Handle) int32 {
	f.freeCalls.Add(1)
	if f.failFree {
		return -1
	}
	return 0
}

func (f *fakeAPI) BoosterGetNumFeature(capi.Handle) (int32, int32) {
	f.metaCalls++
	if f.failMeta {
		return 0, -1
	}
	return f.numFeatures, 0
}

func (f *fakeAPI) BoosterGetNumClasses(capi.Handle) (int32, int32) {
	f.metaCalls++
	if f.failMeta {
		return 0, -1
	}
	return f.numClasses, 0
}

func (f *fakeAPI) BoosterPredictForMat64(_ capi.Handle, data []float64, nrow, ncol, predictType int32, out []float64) (int64, int32) {
	return f.predict(data, nrow, ncol, predictType, out)
}

func (f *fakeAPI) BoosterPredictForMat32(_ capi.Handle, data []float32, nrow, ncol, predictType int32, out []float64) (int64, int32) {
	wide := make([]float64, len(data))
	for i, v := range data {
		wide[i] = float64(v)
	}
	return f.predict(wide, nrow, ncol, predictType, out)
}

func (f *fakeAPI) predict(data []float64, nrow, ncol, predictType int32, out []float64) (int64, int32) {
	f.predictCalls++
	if f.failPredict {
		return 0, -1
	}

	classes := int64(f.numClasses)
	if classes < 1 {
		classes = 1
	}
	var outLen int64
	switch predictType {
	case int32(PredictLeafIndex):
		outLen = int64(nrow) * f.numTrees
	case int32(PredictContrib):
		outLen = int64(nrow) * int64(ncol+1) * classes
	default:
		outLen = int64(nrow) * classes
	}

	if out != nil && nrow > 0 {
		perRow := outLen / int64(nrow)
		for r := int64(0); r < int64(nrow); r++ {
			rowSum := 0.0
			for c := int64(0); c < int64(ncol); c++ {
				rowSum += data[r*int64(ncol)+c]
			}
			for k := int64(0); k < perRow; k++ {
				i := r*perRow + k
				if predictType == int32(PredictLeafIndex) {
					// Leaf ids are integer-valued floats.
					out[i] = float64((int64(rowSum) + k) % 11)
				} else {
					out[i] = rowSum*0.1 + float64(k)
				}
			}
		}
	}
	return outLen, 0
}

func (f *fakeAPI) LastError() string {
	return f.lastError
}
