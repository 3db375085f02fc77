package lightgbm

import (
	"gonum.org/v1/gonum/mat"
)

// PredictMatrix flattens X into row-major form and runs Predict. The result
// buffer has the same kind-dependent layout Predict documents; for
// PredictNormal on an n-row input it holds one value per row (or
// n*numClasses values for multiclass models).
func (b *Booster) PredictMatrix(X mat.Matrix, predictType PredictType) ([]float64, error) {
	rows, cols := X.Dims()

	if d, ok := X.(*mat.Dense); ok {
		return b.Predict(denseRowMajor(d, rows, cols), rows, cols, predictType)
	}

	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = X.At(i, j)
		}
	}
	return b.Predict(data, rows, cols, predictType)
}

// denseRowMajor extracts a contiguous row-major copy of a Dense matrix.
// RawMatrix data can only be used directly when the stride equals the
// column count.
func denseRowMajor(d *mat.Dense, rows, cols int) []float64 {
	raw := d.RawMatrix()
	if raw.Stride == cols {
		return raw.Data[:rows*cols]
	}
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		copy(data[i*cols:(i+1)*cols], raw.Data[i*raw.Stride:i*raw.Stride+cols])
	}
	return data
}
