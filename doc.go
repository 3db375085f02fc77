// Package lightgbm provides a safe Go wrapper around the LightGBM C API for
// loading trained models and running predictions. The gradient boosting
// itself (training, tree construction, scoring math) lives entirely in the
// native library; this package owns the FFI boundary: handle lifecycle,
// buffer-size negotiation, and error translation.
//
// # Setup
//
// The native headers and a prebuilt shared library are downloaded by the
// bundled acquisition tool, then the binding is enabled with a build tag:
//
//	go run github.com/YuminosukeSato/lightgbm-go/cmd/lgbm-fetch
//	go build -tags lightgbm ./...
//
// Without the tag the package still compiles, but every native call fails
// with an explanatory error. The LightGBM version defaults to 4.6.0 and can
// be overridden with the LIGHTGBM_VERSION environment variable or the
// tool's --version flag. Supported platforms are linux and macOS on amd64
// and arm64, plus windows/amd64; anything else is a hard failure at
// acquisition time.
//
// # Basic Usage
//
// Load a trained model and predict on a dense row-major matrix:
//
//	booster, err := lightgbm.LoadFromFile("model.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer booster.Close()
//
//	// One row with four features.
//	preds, err := booster.Predict([]float64{1, 2, 3, 4}, 1, 4, lightgbm.PredictNormal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(preds)
//
// Models can also be loaded from their text serialization with
// LoadFromString, or from raw bytes with LoadFromBuffer. gonum users can
// pass a mat.Matrix directly to PredictMatrix.
//
// # Prediction Kinds
//
// Predict's last argument selects what the native library computes:
// PredictNormal (scores/probabilities), PredictRawScore, PredictLeafIndex
// (one leaf id per tree per row, as float64), or PredictContrib
// (SHAP-style per-feature contributions). The returned buffer's layout
// depends on the kind and the model; this package passes it through
// verbatim.
//
// # Thread Safety
//
// A Booster is NOT safe for concurrent use. The C API does not document
// thread-safety for concurrent calls on one handle, and historical releases
// produced wrong results under concurrency. Either create one Booster per
// goroutine, or guard a shared Booster with a sync.Mutex held for the
// duration of each call.
package lightgbm
