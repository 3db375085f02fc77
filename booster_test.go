package lightgbm

import (
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

const modelText = "tree\nversion=v4\nnum_class=1\nnum_tree_per_iteration=1\nend of trees\n"

func TestLoadFromFileRejectsNulByte(t *testing.T) {
	api := newFakeAPI()

	_, err := loadFromFile(api, "model\x00.txt")
	if err == nil {
		t.Fatal("expected error for path with NUL byte")
	}
	var encErr *errors.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T: %v", err, err)
	}
	if api.createCalls != 0 {
		t.Errorf("native layer was invoked %d times, want 0", api.createCalls)
	}
}

func TestLoadFromFileRejectsInvalidUTF8(t *testing.T) {
	api := newFakeAPI()

	_, err := loadFromFile(api, "model\xff\xfe.txt")
	if err == nil {
		t.Fatal("expected error for path with invalid UTF-8")
	}
	var encErr *errors.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T: %v", err, err)
	}
	if api.createCalls != 0 {
		t.Errorf("native layer was invoked %d times, want 0", api.createCalls)
	}
}

func TestLoadFromStringRejectsNulByte(t *testing.T) {
	api := newFakeAPI()

	_, err := loadFromString(api, "tree\x00end")
	if err == nil {
		t.Fatal("expected error for model string with NUL byte")
	}
	var encErr *errors.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T: %v", err, err)
	}
	if api.loadCalls != 0 {
		t.Errorf("native layer was invoked %d times, want 0", api.loadCalls)
	}
}

func TestLoadFromBufferRejectsInvalidUTF8(t *testing.T) {
	api := newFakeAPI()

	_, err := loadFromBuffer(api, []byte{0x74, 0x72, 0x65, 0x65, 0xff, 0xfe})
	if err == nil {
		t.Fatal("expected error for non-UTF-8 buffer")
	}
	var encErr *errors.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %T: %v", err, err)
	}
	if api.loadCalls != 0 {
		t.Errorf("LoadFromString's native call was reached %d times, want 0", api.loadCalls)
	}
}

func TestLoadFromBufferDelegatesToLoadFromString(t *testing.T) {
	api := newFakeAPI()

	b, err := loadFromBuffer(api, []byte(modelText))
	if err != nil {
		t.Fatalf("loadFromBuffer: %v", err)
	}
	defer b.Close()

	if api.loadCalls != 1 {
		t.Errorf("loadCalls = %d, want 1", api.loadCalls)
	}
}

func TestLoadFailureWrapsLastError(t *testing.T) {
	api := newFakeAPI()
	api.failCreate = true
	api.lastError = "Unknown model format"

	_, err := loadFromString(api, modelText)
	if err == nil {
		t.Fatal("expected native error")
	}
	var nativeErr *errors.NativeError
	if !errors.As(err, &nativeErr) {
		t.Fatalf("expected NativeError, got %T: %v", err, err)
	}
	if nativeErr.Description != "Unknown model format" {
		t.Errorf("Description = %q, want last-error message", nativeErr.Description)
	}
}

func TestLoadFailureUnknownErrorFallback(t *testing.T) {
	api := newFakeAPI()
	api.failCreate = true
	api.lastError = "\xff\xfe"

	_, err := loadFromString(api, modelText)
	if err == nil {
		t.Fatal("expected native error")
	}
	if !strings.Contains(err.Error(), "unknown error") {
		t.Errorf("expected unknown-error fallback, got %v", err)
	}
}

func TestNumIterationsCapturedAtLoad(t *testing.T) {
	api := newFakeAPI()
	api.numIterations = 42

	b, err := loadFromString(api, modelText)
	if err != nil {
		t.Fatalf("loadFromString: %v", err)
	}
	defer b.Close()

	if got := b.NumIterations(); got != 42 {
		t.Errorf("NumIterations() = %d, want 42", got)
	}
}

func TestMetadataQueries(t *testing.T) {
	api := newFakeAPI()
	api.numFeatures = 13
	api.numClasses = 3

	b, err := loadFromString(api, modelText)
	if err != nil {
		t.Fatalf("loadFromString: %v", err)
	}
	defer b.Close()

	n, err := b.NumFeatures()
	if err != nil {
		t.Fatalf("NumFeatures: %v", err)
	}
	if n != 13 {
		t.Errorf("NumFeatures() = %d, want 13", n)
	}

	c, err := b.NumClasses()
	if err != nil {
		t.Fatalf("NumClasses: %v", err)
	}
	if c != 3 {
		t.Errorf("NumClasses() = %d, want 3", c)
	}

	// No caching: each query issues one native call.
	if api.metaCalls != 2 {
		t.Errorf("metaCalls = %d, want 2", api.metaCalls)
	}
	if _, err := b.NumFeatures(); err != nil {
		t.Fatalf("NumFeatures: %v", err)
	}
	if api.metaCalls != 3 {
		t.Errorf("metaCalls = %d after re-query, want 3", api.metaCalls)
	}
}

func TestMetadataNativeFailure(t *testing.T) {
	api := newFakeAPI()

	b, err := loadFromString(api, modelText)
	if err != nil {
		t.Fatalf("loadFromString: %v", err)
	}
	defer b.Close()

	api.failMeta = true
	if _, err := b.NumFeatures(); err == nil {
		t.Error("NumFeatures should surface native failure")
	}
	if _, err := b.NumClasses(); err == nil {
		t.Error("NumClasses should surface native failure")
	}
}

func TestCloseFreesExactlyOnce(t *testing.T) {
	api := newFakeAPI()

	b, err := loadFromString(api, modelText)
	if err != nil {
		t.Fatalf("loadFromString: %v", err)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	runtime.GC()
	runtime.GC()

	if got := api.freeCalls.Load(); got != 1 {
		t.Errorf("freeCalls = %d, want exactly 1", got)
	}
}

func TestCloseAfterFailedOperationStillFreesOnce(t *testing.T) {
	api := newFakeAPI()

	b, err := loadFromString(api, modelText)
	if err != nil {
		t.Fatalf("loadFromString: %v", err)
	}

	api.failPredict = true
	if _, err := b.Predict([]float64{1, 2, 3, 4}, 1, 4, PredictNormal); err == nil {
		t.Fatal("expected predict failure")
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := api.freeCalls.Load(); got != 1 {
		t.Errorf("freeCalls = %d, want exactly 1", got)
	}
}

func TestFinalizerFreesDroppedBooster(t *testing.T) {
	api := newFakeAPI()

	func() {
		b, err := loadFromString(api, modelText)
		if err != nil {
			t.Fatalf("loadFromString: %v", err)
		}
		_ = b
	}()

	deadline := time.Now().Add(5 * time.Second)
	for api.freeCalls.Load() == 0 && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}

	if got := api.freeCalls.Load(); got != 1 {
		t.Errorf("freeCalls = %d, want exactly 1 from finalizer", got)
	}
}

func TestOperationsOnClosedBooster(t *testing.T) {
	api := newFakeAPI()

	b, err := loadFromString(api, modelText)
	if err != nil {
		t.Fatalf("loadFromString: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var closedErr *errors.ClosedError
	if _, err := b.NumFeatures(); !errors.As(err, &closedErr) {
		t.Errorf("NumFeatures after Close: got %v, want ClosedError", err)
	}
	if _, err := b.NumClasses(); !errors.As(err, &closedErr) {
		t.Errorf("NumClasses after Close: got %v, want ClosedError", err)
	}
	if _, err := b.Predict([]float64{1}, 1, 1, PredictNormal); !errors.As(err, &closedErr) {
		t.Errorf("Predict after Close: got %v, want ClosedError", err)
	}
	if _, err := b.PredictF32([]float32{1}, 1, 1, PredictNormal); !errors.As(err, &closedErr) {
		t.Errorf("PredictF32 after Close: got %v, want ClosedError", err)
	}
}
