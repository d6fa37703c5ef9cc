package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/option-pricer/internal/pricing"
	"github.com/iwvelando/option-pricer/pkg/constants"
	"github.com/iwvelando/option-pricer/pkg/testutil"
)

func smallResult(t *testing.T) *pricing.Result {
	t.Helper()
	conf := testutil.ReferenceConfiguration()
	conf.Model.Steps = 10
	result, err := pricing.Price(nil, conf)
	if err != nil {
		t.Fatalf("pricing.Price() error = %v", err)
	}
	return result
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected plot file at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("plot file %s is empty", path)
	}
}

func TestValueFunction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.png")
	if err := ValueFunction(smallResult(t), path); err != nil {
		t.Fatalf("ValueFunction() error = %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestExerciseBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boundary.png")
	if err := ExerciseBoundary(smallResult(t), path); err != nil {
		t.Fatalf("ExerciseBoundary() error = %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")
	paths, err := WriteAll(smallResult(t), dir)
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("WriteAll() returned %d paths, expected 2", len(paths))
	}
	assertNonEmptyFile(t, filepath.Join(dir, constants.ValuePlotFile))
	assertNonEmptyFile(t, filepath.Join(dir, constants.BoundaryPlotFile))
}
