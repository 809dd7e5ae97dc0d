package sensor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtraver/aqihub/report"
)

type fakeSensor struct{}

func (fakeSensor) Init() error                   { return nil }
func (fakeSensor) Sense(r *report.Reading) error { return nil }
func (fakeSensor) Shutdown() error               { return nil }

func TestRegistry(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("Expected error on unknown sensor, but error is nil")
	}

	Register("b", fakeSensor{})
	Register("a", fakeSensor{})

	if _, err := Get("a"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(Names(), []string{"a", "b"}); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}
