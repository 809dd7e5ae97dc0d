package dummy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtraver/aqihub/report"
)

func TestSense(t *testing.T) {
	cases := []struct {
		name    string
		d       Dummy
		want    map[string]float64
		wantErr bool
	}{
		{
			name: "default",
			d:    Dummy{},
			want: DefaultValues,
		},
		{
			name: "custom",
			d:    Dummy{Values: map[string]float64{"pm25": 5, "o3_1h": 0.125}},
			want: map[string]float64{"pm25": 5, "o3_1h": 0.125},
		},
		{
			name:    "unknown_key",
			d:       Dummy{Values: map[string]float64{"pm1": 5}},
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r report.Reading
			err := c.d.Sense(&r)
			if c.wantErr {
				if err == nil {
					t.Error("Expected error, but error is nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(r.ValueMap(), c.want); diff != "" {
				t.Errorf("Unexpected result (-got +want):\n%s", diff)
			}
		})
	}
}
