package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func floatPtr(f float64) *float64 {
	return &f
}

var (
	testTimestamp  = time.Date(2018, time.March, 25, 0, 0, 0, 0, time.UTC)
	testTimestamp2 = time.Date(2018, time.March, 25, 14, 40, 0, 0, time.UTC)

	cmpFloats = cmpopts.EquateApprox(0, 0.0001)
)

func TestReadingString(t *testing.T) {
	cases := []struct {
		name string
		r    Reading
		want string
	}{
		{"empty", Reading{}, " 0001-01-01T00:00:00Z"},
		{"pm_only",
			Reading{
				DeviceID:  "foo",
				Timestamp: testTimestamp,
				PM25:      floatPtr(12.5),
				PM10:      floatPtr(20),
			},
			"foo pm25=12.5 pm10=20 2018-03-25T00:00:00Z",
		},
		{"extra_windows",
			Reading{
				DeviceID:  "foo",
				Timestamp: testTimestamp,
				O3:        floatPtr(0.04),
				SO2_24H:   floatPtr(305),
				O3_1H:     floatPtr(0.125),
			},
			"foo o3=0.04 so2_24h=305 o3_1h=0.125 2018-03-25T00:00:00Z",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := fmt.Sprintf("%v", c.r)
			if got != c.want {
				t.Errorf("Got %q, want %q", got, c.want)
			}
		})
	}
}

func TestReadingSetGet(t *testing.T) {
	var r Reading
	for i, k := range Keys {
		if err := r.Set(k, float64(i)); err != nil {
			t.Fatalf("Set(%q): unexpected error: %v", k, err)
		}
	}

	want := Reading{
		PM25: floatPtr(0), PM10: floatPtr(1), SO2: floatPtr(2), NO2: floatPtr(3),
		CO: floatPtr(4), O3: floatPtr(5), SO2_24H: floatPtr(6), O3_1H: floatPtr(7),
	}
	if diff := cmp.Diff(r, want); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}

	if err := r.Set("pm1", 3); err == nil {
		t.Error("Expected error on unknown key, but error is nil")
	}
	if _, ok := r.Get("pm1"); ok {
		t.Error("Get on unknown key reported a value")
	}
	if _, ok := (Reading{}).Get("pm25"); ok {
		t.Error("Get on unmeasured key reported a value")
	}
}

func TestValueMap(t *testing.T) {
	r := Reading{PM25: floatPtr(12), CO: floatPtr(0.4)}
	want := map[string]float64{"pm25": 12, "co": 0.4}
	if diff := cmp.Diff(r.ValueMap(), want); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}

func TestMean(t *testing.T) {
	cases := []struct {
		name string
		rs   []Reading
		want Reading
	}{
		{
			name: "empty",
			rs:   []Reading{},
			want: Reading{},
		},
		{
			name: "single",
			rs: []Reading{
				{DeviceID: "foo", Timestamp: testTimestamp, PM25: floatPtr(12.1), PM10: floatPtr(20.7)},
			},
			want: Reading{DeviceID: "foo", Timestamp: testTimestamp, PM25: floatPtr(12.1), PM10: floatPtr(20.7)},
		},
		{
			name: "multiple",
			rs: []Reading{
				{DeviceID: "foo", Timestamp: testTimestamp2, PM25: floatPtr(12.1), PM10: floatPtr(20.7)},
				{DeviceID: "foo", Timestamp: testTimestamp, PM25: floatPtr(8.4), PM10: floatPtr(21.9), O3: floatPtr(0.04)},
			},
			want: Reading{
				DeviceID:  "foo",
				Timestamp: testTimestamp2,
				PM25:      floatPtr(10.25),
				PM10:      floatPtr(21.3),
				O3:        floatPtr(0.04),
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Mean(c.rs)
			if diff := cmp.Diff(got, c.want, cmpFloats); diff != "" {
				t.Errorf("Unexpected result (-got +want):\n%s", diff)
			}
		})
	}
}

func TestParticulates(t *testing.T) {
	r := Reading{
		DeviceID:  "foo",
		Timestamp: testTimestamp,
		PM25:      floatPtr(45),
		PM10:      floatPtr(80),
		NO2:       floatPtr(85),
		O3:        floatPtr(140),
		O3_1H:     floatPtr(200),
	}
	want := Reading{DeviceID: "foo", Timestamp: testTimestamp, PM25: floatPtr(45), PM10: floatPtr(80)}
	if diff := cmp.Diff(r.Particulates(), want); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}
