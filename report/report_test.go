package report

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/mtraver/aqihub/aqi"
	"github.com/mtraver/aqihub/aqi/china"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"
)

func intPtr(i int) *int {
	return &i
}

var (
	hourlyReading = Reading{
		DeviceID:  "foo",
		Timestamp: testTimestamp,
		PM25:      floatPtr(45),
		PM10:      floatPtr(80),
		SO2:       floatPtr(35),
		NO2:       floatPtr(85),
		CO:        floatPtr(3),
		O3:        floatPtr(140),
	}

	usaReading = Reading{
		DeviceID:  "foo",
		Timestamp: testTimestamp,
		PM25:      floatPtr(5),
		PM10:      floatPtr(40),
		NO2:       floatPtr(40),
		CO:        floatPtr(2),
		O3:        floatPtr(0.04),
	}
)

func TestParseStandard(t *testing.T) {
	for _, std := range []Standard{China, USA} {
		got, err := ParseStandard(std.String())
		if err != nil || got != std {
			t.Errorf("ParseStandard(%q) = (%v, %v), want (%v, nil)", std.String(), got, err, std)
		}
	}
	if _, err := ParseStandard("eu"); err == nil {
		t.Error("Expected error on unknown standard, but error is nil")
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		name string
		r    Reading
		std  Standard
		d    china.DataType
		want Report
	}{
		{
			name: "china_hourly",
			r:    hourlyReading,
			std:  China,
			d:    china.Hourly,
			want: Report{
				DeviceID:  "foo",
				Timestamp: testTimestamp,
				Standard:  China,
				DataType:  china.Hourly,
				AQI:       intPtr(72),
				IAQI: aqi.SubIndexSet{
					PM25: intPtr(70), PM10: intPtr(72), SO2: intPtr(12),
					NO2: intPtr(43), CO: intPtr(30), O3: intPtr(44),
				},
				Primary: []aqi.Pollutant{aqi.PM10},
			},
		},
		{
			name: "china_empty",
			r:    Reading{DeviceID: "foo"},
			std:  China,
			d:    china.Daily,
			want: Report{DeviceID: "foo", Standard: China, DataType: china.Daily},
		},
		{
			name: "usa",
			r:    usaReading,
			std:  USA,
			want: Report{
				DeviceID:  "foo",
				Timestamp: testTimestamp,
				Standard:  USA,
				AQI:       intPtr(37),
				IAQI: aqi.SubIndexSet{
					PM25: intPtr(27), PM10: intPtr(37), NO2: intPtr(37),
					CO: intPtr(22), O3: intPtr(37),
				},
				Primary: []aqi.Pollutant{aqi.PM10, aqi.NO2, aqi.O3},
			},
		},
		{
			name: "usa_missing_required",
			r:    Reading{DeviceID: "foo", PM10: floatPtr(154)},
			std:  USA,
			want: Report{
				DeviceID: "foo",
				Standard: USA,
				AQI:      intPtr(100),
				IAQI:     aqi.SubIndexSet{PM10: intPtr(100)},
				Primary:  []aqi.Pollutant{aqi.PM10},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := New(c.r, c.std, c.d)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(got, c.want, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Unexpected result (-got +want):\n%s", diff)
			}
		})
	}

	if _, err := New(hourlyReading, Standard(7), china.Hourly); err == nil {
		t.Error("Expected error on unknown standard, but error is nil")
	}
}

func TestReportLevelAndColor(t *testing.T) {
	cn := NewChina(hourlyReading, china.Hourly)

	level, ok := cn.Level()
	if !ok || level != aqi.LevelModerate {
		t.Errorf("Level() = (%v, %v), want (%v, true)", level, ok, aqi.LevelModerate)
	}
	if got := cn.Category(); got != "Moderate" {
		t.Errorf("Category() = %q, want %q", got, "Moderate")
	}
	if got := cn.CategoryCN(); got != "良" {
		t.Errorf("CategoryCN() = %q, want %q", got, "良")
	}

	hex, err := cn.Color(aqi.EncodingRGBHex)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if hex != "#FFFF00" {
		t.Errorf("Color(RGB_HEX) = %v, want #FFFF00", hex)
	}

	rgb, err := cn.Color(aqi.EncodingRGB)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(rgb, aqi.RGB{R: 255, G: 255, B: 0}); diff != "" {
		t.Errorf("Unexpected RGB (-got +want):\n%s", diff)
	}

	if diff := cmp.Diff(cn.PrimaryPollutantsCN(), []string{"可吸入颗粒物"}); diff != "" {
		t.Errorf("Unexpected Chinese names (-got +want):\n%s", diff)
	}
}

func TestReportColorAbsent(t *testing.T) {
	for _, std := range []Standard{China, USA} {
		r, _ := New(Reading{}, std, china.Hourly)
		if _, err := r.Color(aqi.EncodingCMYK); !errors.Is(err, ErrNoAQI) {
			t.Errorf("[%v] got error %v, want %v", std, err, ErrNoAQI)
		}
		if _, ok := r.Level(); ok {
			t.Errorf("[%v] Level() reported a level for an absent AQI", std)
		}
		if got := r.Category(); got != "" {
			t.Errorf("[%v] Category() = %q, want empty", std, got)
		}
	}
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	if err != nil {
		t.Fatalf("Failed to make struct: %v", err)
	}
	return s
}

func TestStruct(t *testing.T) {
	cases := []struct {
		name string
		r    Report
		want map[string]any
	}{
		{
			name: "usa_absent",
			r:    NewUSA(Reading{DeviceID: "foo"}),
			want: map[string]any{
				"device_id": "foo",
				"standard":  "usa",
				"aqi":       nil,
				"iaqi": map[string]any{
					"PM2.5": nil, "PM10": nil, "SO2": nil, "NO2": nil, "CO": nil, "O3": nil,
				},
				"primary_pollutants": []any{},
				"level":              nil,
				"category":           nil,
				"color":              nil,
			},
		},
		{
			name: "china_hourly",
			r:    NewChina(hourlyReading, china.Hourly),
			want: map[string]any{
				"device_id": "foo",
				"timestamp": "2018-03-25T00:00:00Z",
				"standard":  "cn",
				"data_type": "hourly",
				"aqi":       72,
				"iaqi": map[string]any{
					"PM2.5": 70, "PM10": 72, "SO2": 12, "NO2": 43, "CO": 30, "O3": 44,
				},
				"primary_pollutants":    []any{"PM10"},
				"primary_pollutants_cn": []any{"可吸入颗粒物"},
				"level":                 2,
				"category":              "Moderate",
				"category_cn":           "良",
				"color": map[string]any{
					"rgb":      []any{255, 255, 0},
					"cmyk":     []any{0, 0, 100, 0},
					"rgb_hex":  "#FFFF00",
					"cmyk_hex": "#FFFF00",
				},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.r.Struct()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(got, mustStruct(t, c.want), protocmp.Transform()); diff != "" {
				t.Errorf("Unexpected result (-got +want):\n%s", diff)
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	r := NewUSA(usaReading)

	b, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var got structpb.Struct
	if err := protojson.Unmarshal(b, &got); err != nil {
		t.Fatalf("Failed to unmarshal %s: %v", b, err)
	}

	want, err := r.Struct()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(&got, want, protocmp.Transform()); diff != "" {
		t.Errorf("Unexpected result (-got +want):\n%s", diff)
	}
}

func TestPoints(t *testing.T) {
	cases := []struct {
		name    string
		reports []Report
		want    []*write.Point
	}{
		{
			name:    "china",
			reports: []Report{NewChina(hourlyReading, china.Hourly)},
			want: []*write.Point{
				influxdb2.NewPointWithMeasurement("aqi").
					AddTag("device", "foo").
					AddTag("standard", "cn").
					AddTag("data_type", "hourly").
					AddTag("primary", "PM10").
					AddField("aqi", 72).
					AddField("level", 2).
					AddField("iaqi_pm25", 70).
					AddField("iaqi_pm10", 72).
					AddField("iaqi_so2", 12).
					AddField("iaqi_no2", 43).
					AddField("iaqi_co", 30).
					AddField("iaqi_o3", 44).
					SetTime(testTimestamp),
			},
		},
		{
			name:    "usa_skips_absent",
			reports: []Report{NewUSA(Reading{DeviceID: "bar"}), NewUSA(usaReading)},
			want: []*write.Point{
				influxdb2.NewPointWithMeasurement("aqi").
					AddTag("device", "foo").
					AddTag("standard", "usa").
					AddTag("primary", "PM10,NO2,O3").
					AddField("aqi", 37).
					AddField("level", 1).
					AddField("iaqi_pm25", 27).
					AddField("iaqi_pm10", 37).
					AddField("iaqi_no2", 37).
					AddField("iaqi_co", 22).
					AddField("iaqi_o3", 37).
					SetTime(testTimestamp),
			},
		},
		{
			name:    "none",
			reports: []Report{NewChina(Reading{}, china.Daily)},
			want:    []*write.Point{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Points(c.reports...)
			if diff := cmp.Diff(got, c.want, cmp.AllowUnexported(write.Point{}), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Unexpected result (-got +want):\n%s", diff)
			}
		})
	}
}
