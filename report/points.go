package report

import (
	"strings"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/mtraver/aqihub/aqi"
)

const pointMeasurement = "aqi"

// Field keys of the sub-indices, e.g. iaqi_pm25. The suffixes are the first
// six Keys.
func iaqiField(p aqi.Pollutant) string {
	return "iaqi_" + Keys[p]
}

// Point converts the report to an InfluxDB point. ok is false if the AQI is
// absent, in which case there is nothing worth writing.
func (r Report) Point() (p *write.Point, ok bool) {
	if r.AQI == nil {
		return nil, false
	}

	p = influxdb2.NewPointWithMeasurement(pointMeasurement).
		AddTag("device", r.DeviceID).
		AddTag("standard", r.Standard.String())
	if r.Standard == China {
		p = p.AddTag("data_type", r.DataType.String())
	}
	if len(r.Primary) > 0 {
		p = p.AddTag("primary", strings.Join(r.PrimaryPollutants(), ","))
	}

	p = p.AddField("aqi", *r.AQI)
	if level, ok := r.Level(); ok {
		p = p.AddField("level", int(level))
	}
	for _, pol := range aqi.Pollutants {
		if v, ok := r.IAQI.Get(pol); ok {
			p = p.AddField(iaqiField(pol), v)
		}
	}

	return p.SetTime(r.Timestamp), true
}

// Points converts every report with an AQI to an InfluxDB point.
func Points(reports ...Report) []*write.Point {
	points := make([]*write.Point, 0, len(reports))
	for _, r := range reports {
		if p, ok := r.Point(); ok {
			points = append(points, p)
		}
	}
	return points
}
