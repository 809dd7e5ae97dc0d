// Package db stores computed AQI reports.
package db

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/mtraver/aqihub/report"
)

// pointWriter is the subset of api.WriteAPIBlocking used here.
type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

type InfluxDB struct {
	serverURL string
	token     string
	org       string
	bucket    string
}

func NewInfluxDB(serverURL, token, org, bucket string) *InfluxDB {
	return &InfluxDB{
		serverURL: serverURL,
		token:     token,
		org:       org,
		bucket:    bucket,
	}
}

// Save writes one point per report. Reports with an absent AQI are skipped.
func (db *InfluxDB) Save(ctx context.Context, reports ...report.Report) error {
	points := report.Points(reports...)
	if len(points) == 0 {
		return nil
	}

	client := influxdb2.NewClient(db.serverURL, db.token)
	defer client.Close()

	return save(ctx, client.WriteAPIBlocking(db.org, db.bucket), points...)
}

func save(ctx context.Context, w pointWriter, points ...*write.Point) error {
	if err := w.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("db: failed to write %d point(s): %v", len(points), err)
	}
	return nil
}
