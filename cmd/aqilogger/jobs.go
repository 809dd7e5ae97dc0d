package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"sync"
	"time"

	"github.com/mtraver/aqihub/aqi/china"
	"github.com/mtraver/aqihub/cache"
	"github.com/mtraver/aqihub/report"
	"github.com/mtraver/aqihub/sensor"
)

const (
	// Readings are kept this long for computing daily averages.
	historyTTL = 24 * time.Hour

	// Reports shown on the status page expire after this long without an update.
	latestTTL = 2 * time.Hour
)

// saver is implemented by db.InfluxDB.
type saver interface {
	Save(ctx context.Context, reports ...report.Report) error
}

type SetupJob struct {
	Sensors []string
}

func (j SetupJob) Run() {
	for _, name := range j.Sensors {
		s, err := sensor.Get(name)
		if err != nil {
			log.Printf("Error getting sensor %q: %v", name, err)
			continue
		}
		if err := s.Init(); err != nil {
			log.Printf("Failed to init %q: %v", name, err)
			continue
		}
	}
}

type SenseJob struct {
	DeviceID    string
	Sensors     []string
	Standards   []report.Standard
	TopicPrefix string

	Publisher publisher
	DB        saver
	Dryrun    bool

	// History holds recent readings, keyed by timestamp.
	History *cache.Cache[report.Reading]
	// Latest holds the most recent report of each kind, keyed by topic.
	Latest *cache.Cache[report.Report]

	now func() time.Time
}

func (j SenseJob) Run() {
	now := time.Now
	if j.now != nil {
		now = j.now
	}

	// Create a Reading that we'll pass along to each sensor.
	r := report.Reading{
		DeviceID:  j.DeviceID,
		Timestamp: now().UTC(),
	}

	count := 0
	for _, name := range j.Sensors {
		s, err := sensor.Get(name)
		if err != nil {
			log.Printf("Error getting sensor %q: %v", name, err)
			continue
		}
		if err := s.Sense(&r); err != nil {
			log.Printf("Failed to take reading from %q: %v", name, err)
			continue
		}
		count++
	}

	if count <= 0 {
		readingsTotal.WithLabelValues("failed").Inc()
		log.Print("Took no readings, will not publish")
		return
	}
	readingsTotal.WithLabelValues("ok").Inc()

	j.History.Set(r.Timestamp.Format(time.RFC3339Nano), r, historyTTL)
	reports := j.reports(r, report.Mean(j.History.Values()))

	for _, rep := range reports {
		j.Latest.Set(j.topic(rep), rep, latestTTL)
		if rep.AQI != nil {
			aqiGauge.WithLabelValues(rep.Standard.String(), dataTypeLabel(rep)).Set(float64(*rep.AQI))
		}
	}

	if j.Dryrun {
		for _, rep := range reports {
			log.Print(rep)
		}
		return
	}

	if err := j.publish(reports); err != nil {
		log.Printf("Failed to publish reports: %v", err)
	}
	if j.DB != nil {
		if err := j.DB.Save(context.Background(), reports...); err != nil {
			publishTotal.WithLabelValues("influxdb", "failed").Inc()
			log.Printf("Failed to save reports: %v", err)
		} else {
			publishTotal.WithLabelValues("influxdb", "ok").Inc()
		}
	}
}

// reports evaluates the latest reading and the daily mean under each standard.
// China gets an hourly report from the latest reading and a daily one from the
// mean. The USA report uses the mean of PM2.5 and PM10 only: sensors report
// gases in China units, which the USA tables would misread.
func (j SenseJob) reports(latest, daily report.Reading) []report.Report {
	var reports []report.Report
	for _, std := range j.Standards {
		switch std {
		case report.China:
			reports = append(reports,
				report.NewChina(latest, china.Hourly),
				report.NewChina(daily, china.Daily))
		case report.USA:
			reports = append(reports, report.NewUSA(daily.Particulates()))
		}
	}
	return reports
}

func dataTypeLabel(rep report.Report) string {
	if rep.Standard == report.China {
		return rep.DataType.String()
	}
	return ""
}

// topic returns e.g. aqi/foo/cn/hourly or aqi/foo/usa.
func (j SenseJob) topic(rep report.Report) string {
	t := path.Join(j.TopicPrefix, j.DeviceID, rep.Standard.String())
	if rep.Standard == report.China {
		t = path.Join(t, rep.DataType.String())
	}
	return t
}

func (j SenseJob) publish(reports []report.Report) error {
	payloads := make(map[string][]byte, len(reports))
	for _, rep := range reports {
		b, err := rep.MarshalJSON()
		if err != nil {
			return fmt.Errorf("[%s] %v", j.topic(rep), err)
		}
		payloads[j.topic(rep)] = b
	}

	var wg sync.WaitGroup

	errs := make(chan error, len(payloads))

	for topic, b := range payloads {
		wg.Add(1)
		go func(topic string, payload []byte) {
			defer wg.Done()

			// Retained, so new subscribers get the latest report right away.
			token := j.Publisher.Publish(topic, 1, true, payload)
			if err := waitToken(token); err != nil {
				publishTotal.WithLabelValues("mqtt", "failed").Inc()
				errs <- fmt.Errorf("[%s] %v", topic, err)
				return
			}
			publishTotal.WithLabelValues("mqtt", "ok").Inc()
			log.Printf("[%s] successful publish (%d bytes)\n", topic, len(payload))
		}(topic, b)
	}

	wg.Wait()
	close(errs)

	errSlice := []error{}
	for e := range errs {
		errSlice = append(errSlice, e)
	}

	return errors.Join(errSlice...)
}

type ShutdownJob struct {
	Sensors []string
}

func (j ShutdownJob) Run() {
	for _, name := range j.Sensors {
		s, err := sensor.Get(name)
		if err != nil {
			log.Printf("Error getting sensor %q: %v", name, err)
			continue
		}
		if err := s.Shutdown(); err != nil {
			log.Printf("Failed to shut down %q: %v", name, err)
			continue
		}
	}
}
