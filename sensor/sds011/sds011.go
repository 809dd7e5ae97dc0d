// Package sds011 reads PM2.5 and PM10 concentrations from a Nova Fitness
// SDS011 particulate matter sensor.
package sds011

import (
	"time"

	"github.com/mtraver/aqihub/report"
	"github.com/mtraver/sds011"
)

const (
	numSamples     = 3
	sampleInterval = 1
)

type SDS011 struct {
	dev sds011.Dev
}

func New(name string) (*SDS011, error) {
	d, err := sds011.New(name)
	if err != nil {
		return nil, err
	}

	return &SDS011{
		dev: d,
	}, nil
}

func (s *SDS011) Init() error {
	if err := s.dev.Wake(); err != nil {
		return err
	}
	return s.dev.SetMode(sds011.ModeQuery)
}

// Sense averages a few samples and sets the reading's PM2.5 and PM10, in µg/m³.
func (s *SDS011) Sense(r *report.Reading) error {
	values := make([]sds011.Measurement, numSamples)
	for i := 0; i < numSamples; i++ {
		v, err := s.dev.Sense()
		if err != nil {
			return err
		}

		values[i] = v
		if i < numSamples-1 {
			time.Sleep(sampleInterval * time.Second)
		}
	}

	avg := mean(values)
	pm25, pm10 := float64(avg.PM25), float64(avg.PM10)
	r.PM25 = &pm25
	r.PM10 = &pm10
	return nil
}

func (s *SDS011) Shutdown() error {
	return s.dev.Sleep()
}

func mean(m []sds011.Measurement) sds011.Measurement {
	res := sds011.Measurement{}
	if len(m) == 0 {
		return res
	}

	for _, v := range m {
		res.PM25 += v.PM25
		res.PM10 += v.PM10
	}

	res.PM25 = res.PM25 / float32(len(m))
	res.PM10 = res.PM10 / float32(len(m))
	return res
}
