package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	readingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqilogger_readings_total",
			Help: "Total sensor readings, by outcome",
		},
		[]string{"status"},
	)

	publishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aqilogger_publish_total",
			Help: "Total report publications, by sink and outcome",
		},
		[]string{"sink", "status"},
	)

	aqiGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aqilogger_aqi",
			Help: "Most recent AQI, by standard and data type",
		},
		[]string{"standard", "data_type"},
	)
)
