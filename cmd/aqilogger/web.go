package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mtraver/aqihub/cache"
	"github.com/mtraver/aqihub/report"
	"github.com/mtraver/aqihub/sensor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type indexHandler struct {
	deviceID string
	latest   *cache.Cache[report.Report]
}

func (h indexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	fmt.Fprintf(w, "device: %s\n", h.deviceID)
	fmt.Fprintf(w, "sensors: %v\n", sensor.Names())

	reports := h.latest.Values()
	if len(reports) == 0 {
		fmt.Fprintln(w, "no reports yet")
		return
	}
	for _, rep := range reports {
		fmt.Fprintln(w, rep)
	}
}

type reportsHandler struct {
	latest *cache.Cache[report.Report]
}

func (h reportsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reports := h.latest.Values()

	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(reports))}
	for _, rep := range reports {
		s, err := rep.Struct()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		list.Values = append(list.Values, structpb.NewStructValue(s))
	}

	b, err := protojson.Marshal(list)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

// topicHandler serves the latest report published to one topic.
type topicHandler struct {
	latest *cache.Cache[report.Report]
}

func (h topicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	rep, ok := h.latest.Get(topic)
	if !ok {
		http.Error(w, fmt.Sprintf("no report for topic %q", topic), http.StatusNotFound)
		return
	}

	b, err := rep.MarshalJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func newRouter(deviceID string, latest *cache.Cache[report.Report]) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/", indexHandler{
		deviceID: deviceID,
		latest:   latest,
	}).Methods(http.MethodGet)
	r.Handle("/reports", reportsHandler{latest: latest}).Methods(http.MethodGet)
	r.Handle("/reports/{topic:.+}", topicHandler{latest: latest}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
