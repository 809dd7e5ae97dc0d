// Program aqilogger reads particulate matter concentrations from local sensors
// on a schedule, computes China and US AQI reports from them, and publishes the
// reports as JSON over MQTT.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/mtraver/aqihub/cache"
	"github.com/mtraver/aqihub/db"
	"github.com/mtraver/aqihub/report"
	"github.com/mtraver/aqihub/sensor"
	"github.com/mtraver/aqihub/sensor/dummy"
	"github.com/mtraver/aqihub/sensor/sds011"
	"github.com/mtraver/envtools"
	cron "github.com/robfig/cron/v3"
)

// Flags.
var (
	deviceID    string
	cronSpec    string
	broker      string
	mqttUser    string
	topicPrefix string
	sensorNames string
	serialPort  string
	standards   string
	influxURL   string
	org         string
	bucket      string
	port        int
	dryrun      bool
)

var (
	// This directory is where we'll store anything the program needs to
	// persist. This is joined with the user's home directory in init.
	dotDir = ".aqilogger"

	// The directory in which to store reports that failed to publish, e.g.
	// because the network went down. It's used to configure an
	// mqtt.NewFileStore. This is joined with the user's home directory in init.
	mqttStoreDir = path.Join(dotDir, "mqtt_store")
)

func init() {
	flag.StringVar(&deviceID, "device", "", "ID of this device, used in MQTT topics and reports")
	flag.StringVar(&cronSpec, "cronspec", "", "cron spec that specifies when to take readings and publish reports")
	flag.StringVar(&broker, "broker", "", "MQTT broker URL, e.g. tcp://localhost:1883")
	flag.StringVar(&mqttUser, "mqttuser", "", "MQTT username. If given, the password is read from the MQTT_PASSWORD environment variable.")
	flag.StringVar(&topicPrefix, "topic", "aqi", "prefix of MQTT topics")
	flag.StringVar(&sensorNames, "sensors", "sds011", "comma-separated sensors to read (sds011, dummy)")
	flag.StringVar(&serialPort, "serial", "/dev/ttyUSB0", "serial port of the SDS011 sensor")
	flag.StringVar(&standards, "std", "cn,usa", "comma-separated AQI standards to report (cn, usa)")
	flag.StringVar(&influxURL, "influx", "", "if given, also write reports to the InfluxDB server at this URL.\nThe token is read from the INFLUXDB_TOKEN environment variable.")
	flag.StringVar(&org, "org", "", "InfluxDB organization")
	flag.StringVar(&bucket, "bucket", "", "InfluxDB bucket")
	flag.IntVar(&port, "port", 8080, "port on which the device's web server should listen")
	flag.BoolVar(&dryrun, "dryrun", false, "set to true to print rather than publish reports")

	// Update directory paths by joining them to the user's home directory.
	home, err := homedir.Dir()
	if err != nil {
		log.Fatalf("Failed to get home dir: %v", err)
	}
	dotDir = path.Join(home, dotDir)
	mqttStoreDir = path.Join(home, mqttStoreDir)
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseStandards(s string) ([]report.Standard, error) {
	var stds []report.Standard
	for _, name := range splitList(s) {
		std, err := report.ParseStandard(name)
		if err != nil {
			return nil, err
		}
		stds = append(stds, std)
	}
	if len(stds) == 0 {
		return nil, fmt.Errorf("at least one standard must be given")
	}
	return stds, nil
}

func parseFlags() error {
	flag.Parse()

	if deviceID == "" {
		return fmt.Errorf("device flag must be given")
	}

	if cronSpec == "" {
		return fmt.Errorf("cronspec flag must be given")
	}

	if broker == "" && !dryrun {
		return fmt.Errorf("broker flag must be given unless dryrun is set")
	}

	if influxURL != "" && (org == "" || bucket == "") {
		return fmt.Errorf("org and bucket flags must be given with influx")
	}

	if len(splitList(sensorNames)) == 0 {
		return fmt.Errorf("at least one sensor must be given")
	}

	return nil
}

func registerSensors(names []string) error {
	for _, name := range names {
		switch name {
		case "dummy":
			sensor.Register(name, dummy.Dummy{})
		case "sds011":
			s, err := sds011.New(serialPort)
			if err != nil {
				return fmt.Errorf("failed to open SDS011 on %s: %v", serialPort, err)
			}
			sensor.Register(name, s)
		default:
			return fmt.Errorf("unknown sensor %q", name)
		}
	}
	return nil
}

func main() {
	if err := parseFlags(); err != nil {
		fmt.Printf("argument error: %v\n", err)
		os.Exit(2)
	}

	stds, err := parseStandards(standards)
	if err != nil {
		fmt.Printf("argument error: %v\n", err)
		os.Exit(2)
	}

	sensors := splitList(sensorNames)
	if err := registerSensors(sensors); err != nil {
		log.Fatal(err)
	}

	// Make all directories required by the program.
	dirs := []string{dotDir, mqttStoreDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0700); err != nil {
			log.Fatalf("Failed to make dir %s: %v", dir, err)
		}
	}

	job := SenseJob{
		DeviceID:    deviceID,
		Sensors:     sensors,
		Standards:   stds,
		TopicPrefix: topicPrefix,
		Dryrun:      dryrun,
		History:     cache.New[report.Reading](),
		Latest:      cache.New[report.Report](),
	}

	if !dryrun {
		password := ""
		if mqttUser != "" {
			password = envtools.MustGetenv("MQTT_PASSWORD")
		}
		opts := clientOptions(broker, "aqilogger-"+deviceID, mqttUser, password, mqttStoreDir)
		client, err := mqttConnect(opts, 5*time.Minute)
		if err != nil {
			log.Fatal(err)
		}
		job.Publisher = client

		// If the program is killed, disconnect from the MQTT server.
		defer client.Disconnect(250)
	}

	if influxURL != "" {
		job.DB = db.NewInfluxDB(influxURL, envtools.MustGetenv("INFLUXDB_TOKEN"), org, bucket)
	}

	SetupJob{Sensors: sensors}.Run()

	// Schedule the reading and publication routine.
	cr := cron.New()
	log.Printf("Starting cron scheduler with spec %q", cronSpec)
	if _, err := cr.AddJob(cronSpec, job); err != nil {
		log.Fatalf("Invalid cron spec %q: %v", cronSpec, err)
	}
	cr.Start()

	// Start up a web server that provides basic info about the device.
	go func() {
		router := newRouter(deviceID, job.Latest)
		if err := http.ListenAndServe(fmt.Sprintf(":%v", port), router); err != nil {
			log.Fatal(err)
		}
	}()

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Cleaning up...")
	<-cr.Stop().Done()
	ShutdownJob{Sensors: sensors}.Run()
}
