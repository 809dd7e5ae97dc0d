package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const waitDur = 10 * time.Second

// publisher is the subset of mqtt.Client used to publish reports.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

func onConnect(client mqtt.Client) {
	log.Printf("Connected to MQTT broker")
}

func onConnectionLost(client mqtt.Client, err error) {
	log.Printf("Connection to MQTT broker lost: %v", err)
}

func clientOptions(broker, clientID, username, password, storeDir string) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	if username != "" {
		opts.SetUsername(username)
		opts.SetPassword(password)
	}

	// Messages that couldn't be delivered, e.g. because the network went down,
	// are kept here and resent after reconnecting.
	opts.SetStore(mqtt.NewFileStore(storeDir))
	opts.SetCleanSession(false)
	opts.SetAutoReconnect(true)

	opts.SetOnConnectHandler(onConnect)
	opts.SetConnectionLostHandler(onConnectionLost)
	return opts
}

// mqttConnect connects to the broker, retrying with exponential backoff for up
// to maxElapsed.
func mqttConnect(opts *mqtt.ClientOptions, maxElapsed time.Duration) (mqtt.Client, error) {
	client := mqtt.NewClient(opts)

	operation := func() error {
		token := client.Connect()
		if !token.WaitTimeout(waitDur) {
			return fmt.Errorf("MQTT connection attempt timed out after %v", waitDur)
		} else if token.Error() != nil {
			return fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed
	notify := func(err error, d time.Duration) {
		log.Printf("%v; retrying in %v", err, d)
	}
	if err := backoff.RetryNotify(operation, bo, notify); err != nil {
		return nil, err
	}

	return client, nil
}

func waitToken(token mqtt.Token) error {
	if ok := token.WaitTimeout(waitDur); !ok {
		// Timed out.
		return fmt.Errorf("publish timed out after %v", waitDur)
	} else if token.Error() != nil {
		// Finished before timeout but failed to publish.
		return fmt.Errorf("failed to publish: %v", token.Error())
	}
	return nil
}
