package main

import (
	"testing"
)

func TestClientOptions(t *testing.T) {
	opts := clientOptions("tcp://localhost:1883", "aqilogger-foo", "user", "hunter2", t.TempDir())

	if len(opts.Servers) != 1 || opts.Servers[0].String() != "tcp://localhost:1883" {
		t.Errorf("Got servers %v, want [tcp://localhost:1883]", opts.Servers)
	}
	if opts.ClientID != "aqilogger-foo" {
		t.Errorf("Got client ID %q, want %q", opts.ClientID, "aqilogger-foo")
	}
	if opts.Username != "user" || opts.Password != "hunter2" {
		t.Errorf("Got credentials %q/%q, want user/hunter2", opts.Username, opts.Password)
	}
	if opts.CleanSession {
		t.Error("Clean session is set; stored messages would be dropped on reconnect")
	}
}

func TestClientOptionsNoAuth(t *testing.T) {
	opts := clientOptions("tcp://localhost:1883", "aqilogger-foo", "", "ignored", t.TempDir())
	if opts.Username != "" || opts.Password != "" {
		t.Errorf("Got credentials %q/%q, want none", opts.Username, opts.Password)
	}
}

func TestWaitToken(t *testing.T) {
	if err := waitToken(fakeToken{}); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := waitToken(fakeToken{err: errBroker}); err == nil {
		t.Error("Expected error, but error is nil")
	}
}
