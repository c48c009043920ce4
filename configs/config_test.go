package configs

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestNewIsValid(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("default client config invalid: %v", err)
	}
	if err := NewServer().Validate(); err != nil {
		t.Fatalf("default server config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"racket index", func(c *Config) { c.Racket = 2 }},
		{"negative racket index", func(c *Config) { c.Racket = -1 }},
		{"empty server", func(c *Config) { c.ServerAddr = "" }},
		{"protocol", func(c *Config) { c.Protocol = "json" }},
		{"log lines", func(c *Config) { c.LogLines = 0 }},
		{"width", func(c *Config) { c.Width = 0 }},
		{"ball", func(c *Config) { c.BallSize = -1 }},
		{"speed", func(c *Config) { c.BallSpeed = -0.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestServerURL(t *testing.T) {
	cfg := New()
	cfg.ServerAddr = "example.org:8000"
	if got, want := cfg.ServerURL(), "ws://example.org:8000/conn"; got != want {
		t.Fatalf("ServerURL() = %q, want %q", got, want)
	}
}

func TestServerAddrs(t *testing.T) {
	s := NewServer()
	s.Bind = "127.0.0.1"
	s.Port = 9000
	if got := s.Addr(); got != "127.0.0.1:9000" {
		t.Fatalf("Addr() = %q", got)
	}
	if got := s.PublicAddr(); got != "localhost:9000" {
		t.Fatalf("PublicAddr() = %q", got)
	}
	s.Hostname = "pong.example.org"
	if got := s.PublicAddr(); got != "pong.example.org:9000" {
		t.Fatalf("PublicAddr() = %q", got)
	}
	s.Hostname = "pong.example.org:80"
	if got := s.PublicAddr(); got != "pong.example.org:80" {
		t.Fatalf("PublicAddr() = %q", got)
	}
	s.Port = 70000
	if err := s.Validate(); err == nil {
		t.Fatal("expected port error")
	}
}

func TestBindEnv(t *testing.T) {
	t.Setenv("JAPONGTEST_STOP_ON_CLOSE", "false")
	t.Setenv("JAPONGTEST_PORT", "9100")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	NormalizeFlags(fs)
	stop := fs.Bool("stop-on-close", true, "")
	port := fs.Int("port", 8000, "")
	nick := fs.String("nick", "player", "")
	if err := fs.Parse([]string{"--nick", "alice"}); err != nil {
		t.Fatal(err)
	}
	BindEnv(fs, "JAPONGTEST")

	if *stop {
		t.Error("stop-on-close should come from the environment")
	}
	if *port != 9100 {
		t.Errorf("port = %d, want 9100", *port)
	}
	if *nick != "alice" {
		t.Errorf("explicit flag overridden: nick = %q", *nick)
	}
}

func TestNormalizeFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	NormalizeFlags(fs)
	stop := fs.Bool("stop-on-close", true, "")
	if err := fs.Parse([]string{"--stop_on_close=false"}); err != nil {
		t.Fatal(err)
	}
	if *stop {
		t.Fatal("underscore form was not normalised")
	}
}
