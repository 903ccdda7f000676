package config

import "testing"

func TestValidateDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty broker", mutate: func(c *Config) { c.MQTTBroker = "" }},
		{name: "bad mqtt port", mutate: func(c *Config) { c.MQTTPort = 0 }},
		{name: "bad health port", mutate: func(c *Config) { c.HealthPort = 70000 }},
		{name: "empty service name", mutate: func(c *Config) { c.ServiceName = "" }},
		{name: "empty topic root", mutate: func(c *Config) { c.TopicRoot = "" }},
		{name: "wildcard in topic root", mutate: func(c *Config) { c.TopicRoot = "arwn/#" }},
		{name: "multi-segment topic root", mutate: func(c *Config) { c.TopicRoot = "home/arwn" }},
		{name: "empty entity prefix", mutate: func(c *Config) { c.EntityPrefix = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }},
		{name: "mirror without redis host", mutate: func(c *Config) { c.EnableMirror = true; c.RedisHost = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARWN_MQTT_BROKER", "broker.local")
	t.Setenv("ARWN_MQTT_PORT", "8883")
	t.Setenv("ARWN_TOPIC_ROOT", "weather")
	t.Setenv("ARWN_ENABLE_MIRROR", "true")
	t.Setenv("ARWN_LOG_LEVEL", "debug")

	cfg := NewConfig()
	cfg.LoadFromEnv()

	if cfg.MQTTBroker != "broker.local" {
		t.Errorf("MQTTBroker = %q, want broker.local", cfg.MQTTBroker)
	}
	if cfg.MQTTPort != 8883 {
		t.Errorf("MQTTPort = %d, want 8883", cfg.MQTTPort)
	}
	if cfg.TopicRoot != "weather" {
		t.Errorf("TopicRoot = %q, want weather", cfg.TopicRoot)
	}
	if !cfg.EnableMirror {
		t.Error("EnableMirror should be true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadFromEnvIgnoresUnparseable(t *testing.T) {
	t.Setenv("ARWN_MQTT_PORT", "not-a-number")

	cfg := NewConfig()
	cfg.LoadFromEnv()

	if cfg.MQTTPort != 1883 {
		t.Errorf("MQTTPort = %d, want default 1883", cfg.MQTTPort)
	}
}

func TestAddresses(t *testing.T) {
	cfg := NewConfig()
	cfg.MQTTBroker = "broker.local"
	cfg.MQTTPort = 1883
	cfg.RedisHost = "cache.local"
	cfg.RedisPort = 6380

	if got := cfg.MQTTAddress(); got != "tcp://broker.local:1883" {
		t.Errorf("MQTTAddress() = %q", got)
	}
	if got := cfg.RedisAddress(); got != "cache.local:6380" {
		t.Errorf("RedisAddress() = %q", got)
	}
}
