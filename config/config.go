// Package config loads the small set of operational knobs a dnswire
// consumer tunes at deploy time: parse-time sanity limits and outbound
// send pacing. It follows the same flat YAML-to-struct pattern as the
// teacher's cmd/dnsscience-grpc/config.go.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds operational limits for the codec and its transport helper.
// Fields a config file omits keep Default()'s values (see Load); a field
// the file sets explicitly, even to zero, keeps the file's value.
type Config struct {
	// MaxMessageSize is the wire size limit for parsed messages, in bytes.
	// RFC 1035 bounds a TCP message at 65535. message.Parse does not read
	// this field; it applies its own fixed 65535-byte limit.
	MaxMessageSize int `yaml:"max_message_size"`

	// MaxRecordsPerSection is the limit on how many questions or records a
	// single section may declare. message.Parse does not read this field;
	// it applies its own fixed limit of 8192 per section.
	MaxRecordsPerSection int `yaml:"max_records_per_section"`

	// SendQueriesPerSecond and SendBurst configure the transport
	// package's outbound rate limiter.
	SendQueriesPerSecond float64 `yaml:"send_queries_per_second"`
	SendBurst            int     `yaml:"send_burst"`

	// SendTimeout bounds how long transport.Send waits for a reply.
	SendTimeout time.Duration `yaml:"send_timeout"`
}

// Default returns the limits the teacher's own transport/engine code
// applies absent an operator override.
func Default() Config {
	return Config{
		MaxMessageSize:       65535,
		MaxRecordsPerSection: 8192,
		SendQueriesPerSecond: 100,
		SendBurst:            200,
		SendTimeout:          5 * time.Second,
	}
}

// Load reads a YAML config file, filling in Default() values for any
// field the file omits.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.MaxMessageSize <= 0 || cfg.MaxMessageSize > 65535 {
		return Config{}, fmt.Errorf("config: max_message_size must be in (0, 65535]")
	}
	return cfg, nil
}
