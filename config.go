package flint

import (
	"time"

	"github.com/go-flint/flint/engine"
	"github.com/go-flint/flint/errors"
	"github.com/go-flint/flint/logging"
	"github.com/go-flint/flint/serializer"
)

// Config configures a Context. It is validated once at context creation and
// held immutably by the Context afterwards.
type Config struct {
	AppName           string        // label attached to engine-side diagnostics
	EngineHost        string        // [REQUIRED unless Conn is supplied] hostname of the engine
	EnginePort        int           // port of the engine
	Conn              engine.Conn   // pre-built engine connection, e.g. a local engine
	DefaultSerializer string        // serializer name used when callers do not specify one
	BatchSize         int           // default serializer batch size
	RPCTimeout        time.Duration // timeout for unary engine calls
	LogLevel          int           // logging level for driver diagnostics
	InMemoryStaging   bool          // stage collections through memory instead of temp files
}

func ensureDefaultConfigValues(conf *Config) {
	if len(conf.AppName) == 0 {
		conf.AppName = "flint"
	}
	if len(conf.DefaultSerializer) == 0 {
		conf.DefaultSerializer = serializer.KindPlain
	}
	if conf.BatchSize == 0 {
		conf.BatchSize = 16
	}
	if conf.RPCTimeout == 0 {
		conf.RPCTimeout = time.Duration(5) * time.Second
	}
	if conf.LogLevel == 0 {
		conf.LogLevel = logging.InfoLevel
	}
}

func validateConfig(conf *Config) error {
	if conf == nil {
		return errors.ConfigError{Field: "Config", Message: "must not be nil"}
	}
	if conf.Conn == nil && len(conf.EngineHost) == 0 {
		return errors.ConfigError{Field: "EngineHost", Message: "must be set when no engine connection is supplied"}
	}
	if conf.BatchSize < 0 {
		return errors.ConfigError{Field: "BatchSize", Message: "must not be negative"}
	}
	if conf.EnginePort < 0 {
		return errors.ConfigError{Field: "EnginePort", Message: "must not be negative"}
	}
	if _, err := serializer.Resolve(defaultSerializerName(conf), 1); err != nil {
		return errors.ConfigError{Field: "DefaultSerializer", Message: err.Error()}
	}
	return nil
}

func defaultSerializerName(conf *Config) string {
	if len(conf.DefaultSerializer) == 0 {
		return serializer.KindPlain
	}
	return conf.DefaultSerializer
}
