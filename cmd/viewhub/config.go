package main

// Config is read from the environment by pkg/config.
// Empty log settings defer to the environment defaults of pkg/logger.
type Config struct {
	Env              string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"viewhub"`
	LogLevel         string `env:"LOG_LEVEL"`
	LogFormat        string `env:"LOG_FORMAT"`
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"viewhub"`
}
