package configs

import "time"

// HTTP defines configuration for the HTTP server. Vendor calls such as image
// generation can take close to a minute, so the write timeout is generous.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"120s"`
	// RequestTimeout bounds a single handler, including its vendor calls.
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"110s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
