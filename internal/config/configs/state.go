package configs

// State locates the client snapshot file used by the CLI.
type State struct {
	Path string `env:"PATH" envDefault:".andromeda/state.json"`
}
