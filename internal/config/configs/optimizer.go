package configs

import "time"

// Optimizer tunes rule evaluation. PaceInterval is the minimum gap between
// two ads' mutations.
type Optimizer struct {
	PaceInterval time.Duration `env:"PACE_INTERVAL" envDefault:"300ms"`
	WindowDays   int           `env:"WINDOW_DAYS" envDefault:"7"`
	MaxAds       int           `env:"MAX_ADS" envDefault:"50"`
}
