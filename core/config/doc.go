// Package config provides type-safe environment variable loading with
// per-type caching. A .env file in the working directory is loaded once
// before the first parse; parsing is handled by the caarlos0/env library.
//
// Basic usage:
//
//	type ServerConfig struct {
//		Addr  string `env:"ADDR" envDefault:":8080"`
//		Index string `env:"INDEX_FILE" envDefault:"index.html"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded only once per process; subsequent Load
// calls for the same type return the cached value.
package config
