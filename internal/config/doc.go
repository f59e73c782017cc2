// Package config defines the application configuration structure and
// handles loading settings from environment variables and config files.
package config
