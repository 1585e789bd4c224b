// Package config loads demokit configuration from an optional
// config.yml, an optional .env file, and DEMOKIT_* environment
// variables. A run with no configuration present at all must work:
// every field has a usable default.
package config
