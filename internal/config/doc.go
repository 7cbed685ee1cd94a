// Package config loads settings for the interm CLI.
//
// Values are resolved in order of increasing precedence:
//   - Built-in defaults
//   - A .env file in the working directory (using godotenv)
//   - INTERM_* environment variables
//   - Command line flags (applied by the cli package)
package config
