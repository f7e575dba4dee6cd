// Package config provides configuration loading, merging, and validation
// for shkolo-cli.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. Command-line flag overrides
//  2. Environment variables (SHKOLO_ prefix, with an optional .env file
//     loaded from the config directory first)
//  3. JSON config file (explicit path, or config.json in the config
//     directory when present)
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
