// Package config loads CLI settings from defaults, an optional YAML file and
// PIZZA_ prefixed environment variables, in increasing order of precedence.
//
// Recognized keys:
//
//	log-level: info   # debug, info, warn, error
//	format: text      # text, json, yaml, table
//	emoji: true       # decorate menu labels
//
// Environment overrides replace "-" with "_": PIZZA_LOG_LEVEL=debug.
package config
