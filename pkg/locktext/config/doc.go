/*
Package config defines the settings for the locktext command.

# Overview

Settings carries the options that shape a run: an optional replacement
template table, logging, strict validation, tracing, and output indent.
Fields use mapstructure tags so a viper instance can unmarshal them from
flags, environment variables, and a config file.

# Basic Usage

	s := config.Defaults()
	s.Strict = true
	if err := s.Validate(); err != nil {
	    return err
	}
	logger := observability.NewLogger(os.Stderr, s.Level(), s.LogFormat)

# File Format

	# locktext.yaml
	templates_file: ./templates.yaml
	log_level: info
	log_format: json
	strict: true
*/
package config
