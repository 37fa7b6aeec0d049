// Package config loads the YAML configuration file that declares named
// loggers and their sinks.
//
// A configuration document has three sections, all optional:
//
//	flags:
//	  log-level: debug
//	  log-color: true
//
//	console:
//	  level: info
//	  time-layout: "2006-01-02 15:04:05,000"
//	  color: false
//
//	loggers:
//	  - name: app
//	    level: debug
//	    file: /var/log/app.jsonl
//	    schema:
//	      time: "@timestamp"
//	      message: text
//
// The flags section provides default values for command-line flags. The
// console section sets defaults shared by every declared logger, and each
// loggers entry may override the level and attach a JSON file sink with an
// optional key schema.
//
// Use [Load] or [Parse] to read a document and [Config.Apply] to construct
// the declared loggers in a [log.Registry]:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//
//	loggers, err := cfg.Apply(registry)
package config
