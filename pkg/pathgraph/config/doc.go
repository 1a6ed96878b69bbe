// Package config loads search tuning settings from YAML or JSON files.
//
// The Config type is a thin accessor over a decoded map: every getter takes
// a default and never fails, so hosts can ship without a config file and
// override individual keys when one is present.
//
//	cfg, err := config.FromFile("pathgraph.yaml")
//	if err != nil {
//	    // missing or malformed file
//	}
//	batch := cfg.Int("batch_size", 10)
//	yield := cfg.Duration("yield_interval", 50*time.Millisecond)
//
// The pathgraph package maps the recognized tuning keys to search options
// with pathgraph.OptionsFromConfig.
package config
