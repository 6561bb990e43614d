package main

import (
	"flag"
	"fmt"

	"github.com/bitrise-io/go-utils/log"

	"github.com/andrewjapar/playpublish/config"
)

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "path to the release config YAML (required)")
		noExpand   = fs.Bool("no-expand", false, "validate raw values without environment expansion")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return fmt.Errorf("-config is required")
	}

	rel, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if !*noExpand {
		rel = rel.Expand(config.EnvExpander)
	}

	if errs := rel.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Errorf("- %s", e)
		}
		return fmt.Errorf("%d configuration error(s)", len(errs))
	}

	log.Donef("Configuration is valid")
	return nil
}
