package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/bitrise-io/go-utils/log"

	"github.com/andrewjapar/playpublish/config"
	"github.com/andrewjapar/playpublish/googleplay"
	"github.com/andrewjapar/playpublish/publish"
	"github.com/andrewjapar/playpublish/workspace"
)

func runPublish(args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	var (
		configPath  = fs.String("config", "", "path to the release config YAML (required)")
		workDir     = fs.String("workspace", ".", "build workspace to resolve patterns against")
		credentials = fs.String("credentials", "", "path to a service-account JSON key file")
		buildResult = fs.String("build-result", "success", "result of the build that produced the artifacts")
		dryRun      = fs.Bool("dry-run", false, "resolve and pair artifacts, but upload nothing")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath == "" {
		return fmt.Errorf("-config is required")
	}
	if !*dryRun && *credentials == "" {
		return fmt.Errorf("-credentials is required unless -dry-run is set")
	}

	prior, err := publish.ParseBuildResult(*buildResult)
	if err != nil {
		return err
	}

	rel, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	rel = rel.Expand(config.EnvExpander)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := &publish.Logger{W: os.Stdout}

	var uploader publish.Uploader
	if *dryRun {
		uploader = publish.DryRun{Log: logger}
	} else {
		client, err := googleplay.NewClient(ctx, *credentials, logger)
		if err != nil {
			return err
		}
		uploader = client
	}

	orch := &publish.Orchestrator{
		Workspace: *workDir,
		Resolver:  workspace.Resolver{Root: *workDir},
		Uploader:  uploader,
		Log:       logger,
	}

	log.Infof("Uploading to Google Play (track config: %s)", *configPath)

	var outcome publish.Outcome
	if err := orch.Runner(prior, rel, &outcome).Run(ctx); err != nil {
		log.Errorf("Publish finished with status %q", outcome.Status)
		return err
	}

	switch outcome.Status {
	case publish.StatusSkipped:
		log.Warnf("Upload skipped (build result: %s)", prior)
	default:
		log.Donef("Publish succeeded")
	}
	return nil
}
