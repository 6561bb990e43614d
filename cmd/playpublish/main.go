// Command playpublish uploads Android App Bundles produced by a build to
// Google Play, pairs each bundle with its deobfuscation mapping file, and
// stages a rollout on a release track.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "publish":
		if err := runPublish(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "playpublish publish: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := runValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "playpublish validate: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "playpublish: unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: playpublish <command> [flags]

Commands:
  publish    Upload AAB files to Google Play and set up a staged rollout
  validate   Check a release configuration without uploading anything

Run 'playpublish <command> --help' for command-specific flags.
`)
}
