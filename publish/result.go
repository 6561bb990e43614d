package publish

import "fmt"

// BuildResult is the outcome of the build that produced the artifacts,
// reported by the CI host. Ordering matters: results are comparable, and
// the pipeline only runs when the prior result is no worse than unstable.
type BuildResult int

const (
	ResultSuccess BuildResult = iota
	ResultUnstable
	ResultFailure
	ResultNotBuilt
	ResultAborted
)

var resultNames = map[BuildResult]string{
	ResultSuccess:  "success",
	ResultUnstable: "unstable",
	ResultFailure:  "failure",
	ResultNotBuilt: "not-built",
	ResultAborted:  "aborted",
}

func (r BuildResult) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("BuildResult(%d)", int(r))
}

// WorseThan reports whether r is a worse outcome than other.
func (r BuildResult) WorseThan(other BuildResult) bool {
	return r > other
}

// ParseBuildResult parses a build result name as reported by the CI host.
func ParseBuildResult(s string) (BuildResult, error) {
	for r, name := range resultNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown build result %q (must be one of: success, unstable, failure, not-built, aborted)", s)
}
