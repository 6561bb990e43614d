package workspace

import "fmt"

// Pairing maps a bundle's relative path to the relative path of its
// deobfuscation mapping file. It is either empty (no mapping files in
// play) or total: every bundle has exactly one mapping file.
type Pairing map[string]string

// MismatchError reports that the number of mapping files can not be
// reconciled with the number of bundles. It carries both full path lists
// so the operator can see exactly what each pattern resolved to.
type MismatchError struct {
	Artifacts []string
	Mappings  []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("there are %d AABs to be uploaded, but %d mapping files were found",
		len(e.Artifacts), len(e.Mappings))
}

// Pair associates each bundle with at most one mapping file:
//
//   - No mapping candidates: returns an empty Pairing. Only the caller
//     knows whether this is fine (mapping pattern unset) or fatal (pattern
//     set but matched nothing); that distinction is made before Pair.
//   - Exactly one candidate: it is shared by every bundle. Covers the
//     common single-module build that produces one mapping file for all
//     variants.
//   - As many candidates as bundles: paired positionally. Per-flavor
//     builds emit one mapping file per bundle under dimension-named
//     directories, so two sorted resolutions line up index by index even
//     though the paths share no prefix.
//
// Any other cardinality is ambiguous: there is no naming convention that
// reliably correlates a bundle with its mapping file, and guessing would
// silently corrupt crash symbolication. Pair refuses with a
// *MismatchError and no partial result.
func Pair(artifacts, mappings []string) (Pairing, error) {
	switch {
	case len(mappings) == 0:
		return Pairing{}, nil
	case len(mappings) == 1:
		paired := make(Pairing, len(artifacts))
		for _, a := range artifacts {
			paired[a] = mappings[0]
		}
		return paired, nil
	case len(mappings) == len(artifacts):
		paired := make(Pairing, len(artifacts))
		for i, a := range artifacts {
			paired[a] = mappings[i]
		}
		return paired, nil
	default:
		return nil, &MismatchError{Artifacts: artifacts, Mappings: mappings}
	}
}
