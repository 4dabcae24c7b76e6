// Package livecheck discovers the newest published version of a project
// from an upstream source: a release page, a git remote, or a container
// image repository.
package livecheck

import (
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

// Newest returns the greatest concrete version among candidates.  Null
// sentinels and HEAD snapshots are skipped; the null Version is returned
// when nothing remains.
func Newest(candidates []version.Version) version.Version {
	best := version.Null
	for _, cand := range candidates {
		if cand.IsNull() || cand.IsHead() {
			continue
		}
		if cand.Compare(best) > 0 {
			best = cand
		}
	}
	return best
}
