package livecheck

import (
	"context"
	"strings"

	"github.com/datawire/dlib/dexec"

	"github.com/GunniBusch/brew-version-check/pkg/version"
)

// GitTags lists the tag names of a remote git repository without cloning
// it.
func GitTags(ctx context.Context, remote string) ([]string, error) {
	cmd := dexec.CommandContext(ctx, "git", "ls-remote", "--tags", "--refs", "--", remote)
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return parseLsRemote(out), nil
}

// parseLsRemote extracts tag names from `git ls-remote --tags` output,
// which is lines of the form "<oid>\trefs/tags/<name>".
func parseLsRemote(out []byte) []string {
	var tags []string
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		ref := fields[1]
		if !strings.HasPrefix(ref, "refs/tags/") {
			continue
		}
		// Peeled-tag entries slip through on old git versions that don't
		// understand --refs.
		tag := strings.TrimSuffix(strings.TrimPrefix(ref, "refs/tags/"), "^{}")
		tags = append(tags, tag)
	}
	return tags
}

// GitVersions runs the tag names of a remote through the version
// heuristics, dropping tags that carry no version information.
func GitVersions(ctx context.Context, remote string) ([]version.Version, error) {
	tags, err := GitTags(ctx, remote)
	if err != nil {
		return nil, err
	}
	vers := make([]version.Version, 0, len(tags))
	for _, tag := range tags {
		if ver := version.Parse(tag); !ver.IsNull() {
			vers = append(vers, ver)
		}
	}
	return vers, nil
}
