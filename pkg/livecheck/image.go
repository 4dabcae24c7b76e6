package livecheck

import (
	"context"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"

	"github.com/GunniBusch/brew-version-check/pkg/version"
)

// ImageTags lists the tags published for a container image repository,
// e.g. "docker.io/library/postgres".
func ImageTags(ctx context.Context, repo string) ([]string, error) {
	ref, err := name.NewRepository(repo)
	if err != nil {
		return nil, err
	}
	return remote.List(ref, remote.WithContext(ctx))
}

// ImageVersions runs the tags of an image repository through the version
// heuristics, dropping tags ("latest", "bullseye") that carry no version
// information.
func ImageVersions(ctx context.Context, repo string) ([]version.Version, error) {
	tags, err := ImageTags(ctx, repo)
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
