package actions

import (
	"context"

	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Docker is the container command family.
type Docker struct {
	s *remote.Session
}

// Containers lists running containers, or all containers when all is
// set.
func (d Docker) Containers(ctx context.Context, all bool) (records.ContainerList, error) {
	args := []string{"ps", "--format", "{{json .}}"}
	if all {
		args = append(args, "-a")
	}
	return remote.Run(ctx, d.s, "docker", args, parsers.ParseDockerPS)
}

// Images lists local images.
func (d Docker) Images(ctx context.Context) (records.ImageList, error) {
	return remote.Run(ctx, d.s, "docker",
		[]string{"images", "--format", "{{json .}}"},
		parsers.ParseDockerImages)
}
