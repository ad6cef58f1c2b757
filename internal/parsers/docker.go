package parsers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("docker_ps", untyped(ParseDockerPS))
	register("docker_images", untyped(ParseDockerImages))
}

// dockerPSLine mirrors the fields docker ps emits with
// --format '{{json .}}' (one JSON object per line).
type dockerPSLine struct {
	ID        string `json:"ID"`
	Names     string `json:"Names"`
	Image     string `json:"Image"`
	Command   string `json:"Command"`
	State     string `json:"State"`
	Status    string `json:"Status"`
	CreatedAt string `json:"CreatedAt"`
	Ports     string `json:"Ports"`
}

// ParseDockerPS parses docker ps --format '{{json .}}' output. A line
// that is not valid JSON is a parse error, not a skipped row.
func ParseDockerPS(stdout string) (records.ContainerList, error) {
	var containers []records.Container

	for _, line := range nonEmptyLines(stdout) {
		var row dockerPSLine
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return records.ContainerList{}, fmt.Errorf("malformed docker ps line: %w", err)
		}
		if row.ID == "" {
			return records.ContainerList{}, fmt.Errorf("docker ps line missing ID: %q", line)
		}

		var ports []string
		if row.Ports != "" {
			ports = strings.Split(row.Ports, ", ")
		}

		containers = append(containers, records.Container{
			ID:        row.ID,
			Name:      row.Names,
			Image:     row.Image,
			Command:   strings.Trim(row.Command, `"`),
			State:     row.State,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
			Ports:     ports,
		})
	}

	return records.ContainerList{Containers: containers, Count: len(containers)}, nil
}

// dockerImageLine mirrors docker images --format '{{json .}}' fields.
type dockerImageLine struct {
	ID         string `json:"ID"`
	Repository string `json:"Repository"`
	Tag        string `json:"Tag"`
	CreatedAt  string `json:"CreatedAt"`
	Size       string `json:"Size"`
}

// ParseDockerImages parses docker images --format '{{json .}}' output.
func ParseDockerImages(stdout string) (records.ImageList, error) {
	var images []records.Image

	for _, line := range nonEmptyLines(stdout) {
		var row dockerImageLine
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return records.ImageList{}, fmt.Errorf("malformed docker images line: %w", err)
		}
		if row.ID == "" {
			return records.ImageList{}, fmt.Errorf("docker images line missing ID: %q", line)
		}

		images = append(images, records.Image{
			ID:         row.ID,
			Repository: row.Repository,
			Tag:        row.Tag,
			CreatedAt:  row.CreatedAt,
			Size:       row.Size,
		})
	}

	return records.ImageList{Images: images, Count: len(images)}, nil
}
