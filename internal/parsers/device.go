package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("lsblk", untyped(ParseLsblk))
	register("findmnt", untyped(ParseFindmnt))
}

// pairRe matches one KEY="value" pair of lsblk -P output.
var pairRe = regexp.MustCompile(`([A-Z]+)="([^"]*)"`)

// ParseLsblk parses
//
//	lsblk -bnP -o NAME,TYPE,SIZE,RO,FSTYPE,UUID,LABEL,MOUNTPOINT
//
// Sizes are bytes because of -b. Empty-valued keys (FSTYPE, UUID,
// LABEL, MOUNTPOINT) become nil, not empty strings, so "no filesystem"
// is distinguishable from an unlabeled one.
func ParseLsblk(stdout string) (records.BlockDeviceList, error) {
	var devices []records.BlockDevice

	for _, line := range nonEmptyLines(stdout) {
		pairs := pairRe.FindAllStringSubmatch(line, -1)
		if pairs == nil {
			return records.BlockDeviceList{}, fmt.Errorf("malformed lsblk line: %q", line)
		}

		values := make(map[string]string, len(pairs))
		for _, p := range pairs {
			values[p[1]] = p[2]
		}

		for _, required := range []string{"NAME", "TYPE", "SIZE", "RO"} {
			if _, ok := values[required]; !ok {
				return records.BlockDeviceList{}, fmt.Errorf("lsblk line missing %s: %q", required, line)
			}
		}

		size, err := parseInt64(values["SIZE"], "device size")
		if err != nil {
			return records.BlockDeviceList{}, err
		}

		devices = append(devices, records.BlockDevice{
			Name:       values["NAME"],
			Kind:       values["TYPE"],
			Size:       size,
			ReadOnly:   values["RO"] == "1",
			FSType:     optional(values["FSTYPE"]),
			UUID:       optional(values["UUID"]),
			Label:      optional(values["LABEL"]),
			MountPoint: optional(values["MOUNTPOINT"]),
		})
	}

	return records.BlockDeviceList{Devices: devices, Count: len(devices)}, nil
}

// ParseFindmnt parses findmnt -rn -o SOURCE,TARGET,FSTYPE,OPTIONS
// output: four space-separated columns per mount.
func ParseFindmnt(stdout string) (records.MountList, error) {
	var mounts []records.Mount

	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return records.MountList{}, fmt.Errorf("expected 4 findmnt fields, got %d in %q", len(fields), line)
		}

		mounts = append(mounts, records.Mount{
			Source:  fields[0],
			Target:  fields[1],
			FSType:  fields[2],
			Options: fields[3],
		})
	}

	return records.MountList{Mounts: mounts, Count: len(mounts)}, nil
}
