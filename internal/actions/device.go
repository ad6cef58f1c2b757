package actions

import (
	"context"

	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Device is the block device and mount command family.
type Device struct {
	s *remote.Session
}

// BlockDevices returns every block device with filesystem details where
// present. Sizes are bytes.
func (d Device) BlockDevices(ctx context.Context) (records.BlockDeviceList, error) {
	return remote.Run(ctx, d.s, "lsblk",
		[]string{"-bnP", "-o", "NAME,TYPE,SIZE,RO,FSTYPE,UUID,LABEL,MOUNTPOINT"},
		parsers.ParseLsblk)
}

// Mounts returns the mounted filesystems.
func (d Device) Mounts(ctx context.Context) (records.MountList, error) {
	return remote.Run(ctx, d.s, "findmnt",
		[]string{"-rn", "-o", "SOURCE,TARGET,FSTYPE,OPTIONS"},
		parsers.ParseFindmnt)
}
