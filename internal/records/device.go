package records

// BlockDevice is one device from lsblk -b -P. Size is in bytes
// (lsblk -b). FSType, UUID, Label and MountPoint are nil when lsblk
// prints them empty.
type BlockDevice struct {
	Name       string
	Kind       string // TYPE column: "disk", "part", "loop", "rom"
	Size       int64
	ReadOnly   bool
	FSType     *string
	UUID       *string
	Label      *string
	MountPoint *string
}

// BlockDeviceList preserves lsblk output order.
type BlockDeviceList struct {
	Devices []BlockDevice
	Count   int
}

// Mount is one row of findmnt -rn -o SOURCE,TARGET,FSTYPE,OPTIONS.
type Mount struct {
	Source  string
	Target  string
	FSType  string
	Options string
}

// MountList preserves findmnt output order.
type MountList struct {
	Mounts []Mount
	Count  int
}
