package engine

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeInfo describes the volume that holds the cache roots, for
// display next to the aggregate size.
type VolumeInfo struct {
	Path        string
	TotalBytes  uint64
	FreeBytes   uint64
	UsedPercent float64
}

// VolumeUsage reports usage of the volume containing the first root.
// ok is false when there are no roots or the volume cannot be queried;
// the caller just omits the line.
func (e *Engine) VolumeUsage() (VolumeInfo, bool) {
	if len(e.roots) == 0 {
		return VolumeInfo{}, false
	}

	usage, err := disk.Usage(e.roots[0])
	if err != nil {
		return VolumeInfo{}, false
	}

	return VolumeInfo{
		Path:        usage.Path,
		TotalBytes:  usage.Total,
		FreeBytes:   usage.Free,
		UsedPercent: usage.UsedPercent,
	}, true
}
