package config

import "labrec/internal/outputpath"

const (
	defaultRemoteControlEnabled = true
	defaultRemoteControlPort    = 22345
	defaultBufferSize           = 360
	defaultMaxSamplesPerPull    = 500
	defaultClockSyncInterval    = 5.0
	defaultStreamTimeout        = 2.0
	defaultStreamRecover        = true
)

// defaultTree is the fixed configuration the store starts from. Keys and
// values mirror what other recorder implementations assume, so the tree
// shape is part of the compatibility surface.
func defaultTree() map[string]any {
	return map[string]any{
		"filename": outputpath.DefaultFilename,
		"remote_control": map[string]any{
			"enabled": defaultRemoteControlEnabled,
			"port":    defaultRemoteControlPort,
		},
		"recording": map[string]any{
			"buffer_size":          defaultBufferSize,
			"max_samples_per_pull": defaultMaxSamplesPerPull,
			"clock_sync_interval":  defaultClockSyncInterval,
		},
		"streams": map[string]any{
			"timeout": defaultStreamTimeout,
			"recover": defaultStreamRecover,
		},
	}
}
