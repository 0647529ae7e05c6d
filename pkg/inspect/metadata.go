package inspect

import (
	"runtime"
	"time"
)

// Metadata records when and where an inspection ran. It is stamped onto
// the root node exactly once per Inspect call, never per node.
type Metadata struct {
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Stamp captures the current time and environment description.
func Stamp() Metadata {
	return Metadata{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
