package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/prodcost-backend/internal/app.Version=1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health and the startup log.
func BuildVersion() string {
	if Commit == "unknown" {
		return Version
	}
	short := Commit
	if len(short) > 12 {
		short = short[:12]
	}
	return fmt.Sprintf("%s+%s (%s)", Version, short, BuildTime)
}
