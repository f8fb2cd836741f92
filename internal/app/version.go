package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build metadata, overridable at link time:
//
//	go build -ldflags "-X github.com/loriab/libcerf/internal/app.Version=v1.2.3"
var (
	// Version is the release version of the binary.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// PrintVersion writes the version banner for the -version flag.
//
// Parameters:
//   - out: The destination writer.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "cerf %s (commit %s, built %s, %s)\n", Version, Commit, Date, runtime.Version())
}
