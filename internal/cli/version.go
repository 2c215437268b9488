// internal/cli/version.go
package cli

import (
	"fmt"
	"io"
)

// Set with -ldflags "-X github.com/arc-language/wxconfig/internal/cli.Revision=..."
var (
	Revision     = "0.1.0"
	RevisionDate = "unknown"
)

func printRevision(w io.Writer) {
	fmt.Fprintf(w, "wx-config revision %s %s\n", Revision, RevisionDate)
}
