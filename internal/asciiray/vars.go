package asciiray

import (
	"io"
	"os"
)

var (
	Debug             = false     // set to true to collect per-path pixel statistics
	DiagOut io.Writer = os.Stderr // pixel statistics go here, never into the frame
)
