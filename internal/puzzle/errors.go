package puzzle

import (
	"fmt"
	"os"
	"strings"
)

// puzzleStateError reports a malformed grid or input file. This package is
// CLI-facing scaffolding around the solver, not a library, so it exits the
// process rather than returning an error — the same tradeoff the ambient
// dancing-links solver explicitly does NOT make for its own API.
func puzzleStateError(msg string) {
	fatalError("invalid puzzle state", msg)
}

func fatalError(msgs ...string) {
	msg := strings.Join(msgs, ": ")
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}
