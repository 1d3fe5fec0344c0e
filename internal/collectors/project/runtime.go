package project

import (
	"context"
	"os/exec"
	"strings"
)

// VersionResolver reports the runtime version of the project environment.
// The returned string is opaque: it is stored verbatim and compared by exact
// equality, never parsed.
type VersionResolver interface {
	Version(ctx context.Context) string
}

// NodeResolver resolves the version of the node binary on PATH.
type NodeResolver struct{}

// NewNodeResolver creates the default runtime resolver.
func NewNodeResolver() *NodeResolver {
	return &NodeResolver{}
}

// Version runs `node --version` and returns its trimmed output. A missing or
// failing node yields "": runtime absence is an optional input, not an
// error, and two node-less snapshots compare equal.
func (r *NodeResolver) Version(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "node", "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// StaticResolver returns a fixed version string. Used in tests.
type StaticResolver struct {
	Value string
}

func (r *StaticResolver) Version(ctx context.Context) string {
	return r.Value
}
