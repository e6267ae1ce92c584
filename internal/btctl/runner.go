package btctl

import (
	"context"
	"os/exec"
)

// Runner abstracts invocation of the external controller binary so the
// Controller can be exercised against a mock in tests.
type Runner interface {
	// Output runs the binary with args, blocks until it exits, and returns
	// captured stdout. Stderr is discarded.
	Output(ctx context.Context, args ...string) ([]byte, error)

	// StartDetached launches the binary with args and returns without
	// waiting. The process outcome is unobservable: no exit code, no
	// output. Callers must treat the launch as fire-and-forget.
	StartDetached(args ...string) error
}

// execRunner invokes a real binary via os/exec.
type execRunner struct {
	binary string
}

// NewRunner returns a Runner backed by the given controller binary
// (normally "bluetoothctl").
func NewRunner(binary string) Runner {
	return &execRunner{binary: binary}
}

func (r *execRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, r.binary, args...).Output()
}

func (r *execRunner) StartDetached(args ...string) error {
	cmd := exec.Command(r.binary, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Release so the child is reparented instead of becoming a zombie
	// waiting on us.
	return cmd.Process.Release()
}
