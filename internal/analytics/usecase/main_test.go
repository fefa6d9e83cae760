package usecase

import (
	"testing"

	"go.uber.org/goleak"
)

// The orchestrator fans work out across goroutines; fail the package if any
// of them outlive their test.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
