package crm

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// Keep-alive connections from httptest clients wind down after the
		// servers close; don't flag them.
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}
