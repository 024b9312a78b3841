package consumer

import (
	"testing"
	"time"
)

func SetSyncRetryDelay(t *testing.T, d time.Duration) {
	prev := syncRetryDelay
	syncRetryDelay = d
	t.Cleanup(func() { syncRetryDelay = prev })
}
