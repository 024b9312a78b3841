package returntowork

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunScanner runs Scan once immediately and then on every tick until ctx is
// cancelled.
func RunScanner(ctx context.Context, svc Service, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}

	log := logger.Named("returntowork.worker")
	log.Info("return-to-work scanner started", zap.Duration("interval", interval))

	scan := func() {
		if _, err := svc.Scan(ctx, time.Now()); err != nil {
			log.Error("return-to-work scan failed", zap.Error(err))
		}
	}
	scan()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("return-to-work scanner stopped")
			return
		case <-ticker.C:
			scan()
		}
	}
}
