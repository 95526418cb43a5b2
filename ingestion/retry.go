package ingestion

import (
	"context"
	"errors"
	"time"

	"github.com/poiesic/talentq/storage"
)

// retryConflicts runs op until it succeeds, fails with an error other than
// storage.ErrConflict, or the attempts run out. The delay doubles after each
// failed attempt.
func (i *Importer) retryConflicts(ctx context.Context, op func() error) error {
	delay := i.delay
	var err error
	for attempt := 1; attempt <= i.attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		err = op()
		if err == nil || !errors.Is(err, storage.ErrConflict) {
			return err
		}
		i.logger.Debug("storage conflict, will retry", "attempt", attempt, "maxAttempts", i.attempts, "err", err)

		// Don't sleep after the last attempt
		if attempt == i.attempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return err
}
