package auth

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sebuszqo/BudgetTracker/internal/log"
)

// RevocationList remembers logged-out access tokens by jti until they would have expired anyway.
type RevocationList struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (l *RevocationList) Revoke(jti string, expiresAt time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tokens[jti] = expiresAt
}

func (l *RevocationList) IsRevoked(jti string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, revoked := l.tokens[jti]
	return revoked
}

func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.tokens)
}

// PurgeExpired drops entries whose token has expired and returns how many were removed.
func (l *RevocationList) PurgeExpired() int {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	purged := 0
	for jti, expiresAt := range l.tokens {
		if now.After(expiresAt) {
			delete(l.tokens, jti)
			purged++
		}
	}
	return purged
}

// ScheduleCleanup registers PurgeExpired on the scheduler using a cron spec such as "@every 10m".
func (l *RevocationList) ScheduleCleanup(scheduler *cron.Cron, spec string, logger *log.Logger) (cron.EntryID, error) {
	logger = logger.WithComponent(log.ComponentScheduler)
	return scheduler.AddFunc(spec, func() {
		if purged := l.PurgeExpired(); purged > 0 {
			logger.Debug("purged revoked tokens", "purged", purged, "remaining", l.Len())
		}
	})
}
