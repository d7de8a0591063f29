// Package access decides whether an actor may change a client's financial
// records for a month.
package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/client"
)

var (
	ErrEditWindowClosed        = errors.New("edit window closed")
	ErrServiceAgreementExpired = errors.New("service agreement expired")
)

//go:generate mockgen -source=gate.go -destination=clients_mock.go -package=access
type Clients interface {
	Get(ctx context.Context, id uuid.UUID) (*client.Client, error)
	LatestServiceAgreement(ctx context.Context, clientID uuid.UUID) (*client.Document, error)
}

type Gate struct {
	clients Clients
	now     func() time.Time
}

func NewGate(clients Clients) *Gate {
	return &Gate{clients: clients, now: time.Now}
}

// WithClock replaces the time source used for expiry checks.
func (g *Gate) WithClock(now func() time.Time) *Gate {
	g.now = now
	return g
}

// Check returns nil when actor may mutate clientID's records in a month
// whose effective lock state is locked.
//
// Super admins always pass. Otherwise a locked month fails with
// ErrEditWindowClosed, then a latest service agreement that expired before
// today fails with ErrServiceAgreementExpired unless the client carries a
// status override. A client without any dated service agreement passes.
func (g *Gate) Check(ctx context.Context, actor auth.Actor, clientID uuid.UUID, locked bool) error {
	if !IsEditable(locked, actor) {
		return ErrEditWindowClosed
	}

	if actor.IsSuperAdmin() {
		return nil
	}

	agreement, err := g.clients.LatestServiceAgreement(ctx, clientID)
	if err != nil {
		return fmt.Errorf("checking service agreement: %w", err)
	}

	if agreement == nil || !Expired(*agreement.ExpiryDate, g.now()) {
		return nil
	}

	c, err := g.clients.Get(ctx, clientID)
	if err != nil {
		return fmt.Errorf("checking status override: %w", err)
	}

	if c.StatusOverride {
		return nil
	}

	return ErrServiceAgreementExpired
}

// Expired reports whether an agreement expiring on the calendar day of
// expiry is past at now. The expiry day itself is still valid. expiry is a
// date and keeps its own calendar day; now is read in UTC like periods are.
func Expired(expiry, now time.Time) bool {
	y, m, d := expiry.Date()
	ey, em, ed := now.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Before(time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC))
}

// IsEditable reports whether actor may edit a month in the given lock state,
// ignoring service agreements.
func IsEditable(locked bool, actor auth.Actor) bool {
	return !locked || actor.IsSuperAdmin()
}
