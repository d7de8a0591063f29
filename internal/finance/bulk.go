package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/money"
	"github.com/loqeyusa/housingsupport/internal/period"
)

// BulkItem is one client's housing support in a bulk update.
type BulkItem struct {
	ClientID     uuid.UUID
	Amount       money.Money
	ReceivedDate *time.Time
}

type BulkFailure struct {
	ClientID uuid.UUID `json:"clientId"`
	Error    string    `json:"error"`
	Err      error     `json:"-"`
}

type BulkResult struct {
	UpdatedCount int           `json:"updatedCount"`
	Failed       []BulkFailure `json:"failed"`
}

// BulkApply sets housing support for every item independently. A failing
// client is reported in Failed and does not stop the rest.
func (s *Service) BulkApply(ctx context.Context, actor auth.Actor, p period.Period, items []BulkItem) (BulkResult, error) {
	result := BulkResult{Failed: []BulkFailure{}}

	if err := p.Validate(); err != nil {
		return result, err
	}

	for _, item := range items {
		_, err := s.SetHousingSupport(ctx, actor, item.ClientID, p, HousingSupportParams{
			Amount:       item.Amount,
			ReceivedDate: item.ReceivedDate,
		})
		if err != nil {
			s.log.WarnContext(ctx, "bulk housing support skipped client",
				"client_id", item.ClientID, "period", p.String(), "error", err)

			result.Failed = append(result.Failed, BulkFailure{ClientID: item.ClientID, Error: err.Error(), Err: err})

			continue
		}

		result.UpdatedCount++
	}

	return result, nil
}

// BulkSetHousingSupport applies one amount to every distinct client in
// clientIDs, in first-seen order.
func (s *Service) BulkSetHousingSupport(ctx context.Context, actor auth.Actor, p period.Period, amount money.Money, receivedDate *time.Time, clientIDs []uuid.UUID) (BulkResult, error) {
	items := make([]BulkItem, 0, len(clientIDs))
	seen := make(map[uuid.UUID]struct{}, len(clientIDs))

	for _, id := range clientIDs {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		items = append(items, BulkItem{ClientID: id, Amount: amount, ReceivedDate: receivedDate})
	}

	return s.BulkApply(ctx, actor, p, items)
}
