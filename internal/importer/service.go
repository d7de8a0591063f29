package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/period"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type Clients interface {
	GetByCaseNumber(ctx context.Context, caseNumber string) (*client.Client, error)
}

type Applier interface {
	BulkApply(ctx context.Context, actor auth.Actor, p period.Period, items []finance.BulkItem) (finance.BulkResult, error)
}

type Service struct {
	clients Clients
	apply   Applier
	log     *slog.Logger
}

func NewService(clients Clients, apply Applier) *Service {
	return &Service{clients: clients, apply: apply, log: slog.Default()}
}

func (s *Service) WithLogger(log *slog.Logger) *Service {
	s.log = log
	return s
}

// Result combines the rows the file itself rejected with the outcome of the
// bulk update.
type Result struct {
	Profile      string                `json:"profile"`
	UpdatedCount int                   `json:"updatedCount"`
	Failed       []finance.BulkFailure `json:"failed"`
	Rejected     []Rejection           `json:"rejected"`
}

// Import parses r and sets housing support for period p on every client the
// file names. Unknown case numbers and repeated case numbers are rejected;
// the rest is applied client by client.
func (s *Service) Import(ctx context.Context, actor auth.Actor, p period.Period, r io.Reader) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	parsed, err := Parse(r)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "parsed remittance file",
		"profile", parsed.Profile,
		"charset", parsed.Charset,
		"lines", len(parsed.Lines),
		"rejected", len(parsed.Rejected))

	rejected := parsed.Rejected
	items := make([]finance.BulkItem, 0, len(parsed.Lines))
	seen := make(map[string]int, len(parsed.Lines))

	for _, line := range parsed.Lines {
		if first, ok := seen[line.CaseNumber]; ok {
			rejected = append(rejected, Rejection{
				Row:        line.Row,
				CaseNumber: line.CaseNumber,
				Reason:     fmt.Sprintf("case number repeated from row %d", first),
			})

			continue
		}

		seen[line.CaseNumber] = line.Row

		c, err := s.clients.GetByCaseNumber(ctx, line.CaseNumber)
		if errors.Is(err, client.ErrNotFound) {
			rejected = append(rejected, Rejection{Row: line.Row, CaseNumber: line.CaseNumber, Reason: "unknown case number"})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("resolving case %s: %w", line.CaseNumber, err)
		}

		items = append(items, finance.BulkItem{ClientID: c.ID, Amount: line.Amount, ReceivedDate: line.ReceivedDate})
	}

	applied, err := s.apply.BulkApply(ctx, actor, p, items)
	if err != nil {
		return nil, err
	}

	return &Result{
		Profile:      parsed.Profile,
		UpdatedCount: applied.UpdatedCount,
		Failed:       applied.Failed,
		Rejected:     rejected,
	}, nil
}
