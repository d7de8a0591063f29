package importer_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/loqeyusa/housingsupport/internal/auth"
	"github.com/loqeyusa/housingsupport/internal/client"
	"github.com/loqeyusa/housingsupport/internal/finance"
	"github.com/loqeyusa/housingsupport/internal/importer"
	"github.com/loqeyusa/housingsupport/internal/logger"
	"github.com/loqeyusa/housingsupport/internal/period"
)

var (
	actor = auth.Actor{UserID: uuid.New(), Role: auth.RoleAdmin}
	april = period.Period{Year: 2025, Month: 4}
)

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	clients := importer.NewMockClients(ctrl)
	applier := importer.NewMockApplier(ctrl)

	ann := &client.Client{ID: uuid.New(), CaseNumber: "C-1"}
	bo := &client.Client{ID: uuid.New(), CaseNumber: "C-2"}

	clients.EXPECT().GetByCaseNumber(gomock.Any(), "C-1").Return(ann, nil)
	clients.EXPECT().GetByCaseNumber(gomock.Any(), "C-2").Return(bo, nil)
	clients.EXPECT().GetByCaseNumber(gomock.Any(), "C-9").Return(nil, client.ErrNotFound)

	applier.EXPECT().BulkApply(gomock.Any(), actor, april, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ auth.Actor, _ period.Period, items []finance.BulkItem) (finance.BulkResult, error) {
			require.Len(t, items, 2)
			assert.Equal(t, ann.ID, items[0].ClientID)
			assert.Equal(t, "500.00", items[0].Amount.Plain())
			assert.Equal(t, bo.ID, items[1].ClientID)

			return finance.BulkResult{
				UpdatedCount: 1,
				Failed:       []finance.BulkFailure{{ClientID: bo.ID, Error: "edit window closed"}},
			}, nil
		})

	input := `Case Number,Amount
C-1,500.00
C-2,450.00
C-9,100.00
C-1,999.00
C-5,oops
`

	res, err := importer.NewService(clients, applier).Import(context.Background(), actor, april, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "housing support", res.Profile)
	assert.Equal(t, 1, res.UpdatedCount)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, bo.ID, res.Failed[0].ClientID)

	require.Len(t, res.Rejected, 3)

	reasons := map[string]string{}
	for _, r := range res.Rejected {
		reasons[r.CaseNumber] = r.Reason
	}

	assert.Contains(t, reasons["C-5"], "invalid amount")
	assert.Equal(t, "unknown case number", reasons["C-9"])
	assert.Equal(t, "case number repeated from row 2", reasons["C-1"])
}

func TestService_Import_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	clients := importer.NewMockClients(ctrl)
	applier := importer.NewMockApplier(ctrl)

	clients.EXPECT().GetByCaseNumber(gomock.Any(), "C-1").Return(nil, errors.New("connection reset"))

	_, err := importer.NewService(clients, applier).
		Import(context.Background(), actor, april, strings.NewReader("Case Number,Amount\nC-1,5\n"))
	assert.Error(t, err)
}

func TestService_Import_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := importer.NewService(importer.NewMockClients(ctrl), importer.NewMockApplier(ctrl)).
		Import(context.Background(), actor, period.Period{Year: 2025, Month: 0}, strings.NewReader(""))
	assert.ErrorIs(t, err, period.ErrInvalidPeriod)
}

func TestService_Import_LogsWithComponent(t *testing.T) {
	ctrl := gomock.NewController(t)
	clients := importer.NewMockClients(ctrl)
	applier := importer.NewMockApplier(ctrl)

	clients.EXPECT().GetByCaseNumber(gomock.Any(), "C-1").Return(&client.Client{ID: uuid.New(), CaseNumber: "C-1"}, nil)
	applier.EXPECT().BulkApply(gomock.Any(), actor, april, gomock.Len(1)).Return(finance.BulkResult{UpdatedCount: 1}, nil)

	var buf bytes.Buffer
	log := logger.New(logger.Config{Format: "json", Output: &buf}).With(logger.FieldComponent, logger.ComponentImport)

	_, err := importer.NewService(clients, applier).WithLogger(log).
		Import(context.Background(), actor, april, strings.NewReader("Case Number,Amount\nC-1,5\n"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"component":"import"`)
	assert.Contains(t, buf.String(), "parsed remittance file")
}
