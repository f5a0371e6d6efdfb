package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"driveway_xpto/internal/adapter/http/handlers/mocks"
	"driveway_xpto/internal/config"
	"driveway_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRenderReport_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	uc.EXPECT().Revenue(gomock.Any()).Return(entities.Revenue{TotalRevenue: 1234567.5}, nil)

	var out bytes.Buffer
	require.NoError(t, renderReport(context.Background(), &out, uc, "revenue", nil, nil))
	assert.Contains(t, out.String(), "$1,234,567.50")
}

func TestRenderReport_OverdueBills(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	uc.EXPECT().OverdueBills(gomock.Any()).Return([]entities.OverdueBill{
		{BillID: 4, DueDate: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC), Status: "Pending", OverdueDays: 61},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, renderReport(context.Background(), &out, uc, "overdue-bills", nil, nil))
	assert.Contains(t, out.String(), "2024-10-01")
	assert.Contains(t, out.String(), "61 days")
}

func TestRenderReport_ClientReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	uc.EXPECT().DifficultClients(gomock.Any()).Return([]entities.ClientRef{{ClientID: 9, ClientName: "Ann Lee"}}, nil)
	uc.EXPECT().LargestDriveway(gomock.Any()).Return([]entities.LargestDriveway{{PropertyAddress: "1 Main St", LargestSquareFeet: 12500}}, nil)

	var out bytes.Buffer
	require.NoError(t, renderReport(context.Background(), &out, uc, "difficult-clients", nil, nil))
	assert.Contains(t, out.String(), "Ann Lee")

	out.Reset()
	require.NoError(t, renderReport(context.Background(), &out, uc, "largest-driveway", nil, nil))
	assert.Contains(t, out.String(), "12,500")
}

func TestRenderReport_QuotesPassesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	from := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().QuotesInWindow(gomock.Any(), &from, &to).Return([]entities.WindowQuote{
		{QuoteID: 5, PropertyAddress: "1 Main St", InitialPrice: 1000, ProposedPrice: 900, Status: "pending", CreatedAt: from},
	}, nil)

	var out bytes.Buffer
	require.NoError(t, renderReport(context.Background(), &out, uc, "quotes", &from, &to))
	assert.Contains(t, out.String(), "$1,000.00")
	assert.Contains(t, out.String(), "$900.00")
}

func TestRenderReport_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)

	err := renderReport(context.Background(), &bytes.Buffer{}, uc, "nope", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report")

	uc.EXPECT().GoodClients(gomock.Any()).Return(nil, errors.New("db down"))
	err = renderReport(context.Background(), &bytes.Buffer{}, uc, "good-clients", nil, nil)
	assert.EqualError(t, err, "db down")
}

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("from", "")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDateFlag("from", "2024-11-01")
	require.NoError(t, err)
	assert.Equal(t, time.November, d.Month())

	_, err = parseDateFlag("to", "11/01/2024")
	assert.Error(t, err)
}

func TestCommandArgs(t *testing.T) {
	load := func() (*config.Config, error) { return nil, errors.New("no config in tests") }

	migrate := newMigrateCmd(load)
	assert.NoError(t, migrate.Args(migrate, []string{"status"}))
	assert.Error(t, migrate.Args(migrate, []string{"sideways"}))
	assert.Error(t, migrate.Args(migrate, []string{"up", "down"}))

	report := newReportCmd(load)
	assert.NoError(t, report.Args(report, []string{"revenue"}))
	assert.Error(t, report.Args(report, []string{"gossip"}))
	assert.Error(t, report.Args(report, nil))
}

func TestReportCmd_RejectsBadDateBeforeLoadingConfig(t *testing.T) {
	loaded := false
	load := func() (*config.Config, error) {
		loaded = true
		return nil, errors.New("unreachable")
	}

	cmd := newReportCmd(load)
	cmd.SetArgs([]string{"quotes", "--from", "yesterday"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --from")
	assert.False(t, loaded)
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "report"} {
		assert.True(t, names[want], "missing %s", want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
