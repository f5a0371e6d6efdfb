package repository

import (
	"context"
	"database/sql"
	"os"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"driveway_xpto/internal/config"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/infrastructure/database"
	"driveway_xpto/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to the MySQL named by DRIVEWAY_TEST_DSN, migrates it
// and empties every table. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("DRIVEWAY_TEST_DSN")
	if dsn == "" {
		t.Skip("DRIVEWAY_TEST_DSN not set")
	}
	ctx := context.Background()

	db, err := database.Connect(ctx, config.DBConfig{DSN: dsn, MaxOpenConns: 20})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(ctx, db.DB, "up"))

	conn, err := db.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0")
	require.NoError(t, err)
	for _, table := range []string{
		"bill_negotiations", "bills", "orders", "quote_negotiations",
		"quotes", "request_images", "requests", "clients",
	} {
		_, err := conn.ExecContext(ctx, "TRUNCATE TABLE "+table)
		require.NoError(t, err)
	}
	_, err = conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 1")
	require.NoError(t, err)
	return db.DB
}

type fixture struct {
	clientID, requestID, quoteID int64
}

func seed(t *testing.T, db *sql.DB) fixture {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	clientID, err := NewClientMySQLRepository(db).Create(ctx, entities.Client{
		FirstName: "Ana", LastName: "Lee", PhoneNumber: "555-0100", CreditCardNumber: "4111",
		ExpirationDate: "12/27", SecurityCode: "123", Address: "1 Oak Ave", Email: "ana@example.com", CreatedAt: now,
	})
	require.NoError(t, err)

	requestID, err := NewRequestMySQLRepository(db).CreateWithImages(ctx, entities.Request{
		ClientID: clientID, PropertyAddress: "1 Oak Ave", SquareFeet: 900, ProposedPrice: 1500,
		Status: entities.RequestStatusPending, SubmissionDate: now, ImageURLs: []string{"https://img/1.jpg"},
	})
	require.NoError(t, err)

	quoteID, err := NewQuoteMySQLRepository(db).Create(ctx, entities.Quote{
		RequestID: requestID, InitialPrice: 1000, ProposedPrice: 900,
		Status: entities.QuoteStatusPending, CreatedAt: now,
	})
	require.NoError(t, err)
	return fixture{clientID: clientID, requestID: requestID, quoteID: quoteID}
}

func TestMySQL_ConcurrentNegotiationsAreContiguous(t *testing.T) {
	db := openTestDB(t)
	f := seed(t, db)
	repo := NewQuoteMySQLRepository(db)

	const writers = 12
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		versions []int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.AppendNegotiation(context.Background(), entities.QuoteNegotiation{
				QuoteID: f.quoteID, ClientNote: "offer", CreatedAt: time.Now().UTC(),
			})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			versions = append(versions, int(n.Version))
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Ints(versions)
	want := make([]int, writers)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, versions)

	history, err := repo.ListNegotiations(context.Background(), f.quoteID)
	require.NoError(t, err)
	assert.Len(t, history, writers)

	q, err := repo.GetByID(context.Background(), f.quoteID)
	require.NoError(t, err)
	assert.Equal(t, "offer", q.LatestClientNote)
}

func TestMySQL_RequestWithBadImageRollsBack(t *testing.T) {
	db := openTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := NewRequestMySQLRepository(db)

	before, err := repo.ListAll(ctx)
	require.NoError(t, err)

	_, err = repo.CreateWithImages(ctx, entities.Request{
		ClientID: f.clientID, PropertyAddress: "9 Pine Rd", Status: entities.RequestStatusPending,
		SubmissionDate: time.Now().UTC(),
		ImageURLs:      []string{"https://img/ok.jpg", "https://img/" + strings.Repeat("x", 5000)},
	})
	require.Error(t, err)

	after, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestMySQL_WorkOrderLifecycle(t *testing.T) {
	db := openTestDB(t)
	f := seed(t, db)
	ctx := context.Background()
	orders := NewOrderMySQLRepository(db)
	bills := NewBillMySQLRepository(db)
	due := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 30)

	created, err := orders.CreateWithBill(ctx, f.quoteID, 900, due)
	require.NoError(t, err)

	_, err = orders.CreateWithBill(ctx, f.quoteID, 900, due)
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)

	all, err := orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	details, err := orders.GetDetailsByQuoteID(ctx, f.quoteID)
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.Equal(t, created.BillID, *details.BillID)

	amount := 800.0
	_, err = bills.AppendNegotiation(ctx, entities.BillNegotiation{BillID: created.BillID, FinalAmount: &amount, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	ok, err := bills.UpdateStatus(ctx, created.BillID, entities.BillStatusPaid, true)
	require.NoError(t, err)
	assert.True(t, ok)

	b, err := bills.GetByID(ctx, created.BillID)
	require.NoError(t, err)
	require.NotNil(t, b.FinalAmount)
	assert.Equal(t, 800.0, *b.FinalAmount)

	ok, err = orders.Complete(ctx, created.OrderID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = orders.Complete(ctx, created.OrderID)
	require.NoError(t, err)
	assert.True(t, ok, "completing twice still matches the row")

	rev, err := NewReportMySQLRepository(db).Revenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 800.0, rev.TotalRevenue)
}
