package tracker_test

import (
	"context"
	"testing"

	"github.com/mika/debt-ledger/pkg/ledger"
	"github.com/mika/debt-ledger/pkg/models"
	"github.com/mika/debt-ledger/pkg/storage"
	"github.com/mika/debt-ledger/pkg/storage/mocks"
	"github.com/mika/debt-ledger/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// fakeWatcher hands the registered callback back to the test so deliveries
// can be driven manually.
type fakeWatcher struct {
	onChange   func([]models.Debt)
	initial    []models.Debt
	subscribed int
	cancelled  int
}

func (f *fakeWatcher) Subscribe(ctx context.Context, ownerID string, onChange func([]models.Debt)) (func(), error) {
	f.subscribed++
	f.onChange = onChange
	onChange(f.initial)
	return func() { f.cancelled++ }, nil
}

var _ storage.DebtWatcher = (*fakeWatcher)(nil)

func TestSummarize(t *testing.T) {
	debts := []models.Debt{
		{Kind: models.LENT, CurrentAmount: 600, Status: models.PARTIAL},
		{Kind: models.LENT, CurrentAmount: 1000, Status: models.ACTIVE},
		{Kind: models.BORROWED, CurrentAmount: 200, Status: models.ACTIVE},
		{Kind: models.LENT, CurrentAmount: 0, Status: models.PAID},
	}

	s := tracker.Summarize(debts)

	assert.Equal(t, int64(1600), s.TotalLentOutstanding)
	assert.Equal(t, int64(200), s.TotalBorrowedOutstanding)
	assert.Equal(t, 3, s.ActiveCount)
	assert.Equal(t, 1, s.PaidCount)
}

func TestSummarizeEmpty(t *testing.T) {
	s := tracker.Summarize(nil)
	assert.Equal(t, tracker.Summary{}, s)
}

func TestActiveAndPaid(t *testing.T) {
	debts := []models.Debt{
		{Id: "a", Status: models.ACTIVE},
		{Id: "b", Status: models.PAID},
		{Id: "c", Status: models.PARTIAL},
	}

	active := tracker.Active(debts)
	paid := tracker.Paid(debts)

	assert.Len(t, active, 2)
	assert.Len(t, paid, 1)
	assert.Equal(t, "b", paid[0].Id)
}

func TestTrackerLifecycle(t *testing.T) {
	t.Run("Start loads the initial snapshot", func(t *testing.T) {
		watcher := &fakeWatcher{initial: []models.Debt{{Id: "debt-1", Kind: models.LENT, CurrentAmount: 500, Status: models.ACTIVE}}}
		tr := tracker.New("owner-1", nil, watcher, nil)

		err := tr.Start(context.Background())

		assert.NoError(t, err)
		assert.Len(t, tr.Snapshot(), 1)
		assert.Equal(t, int64(500), tr.Summary().TotalLentOutstanding)
	})

	t.Run("Start is idempotent", func(t *testing.T) {
		watcher := &fakeWatcher{}
		tr := tracker.New("owner-1", nil, watcher, nil)

		assert.NoError(t, tr.Start(context.Background()))
		assert.NoError(t, tr.Start(context.Background()))
		assert.Equal(t, 1, watcher.subscribed)
	})

	t.Run("Deliveries replace the snapshot wholesale", func(t *testing.T) {
		watcher := &fakeWatcher{initial: []models.Debt{{Id: "debt-1", Status: models.ACTIVE}}}
		tr := tracker.New("owner-1", nil, watcher, nil)
		assert.NoError(t, tr.Start(context.Background()))

		watcher.onChange([]models.Debt{
			{Id: "debt-1", Status: models.PAID},
			{Id: "debt-2", Status: models.ACTIVE},
		})

		snapshot := tr.Snapshot()
		assert.Len(t, snapshot, 2)
		assert.Len(t, tr.PaidDebts(), 1)
		assert.Len(t, tr.ActiveDebts(), 1)
	})

	t.Run("Stop detaches and is safe to repeat", func(t *testing.T) {
		watcher := &fakeWatcher{}
		tr := tracker.New("owner-1", nil, watcher, nil)

		tr.Stop() // before Start, no-op
		assert.NoError(t, tr.Start(context.Background()))
		tr.Stop()
		tr.Stop()

		assert.Equal(t, 1, watcher.cancelled)
	})

	t.Run("Snapshot returns a copy", func(t *testing.T) {
		watcher := &fakeWatcher{initial: []models.Debt{{Id: "debt-1"}}}
		tr := tracker.New("owner-1", nil, watcher, nil)
		assert.NoError(t, tr.Start(context.Background()))

		snapshot := tr.Snapshot()
		snapshot[0].Id = "mutated"

		assert.Equal(t, "debt-1", tr.Snapshot()[0].Id)
	})
}

func TestTrackerCommands(t *testing.T) {
	t.Run("CreateDebt pins the owner", func(t *testing.T) {
		mockStore := new(mocks.DebtLedgerStore)
		svc := ledger.New(mockStore, nil)
		watcher := &fakeWatcher{}
		tr := tracker.New("owner-1", svc, watcher, nil)

		var gotDebt *models.Debt
		mockStore.On("SettleCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				gotDebt = args.Get(1).(*models.Debt)
			}).Return(nil)

		_, err := tr.CreateDebt(context.Background(), ledger.NewDebt{
			OwnerID:          "someone-else",
			Kind:             models.LENT,
			CounterpartyName: "Alice",
			Amount:           100,
			AccountID:        "acct-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "owner-1", gotDebt.OwnerId)
		mockStore.AssertExpectations(t)
	})

	t.Run("DeleteDebt delegates", func(t *testing.T) {
		mockStore := new(mocks.DebtLedgerStore)
		svc := ledger.New(mockStore, nil)
		tr := tracker.New("owner-1", svc, &fakeWatcher{}, nil)

		debt := &models.Debt{Id: "debt-1", OwnerId: "owner-1", Kind: models.LENT, CurrentAmount: 0, Status: models.PAID}
		mockStore.On("GetDebt", mock.Anything, "debt-1").Return(debt, nil)
		mockStore.On("SettleDelete", mock.Anything, debt, (*models.Transaction)(nil), int64(0)).Return(nil)

		assert.NoError(t, tr.DeleteDebt(context.Background(), "debt-1"))
		mockStore.AssertExpectations(t)
	})
}
