package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagcenter/tagcenter/internal/domain"
	"github.com/tagcenter/tagcenter/internal/domain/mocks"
)

var errStore = errors.New("store unavailable")

// decimalEq matches a decimal.Decimal by value, ignoring its exponent.
type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	got, ok := x.(decimal.Decimal)
	return ok && got.Equal(m.want)
}

func (m decimalEq) String() string { return "is equal to " + m.want.String() }

// newMockService wires a service to a strict mock store whose Atomically
// runs the callback against the same mock.
func newMockService(t *testing.T) (*Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Atomically(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(domain.Store) error) error {
			return fn(store)
		}).AnyTimes()

	clock := &fakeClock{t: start}
	return New(store, nil).WithClock(clock.Now), store
}

func TestRecordCollection_MarkerFailureStopsWorkflow(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	debt := domain.Transaction{VehicleNumber: "V1", TransactionType: domain.TxPending,
		PaymentType: domain.PayPending, Amount: decimal.NewFromInt(500)}
	store.EXPECT().TransactionsForVehicle(ctx, "V1").Return([]domain.Transaction{debt}, nil)
	gomock.InOrder(
		store.EXPECT().InsertTransaction(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.Transaction) error {
				assert.Equal(t, domain.TxPending, tx.TransactionType)
				tx.ID = "collection-1"
				return nil
			}),
		store.EXPECT().InsertTransaction(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *domain.Transaction) error {
				assert.Equal(t, domain.TxPendingCleared, tx.TransactionType)
				assert.Equal(t, "collection-1", tx.ClearsID)
				return errStore
			}),
	)
	// SetCachedPending must not be reached.

	res, err := svc.RecordCollection(ctx, "V1", decimal.NewFromInt(200), domain.PayCash, "ravi")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	assert.Nil(t, res)
}

func TestRecordCollection_CacheFailureIsReported(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	store.EXPECT().TransactionsForVehicle(ctx, "V1").Return(nil, nil)
	store.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(nil).Times(2)
	store.EXPECT().SetCachedPending(ctx, "V1", decimalEq{decimal.Zero}).Return(errStore)

	_, err := svc.RecordCollection(ctx, "V1", decimal.NewFromInt(10), domain.PayDigital, "ravi")
	assert.ErrorIs(t, err, errStore)
}

func TestRecordCollection_ComputesFromFold(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	rows := []domain.Transaction{
		{VehicleNumber: "V1", TransactionType: domain.TxPending, PaymentType: domain.PayPending, Amount: decimal.NewFromInt(500)},
		{VehicleNumber: "v1", TransactionType: domain.TxCash, PaymentType: domain.PayPending, Amount: decimal.NewFromInt(100)},
		// Stale cache values are ignored.
		{VehicleNumber: "V1", TransactionType: domain.TxPendingCleared, PaymentType: domain.PayCash, Amount: decimal.NewFromInt(50), TotalPending: decimal.NewFromInt(9999)},
	}
	store.EXPECT().TransactionsForVehicle(ctx, "V1").Return(rows, nil)
	store.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(nil).Times(2)
	store.EXPECT().SetCachedPending(ctx, "V1", decimalEq{decimal.NewFromInt(450)}).Return(nil)

	res, err := svc.RecordCollection(ctx, "V1", decimal.NewFromInt(150), domain.PayExpense, "ravi")
	require.NoError(t, err)
	assert.True(t, res.NewPending.Equal(decimal.NewFromInt(450)), "NewPending = %s", res.NewPending)
}

func TestCloseShift_NoActivityWritesNothing(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	store.EXPECT().LatestOpenActivity(ctx, "ravi").Return(nil, domain.ErrNoActiveShift)
	// No UpdateActivity or InsertShiftRecord expectation: gomock fails on either.

	rec, err := svc.CloseShift(ctx, "ravi", domain.ShiftDay, start.Add(time.Hour), nil)
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
	assert.True(t, domain.IsNotFound(err))
	assert.Nil(t, rec)
}

func TestCloseShift_RecordFailureIsReported(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()
	login := start
	closeAt := start.Add(8 * time.Hour)

	store.EXPECT().LatestOpenActivity(ctx, "ravi").Return(&domain.Activity{ID: "a1", Worker: "ravi", LoginTime: login}, nil)
	store.EXPECT().TransactionsForWorker(ctx, "ravi", login, closeAt).Return([]domain.Transaction{
		{TransactionType: domain.TxCash, PaymentType: domain.PayDigital, Amount: decimal.NewFromInt(100)},
	}, nil)
	store.EXPECT().UpdateActivity(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a domain.Activity) error {
		require.NotNil(t, a.LogoutTime)
		require.NotNil(t, a.ShiftCloseTime)
		assert.True(t, a.ShiftCloseTime.Equal(closeAt))
		return nil
	})
	store.EXPECT().InsertShiftRecord(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.ShiftRecord) error {
		assert.Equal(t, "a1", r.ActivityID)
		assert.True(t, r.TotalsByPaymentType.Get(domain.PayCash).Equal(decimal.NewFromInt(900)))
		assert.True(t, r.TotalsByPaymentType.Get(domain.PayDigital).Equal(decimal.NewFromInt(100)))
		return errStore
	})

	_, err := svc.CloseShift(ctx, "ravi", domain.ShiftDay, closeAt,
		[]domain.BankBalance{{Name: "CASH", Balance: decimal.NewFromInt(1000)}})
	assert.ErrorIs(t, err, errStore)
	assert.False(t, domain.IsNotFound(err))
}

func TestPendingBalance_StoreFailure(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	store.EXPECT().TransactionsForVehicle(ctx, "V1").Return(nil, errStore)

	_, err := svc.PendingBalance(ctx, "V1")
	assert.ErrorIs(t, err, errStore)
}

func TestOpenShift_StoreFailure(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	store.EXPECT().LatestOpenActivity(ctx, "ravi").Return(nil, errStore)

	_, err := svc.OpenShift(ctx, "ravi", start)
	assert.ErrorIs(t, err, errStore)
	assert.False(t, domain.IsConflict(err))
}

func TestOpenShift_ConcurrentLoginRejectedByStore(t *testing.T) {
	svc, store := newMockService(t)
	ctx := context.Background()

	// Another login committed between the check and the insert.
	store.EXPECT().LatestOpenActivity(ctx, "ravi").Return(nil, domain.ErrNoActiveShift)
	store.EXPECT().InsertActivity(ctx, gomock.Any()).Return(domain.ErrShiftAlreadyOpen)

	_, err := svc.OpenShift(ctx, "ravi", start)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)
	assert.True(t, domain.IsConflict(err))
}
