package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-bills/internal/domain"
)

// BillLifecycleSuite прогоняет жизненный цикл счёта через все сервисы поверх in-memory хранилища.
type BillLifecycleSuite struct {
	suite.Suite
	store    *memUOW
	services *AppServices
}

func TestBillLifecycleSuite(t *testing.T) {
	suite.Run(t, new(BillLifecycleSuite))
}

func (s *BillLifecycleSuite) SetupTest() {
	s.store = newMemUOW()
	services, err := Factory(s.store, Options{RetryBaseDelay: time.Millisecond})
	s.Require().NoError(err)
	s.services = services
}

func (s *BillLifecycleSuite) register(username string) *domain.User {
	u, err := s.services.UserService.Register(context.Background(), username)
	s.Require().NoError(err)
	return u
}

func (s *BillLifecycleSuite) pay(billID, payerID int64, amount string) *PaymentResult {
	res, err := s.services.PaymentService.Create(context.Background(), CreatePaymentArgs{
		BillID:  billID,
		PayerID: payerID,
		Amount:  decimal.RequireFromString(amount),
	})
	s.Require().NoError(err)
	return res
}

func billIDs(bills []domain.Bill) []int64 {
	ids := make([]int64, len(bills))
	for i := range bills {
		ids[i] = bills[i].ID
	}
	return ids
}

func (s *BillLifecycleSuite) TestDinnerSplitPaidAndSettled() {
	ctx := context.Background()
	alice := s.register("alice")
	bob := s.register("bob")
	carol := s.register("carol")

	bill, err := s.services.BillService.Create(ctx, CreateBillArgs{
		CreatedByID: alice.ID,
		Title:       "Dinner",
		TotalAmount: decimal.RequireFromString("100.00"),
	})
	s.Require().NoError(err)
	s.False(bill.IsSettled)

	participants, err := s.services.ParticipantService.SplitEvenly(ctx, bill.ID, []int64{alice.ID, bob.ID, carol.ID})
	s.Require().NoError(err)
	s.Require().Len(participants, 3)
	for i, want := range []string{"33.33", "33.33", "33.34"} {
		s.Equal(want, participants[i].ShareAmount.StringFixed(2))
		s.False(participants[i].HasPaid)
	}

	// участники видят счёт среди активных
	for _, u := range []*domain.User{alice, bob, carol} {
		active, listErr := s.services.BillService.ListActive(ctx, u.ID)
		s.Require().NoError(listErr)
		s.Equal([]int64{bill.ID}, billIDs(active))
	}

	_, err = s.services.BillService.MarkSettled(ctx, bill.ID)
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)

	s.True(s.pay(bill.ID, alice.ID, "33.33").Participant.HasPaid)

	partial := s.pay(bill.ID, bob.ID, "20.00")
	s.False(partial.Participant.HasPaid)
	s.Equal("bob paid $20.00 for Dinner", partial.Payment.String())
	s.True(s.pay(bill.ID, bob.ID, "13.33").Participant.HasPaid)

	s.True(s.pay(bill.ID, carol.ID, "33.34").Participant.HasPaid)

	details, err := s.services.BillService.Details(ctx, bill.ID)
	s.Require().NoError(err)
	s.True(details.Outstanding.IsZero())
	s.Len(details.Payments, 4)
	s.Equal("33.34", details.Payments[0].Amount.StringFixed(2), "newest payment first")
	for _, p := range details.Participants {
		s.True(p.Outstanding.IsZero(), p.Username)
		s.NotNil(p.PaidAt, p.Username)
	}

	settled, err := s.services.BillService.MarkSettled(ctx, bill.ID)
	s.Require().NoError(err)
	s.True(settled.IsSettled)

	for _, u := range []*domain.User{alice, bob, carol} {
		active, listErr := s.services.BillService.ListActive(ctx, u.ID)
		s.Require().NoError(listErr)
		s.Empty(active)

		past, listErr := s.services.BillService.ListSettled(ctx, u.ID)
		s.Require().NoError(listErr)
		s.Equal([]int64{bill.ID}, billIDs(past))
	}

	_, err = s.services.PaymentService.Create(ctx, CreatePaymentArgs{
		BillID:  bill.ID,
		PayerID: carol.ID,
		Amount:  decimal.RequireFromString("1.00"),
	})
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)

	// повторное закрытие ничего не меняет
	again, err := s.services.BillService.MarkSettled(ctx, bill.ID)
	s.Require().NoError(err)
	s.True(again.IsSettled)

	payments, err := s.services.PaymentService.List(ctx, bill.ID)
	s.Require().NoError(err)
	s.Len(payments, 4)
}

func (s *BillLifecycleSuite) TestSplitOverExistingShareRollsBack() {
	ctx := context.Background()
	alice := s.register("alice")
	bob := s.register("bob")
	carol := s.register("carol")

	bill, err := s.services.BillService.Create(ctx, CreateBillArgs{
		CreatedByID: alice.ID,
		Title:       "Groceries",
		TotalAmount: decimal.RequireFromString("100.00"),
	})
	s.Require().NoError(err)

	_, err = s.services.ParticipantService.Add(ctx, bill.ID, alice.ID, decimal.RequireFromString("40.00"))
	s.Require().NoError(err)

	_, err = s.services.ParticipantService.SplitEvenly(ctx, bill.ID, []int64{bob.ID, carol.ID})
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)

	participants, err := s.services.ParticipantService.List(ctx, bill.ID)
	s.Require().NoError(err)
	s.Require().Len(participants, 1)
	s.Equal(alice.ID, participants[0].UserID)

	// с участниками сумму менять нельзя, иначе доли разойдутся с итогом
	total := decimal.RequireFromString("80.00")
	_, err = s.services.BillService.Update(ctx, bill.ID, UpdateBillArgs{TotalAmount: &total})
	s.Require().ErrorIs(err, domain.ErrInvariantViolation)

	got, err := s.services.BillService.Get(ctx, bill.ID)
	s.Require().NoError(err)
	s.Equal("100.00", got.TotalAmount.StringFixed(2))
}

func (s *BillLifecycleSuite) TestSplitRejectsExistingParticipant() {
	ctx := context.Background()
	alice := s.register("alice")
	bob := s.register("bob")

	bill, err := s.services.BillService.Create(ctx, CreateBillArgs{
		CreatedByID: alice.ID,
		Title:       "Taxi",
		TotalAmount: decimal.RequireFromString("30.00"),
	})
	s.Require().NoError(err)

	_, err = s.services.ParticipantService.SplitEvenly(ctx, bill.ID, []int64{alice.ID, bob.ID})
	s.Require().NoError(err)

	_, err = s.services.ParticipantService.SplitEvenly(ctx, bill.ID, []int64{bob.ID})
	var dupErr *domain.DuplicateParticipantError
	s.Require().ErrorAs(err, &dupErr)
	s.Equal(bob.ID, dupErr.UserID)

	participants, err := s.services.ParticipantService.List(ctx, bill.ID)
	s.Require().NoError(err)
	s.Len(participants, 2)
}
