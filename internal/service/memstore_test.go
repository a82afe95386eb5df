package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

// memState таблицы in-memory хранилища.
type memState struct {
	users        map[int64]domain.User
	bills        map[int64]domain.Bill
	participants map[int64]domain.Participant
	payments     map[int64]domain.Payment
	seq          int64
	clock        time.Time
}

func (st *memState) clone() memState {
	c := *st
	c.users = maps.Clone(st.users)
	c.bills = maps.Clone(st.bills)
	c.participants = maps.Clone(st.participants)
	c.payments = maps.Clone(st.payments)
	return c
}

func (st *memState) nextID() int64 {
	st.seq++
	return st.seq
}

// now монотонные часы, каждый вызов на минуту позже предыдущего.
func (st *memState) now() time.Time {
	st.clock = st.clock.Add(time.Minute)
	return st.clock
}

// memUOW unit of work над memState. Транзакции выполняются по одной, при ошибке состояние откатывается.
type memUOW struct {
	mu    sync.Mutex
	state *memState
}

func newMemUOW() *memUOW {
	return &memUOW{state: &memState{
		users:        make(map[int64]domain.User),
		bills:        make(map[int64]domain.Bill),
		participants: make(map[int64]domain.Participant),
		payments:     make(map[int64]domain.Payment),
		clock:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func (u *memUOW) Register(uow.RepositoryName, uow.RepositoryFactory) error { return nil }

func (u *memUOW) Do(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.state.clone()
	if err := fn(ctx, memTX{state: u.state}); err != nil {
		*u.state = snapshot
		return err
	}
	return nil
}

func (u *memUOW) GetRepository(name uow.RepositoryName) (uow.Repository, error) {
	return memRepo(u.state, name)
}

type memTX struct {
	state *memState
}

func (t memTX) Get(name uow.RepositoryName) (uow.Repository, error) {
	return memRepo(t.state, name)
}

func memRepo(st *memState, name uow.RepositoryName) (uow.Repository, error) {
	switch repoargs.RepositoryName(name) {
	case repoargs.UserRepoName:
		return &memUserRepo{st}, nil
	case repoargs.BillRepoName:
		return &memBillRepo{st}, nil
	case repoargs.ParticipantRepoName:
		return &memParticipantRepo{st}, nil
	case repoargs.PaymentRepoName:
		return &memPaymentRepo{st}, nil
	default:
		return nil, uow.ErrRepositoryNotRegistered
	}
}

type memUserRepo struct{ st *memState }

func (r *memUserRepo) CreateUser(_ context.Context, args repoargs.CreateUser) (*domain.User, error) {
	for _, u := range r.st.users {
		if u.Username == args.Username {
			return nil, domain.ErrDuplicateKey
		}
	}
	now := r.st.now()
	user := domain.User{ID: r.st.nextID(), Username: args.Username, CreatedAt: now, UpdatedAt: now}
	r.st.users[user.ID] = user
	return &user, nil
}

func (r *memUserRepo) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.st.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &u, nil
}

type memBillRepo struct{ st *memState }

func (r *memBillRepo) Create(_ context.Context, args repoargs.CreateBill) (*domain.Bill, error) {
	if _, ok := r.st.users[args.CreatedByID]; !ok {
		return nil, domain.ErrRecordNotFound
	}
	now := r.st.now()
	bill := domain.Bill{
		ID:          r.st.nextID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedByID: args.CreatedByID,
		Title:       args.Title,
		Description: args.Description,
		TotalAmount: args.TotalAmount,
	}
	r.st.bills[bill.ID] = bill
	return &bill, nil
}

func (r *memBillRepo) GetByID(_ context.Context, id int64) (*domain.Bill, error) {
	b, ok := r.st.bills[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &b, nil
}

func (r *memBillRepo) LockForUpdate(ctx context.Context, id int64) (*domain.Bill, error) {
	return r.GetByID(ctx, id)
}

func (r *memBillRepo) Update(_ context.Context, id int64, args repoargs.UpdateBill) (*domain.Bill, error) {
	b, ok := r.st.bills[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	if args.Title != nil {
		b.Title = *args.Title
	}
	if args.Description != nil {
		b.Description = *args.Description
	}
	if args.TotalAmount != nil {
		b.TotalAmount = *args.TotalAmount
	}
	if args.IsSettled != nil {
		b.IsSettled = *args.IsSettled
	}
	b.UpdatedAt = r.st.now()
	r.st.bills[id] = b
	return &b, nil
}

func (r *memBillRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.st.bills[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.st.bills, id)
	return nil
}

func (r *memBillRepo) List(_ context.Context, filter repoargs.BillFilter) ([]domain.Bill, error) {
	bills := make([]domain.Bill, 0)
	for _, b := range r.st.bills {
		if filter.CreatedByID != 0 && b.CreatedByID != filter.CreatedByID {
			continue
		}
		if filter.ParticipantID != 0 && b.CreatedByID != filter.ParticipantID && !r.participates(b.ID, filter.ParticipantID) {
			continue
		}
		if filter.Settled != nil && b.IsSettled != *filter.Settled {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(b.Title+" "+b.Description), strings.ToLower(filter.Search)) {
			continue
		}
		bills = append(bills, b)
	}
	slices.SortFunc(bills, func(a, b domain.Bill) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return bills, nil
}

func (r *memBillRepo) participates(billID, userID int64) bool {
	for _, p := range r.st.participants {
		if p.BillID == billID && p.UserID == userID {
			return true
		}
	}
	return false
}

type memParticipantRepo struct{ st *memState }

func (r *memParticipantRepo) Create(_ context.Context, args repoargs.CreateParticipant) (*domain.Participant, error) {
	if _, ok := r.st.bills[args.BillID]; !ok {
		return nil, domain.ErrRecordNotFound
	}
	user, ok := r.st.users[args.UserID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	for _, p := range r.st.participants {
		if p.BillID == args.BillID && p.UserID == args.UserID {
			return nil, fmt.Errorf("[repository/creating participant] %w", domain.ErrDuplicateKey)
		}
	}
	p := domain.Participant{
		ID:          r.st.nextID(),
		BillID:      args.BillID,
		UserID:      args.UserID,
		Username:    user.Username,
		ShareAmount: args.ShareAmount,
		HasPaid:     args.HasPaid,
	}
	r.st.participants[p.ID] = p
	return &p, nil
}

func (r *memParticipantRepo) BatchCreate(
	ctx context.Context,
	args []repoargs.CreateParticipant,
	fn repoargs.ParticipantBatchQueryRow,
) {
	for i, a := range args {
		p, err := r.Create(ctx, a)
		fn(i, p, err)
	}
}

func (r *memParticipantRepo) GetByID(_ context.Context, id int64) (*domain.Participant, error) {
	p, ok := r.st.participants[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return &p, nil
}

func (r *memParticipantRepo) FindByBillAndUser(_ context.Context, billID, userID int64) (*domain.Participant, error) {
	for _, p := range r.st.participants {
		if p.BillID == billID && p.UserID == userID {
			return &p, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (r *memParticipantRepo) ListByBill(_ context.Context, billID int64) ([]domain.Participant, error) {
	list := make([]domain.Participant, 0)
	for _, p := range r.st.participants {
		if p.BillID == billID {
			list = append(list, p)
		}
	}
	slices.SortFunc(list, func(a, b domain.Participant) int { return int(a.ID - b.ID) })
	return list, nil
}

func (r *memParticipantRepo) UpdatePaymentState(_ context.Context, args repoargs.UpdatePaymentState) error {
	p, ok := r.st.participants[args.ParticipantID]
	if !ok {
		return domain.ErrRecordNotFound
	}
	p.HasPaid = args.HasPaid
	p.PaidAt = args.PaidAt
	r.st.participants[p.ID] = p
	return nil
}

func (r *memParticipantRepo) DeleteByBill(_ context.Context, billID int64) (int64, error) {
	var n int64
	for id, p := range r.st.participants {
		if p.BillID == billID {
			delete(r.st.participants, id)
			n++
		}
	}
	return n, nil
}

type memPaymentRepo struct{ st *memState }

func (r *memPaymentRepo) Create(_ context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	bill, ok := r.st.bills[args.BillID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	payer, ok := r.st.users[args.PayerID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	p := domain.Payment{
		ID:            r.st.nextID(),
		BillID:        args.BillID,
		BillTitle:     bill.Title,
		PayerID:       args.PayerID,
		PayerUsername: payer.Username,
		Amount:        args.Amount,
		PaymentDate:   r.st.now(),
		Notes:         args.Notes,
	}
	r.st.payments[p.ID] = p
	return &p, nil
}

func (r *memPaymentRepo) ListByBill(_ context.Context, billID int64) ([]domain.Payment, error) {
	return r.list(func(p domain.Payment) bool { return p.BillID == billID }), nil
}

func (r *memPaymentRepo) ListByBillAndPayer(_ context.Context, billID, payerID int64) ([]domain.Payment, error) {
	return r.list(func(p domain.Payment) bool { return p.BillID == billID && p.PayerID == payerID }), nil
}

func (r *memPaymentRepo) DeleteByBill(_ context.Context, billID int64) (int64, error) {
	var n int64
	for id, p := range r.st.payments {
		if p.BillID == billID {
			delete(r.st.payments, id)
			n++
		}
	}
	return n, nil
}

// list платежи по условию, новые первыми.
func (r *memPaymentRepo) list(match func(domain.Payment) bool) []domain.Payment {
	list := make([]domain.Payment, 0)
	for _, p := range r.st.payments {
		if match(p) {
			list = append(list, p)
		}
	}
	slices.SortFunc(list, func(a, b domain.Payment) int {
		if c := b.PaymentDate.Compare(a.PaymentDate); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return list
}
