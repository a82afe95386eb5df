package service

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/internal/service/mocks"
	"github.com/fsdevblog/groph-bills/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-bills/pkg/uow/mocks"
)

// serviceSuite общие моки сервисов: uow, транзакция, репозитории и метрики.
type serviceSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockBillRepo    *mocks.MockBillRepository
	mockPrtRepo     *mocks.MockParticipantRepository
	mockPaymentRepo *mocks.MockPaymentRepository
	mockMetrics     *mocks.MockMetricsRecorder
	opts            Options
}

func (s *serviceSuite) setupMocks() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockBillRepo = mocks.NewMockBillRepository(s.mockCtrl)
	s.mockPrtRepo = mocks.NewMockParticipantRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)
	s.mockMetrics = mocks.NewMockMetricsRecorder(s.mockCtrl)

	// Репозитории вне транзакции запрашиваются при инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.BillRepoName)).
		Return(s.mockBillRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ParticipantRepoName)).
		Return(s.mockPrtRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()

	// Те же репозитории внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BillRepoName)).
		Return(s.mockBillRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ParticipantRepoName)).
		Return(s.mockPrtRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()

	s.opts = Options{
		Metrics:         s.mockMetrics,
		ConflictRetries: 3,
		RetryBaseDelay:  time.Millisecond,
	}
}

// expectTx настраивает uow.Do на выполнение fn с мок транзакцией times раз.
func (s *serviceSuite) expectTx(times int) {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).Times(times)
}

func (s *serviceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func fakeBill(id int64, total string, settled bool) *domain.Bill {
	now := time.Now()
	return &domain.Bill{
		ID:          id,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedByID: 1,
		Title:       gofakeit.ProductName(),
		Description: gofakeit.Sentence(5),
		TotalAmount: decimal.RequireFromString(total),
		IsSettled:   settled,
	}
}

func fakeParticipant(id, billID, userID int64, share string, hasPaid bool) domain.Participant {
	return domain.Participant{
		ID:          id,
		BillID:      billID,
		UserID:      userID,
		Username:    gofakeit.Username(),
		ShareAmount: decimal.RequireFromString(share),
		HasPaid:     hasPaid,
	}
}
