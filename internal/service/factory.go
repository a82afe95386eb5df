package service

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-bills/pkg/uow"
)

type AppServices struct {
	UserService        *UserService
	BillService        *BillService
	ParticipantService *ParticipantService
	PaymentService     *PaymentService
}

// Options общие настройки сервисов. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	Logger          *logrus.Logger
	Metrics         MetricsRecorder
	ConflictRetries uint
	RetryBaseDelay  time.Duration
}

func (o Options) retrier(u uow.UOW, module string) *conflictRetrier {
	l := o.Logger
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	metrics := o.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}
	attempts := o.ConflictRetries
	if attempts == 0 {
		attempts = DefaultConflictRetries
	}
	baseDelay := o.RetryBaseDelay
	if baseDelay == 0 {
		baseDelay = defaultRetryBaseDelay
	}
	return &conflictRetrier{
		uow:       u,
		attempts:  attempts,
		baseDelay: baseDelay,
		metrics:   metrics,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    module,
		}),
	}
}

func Factory(unitOfWork uow.UOW, opts Options) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	billService, billServiceErr := NewBillService(unitOfWork, opts)
	if billServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", billServiceErr.Error())
	}

	participantService, participantServiceErr := NewParticipantService(unitOfWork, opts)
	if participantServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", participantServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, opts)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		BillService:        billService,
		ParticipantService: participantService,
		PaymentService:     paymentService,
	}, nil
}
