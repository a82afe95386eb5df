package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-bills/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	DefaultTokenTTL       = 24 * time.Hour
)

const (
	RouteGroup        = "/api"
	UsersRoute        = "/users"
	UserRoute         = "/users/:username"
	BillsRoute        = "/bills"
	PastBillsRoute    = "/bills/past"
	BillRoute         = "/bills/:id"
	SettleBillRoute   = "/bills/:id/settle"
	ParticipantsRoute = "/bills/:id/participants"
	SplitRoute        = "/bills/:id/split"
	PaymentsRoute     = "/bills/:id/payments"
	MetricsRoute      = "/metrics"
)

// MetricsExporter HTTP метрики: middleware подсчета запросов и обработчик выдачи.
type MetricsExporter interface {
	Middleware() gin.HandlerFunc
	Handler() http.Handler
}

type RouterArgs struct {
	Logger             *logrus.Logger
	Metrics            MetricsExporter
	UserService        UserServicer
	BillService        BillServicer
	ParticipantService ParticipantServicer
	PaymentService     PaymentServicer
	JWTSecretKey       []byte
	TokenTTL           time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}
	if args.TokenTTL == 0 {
		args.TokenTTL = DefaultTokenTTL
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if args.Metrics != nil {
		r.Use(args.Metrics.Middleware())
		r.GET(MetricsRoute, gin.WrapH(args.Metrics.Handler()))
	}
	r.Use(middlewares.Errors())

	usersHandler := NewUsersHandler(args.UserService, args.JWTSecretKey, args.TokenTTL)
	billsHandler := NewBillsHandler(args.BillService)
	participantsHandler := NewParticipantsHandler(args.ParticipantService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)

	api := r.Group(RouteGroup)

	api.POST(UsersRoute, usersHandler.Register)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(UserRoute, usersHandler.Show)

	api.POST(BillsRoute, billsHandler.Create)
	api.GET(BillsRoute, billsHandler.Index)
	api.GET(PastBillsRoute, billsHandler.Past)
	api.GET(BillRoute, billsHandler.Show)
	api.PATCH(BillRoute, billsHandler.Update)
	api.DELETE(BillRoute, billsHandler.Delete)
	api.POST(SettleBillRoute, billsHandler.Settle)

	api.POST(ParticipantsRoute, participantsHandler.Create)
	api.GET(ParticipantsRoute, participantsHandler.Index)
	api.POST(SplitRoute, participantsHandler.Split)

	api.POST(PaymentsRoute, paymentsHandler.Create)
	api.GET(PaymentsRoute, paymentsHandler.Index)

	return r, nil
}
