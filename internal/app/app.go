package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-bills/internal/config"
	"github.com/fsdevblog/groph-bills/internal/metrics"
	"github.com/fsdevblog/groph-bills/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-bills/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bills/internal/service"
	"github.com/fsdevblog/groph-bills/internal/transport/api"
	"github.com/fsdevblog/groph-bills/pkg/uow"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"run_address":      a.Config.RunAddress,
		"migrations_dir":   a.Config.MigrationsDir,
		"conflict_retries": a.Config.ConflictRetries,
		"token_ttl":        a.Config.TokenTTL.String(),
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	m := metrics.New()

	services, sErr := service.Factory(unitOfWork, service.Options{
		Logger:          a.Logger,
		Metrics:         m,
		ConflictRetries: uint(a.Config.ConflictRetries), //nolint:gosec
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		Metrics:            m,
		UserService:        services.UserService,
		BillService:        services.BillService,
		ParticipantService: services.ParticipantService,
		PaymentService:     services.PaymentService,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		TokenTTL:           a.Config.TokenTTL,
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app shutdown: %w", err)
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithErrConverter(pgrepo.ConvertTxErr))

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.BillRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBillRepository(dbtx)
		},
		repoargs.ParticipantRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewParticipantRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
	}

	for name, fn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), fn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
