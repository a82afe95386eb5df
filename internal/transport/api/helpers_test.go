package api

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-bills/internal/logger"
	"github.com/fsdevblog/groph-bills/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-bills/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-bills/internal/transport/api/tokens"
)

const currentUserID int64 = 1

// handlerSuite роутер с моками всех сервисов и токен текущего пользователя.
type handlerSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockUserService        *mocks.MockUserServicer
	mockBillService        *mocks.MockBillServicer
	mockParticipantService *mocks.MockParticipantServicer
	mockPaymentService     *mocks.MockPaymentServicer
	jwtSecret              []byte
	token                  string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.mockBillService = mocks.NewMockBillServicer(mockCtrl)
	s.mockParticipantService = mocks.NewMockParticipantServicer(mockCtrl)
	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:             logger.New(io.Discard),
		UserService:        s.mockUserService,
		BillService:        s.mockBillService,
		ParticipantService: s.mockParticipantService,
		PaymentService:     s.mockPaymentService,
		JWTSecretKey:       s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router

	token, err := tokens.GenerateUserJWT(currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.token = token
}

// do выполняет JSON запрос от имени текущего пользователя. body == nil - запрос без тела.
func (s *handlerSuite) do(method, url string, body any) *http.Response {
	return s.doAs(s.token, method, url, body)
}

func (s *handlerSuite) doAs(token, method, url string, body any) *http.Response {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   body,
	}, testutils.WithBearer(token))
	s.Require().NoError(err)
	return res
}

func (s *handlerSuite) decode(res *http.Response, dst any) {
	s.Require().NoError(testutils.DecodeJSON(res, dst))
}

func billPath(route string, billID int64) string {
	return RouteGroup + strings.Replace(route, ":id", strconv.FormatInt(billID, 10), 1)
}
