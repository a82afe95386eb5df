package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-bills/internal/domain"
	"github.com/fsdevblog/groph-bills/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-bills/internal/transport/api/tokens"
)

type UsersHandlerTestSuite struct {
	handlerSuite
}

func TestUsersHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsersHandlerTestSuite))
}

func (s *UsersHandlerTestSuite) TestRegister() {
	s.mockUserService.EXPECT().Register(gomock.Any(), "alice").
		Return(&domain.User{ID: 5, Username: "alice", CreatedAt: time.Now()}, nil)
	s.mockUserService.EXPECT().Register(gomock.Any(), "taken").
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name       string
		username   string
		wantStatus int
	}{
		{name: "registered", username: "alice", wantStatus: http.StatusCreated},
		{name: "taken", username: "taken", wantStatus: http.StatusConflict},
		{name: "empty", username: "", wantStatus: http.StatusUnprocessableEntity},
		{name: "too long", username: strings.Repeat("u", 151), wantStatus: http.StatusUnprocessableEntity},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.doAs("", http.MethodPost, RouteGroup+UsersRoute, map[string]any{"username": t.username})
			s.Require().Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus != http.StatusCreated {
				res.Body.Close()
				return
			}

			token, ok := strings.CutPrefix(res.Header.Get("Authorization"), "Bearer ")
			s.Require().True(ok)
			claims, err := tokens.ValidateUserJWT(token, s.jwtSecret)
			s.Require().NoError(err)
			s.Equal(int64(5), claims.ID)

			var user UserResponse
			s.decode(res, &user)
			s.Equal("alice", user.Username)
		})
	}
}

func (s *UsersHandlerTestSuite) TestShow() {
	s.mockUserService.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(nil, domain.ErrRecordNotFound)

	res := s.doAs("", http.MethodGet, RouteGroup+"/users/ghost", nil)
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)

	res = s.doAs("invalid", http.MethodGet, RouteGroup+"/users/ghost", nil)
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)

	res = s.do(http.MethodGet, RouteGroup+"/users/ghost", nil)
	s.Equal(http.StatusNotFound, res.StatusCode)
	s.NotEmpty(res.Header.Get(middlewares.RequestIDHeader))
	var body map[string]any
	s.decode(res, &body)
	s.Equal("not found", body["error"])
	s.Equal(res.Header.Get(middlewares.RequestIDHeader), body["request_id"])
}
