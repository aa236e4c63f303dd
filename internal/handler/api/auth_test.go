//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	app      *testApp
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.app = newTestApp(s.T(), s.mockCtrl)
}

func (s *AuthHandlerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("valid credentials", func() {
		rec := s.app.request(s.T(), http.MethodPost, "/api/auth/login",
			map[string]any{"username": "admin", "password": "admin123"}, false)

		s.Equal(http.StatusOK, rec.Code)

		body := decodeBody(s.T(), rec)
		s.Equal(true, body["success"])
		s.Equal("Login successful", body["message"])
		// Token and user sit at the top level, not under data.
		s.NotEmpty(body["token"])
		s.Equal("admin", body["user"].(map[string]any)["username"])
	})

	s.Run("wrong password", func() {
		rec := s.app.request(s.T(), http.MethodPost, "/api/auth/login",
			map[string]any{"username": "admin", "password": "nope"}, false)

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal(false, decodeBody(s.T(), rec)["success"])
	})

	s.Run("missing fields are all reported", func() {
		rec := s.app.request(s.T(), http.MethodPost, "/api/auth/login", map[string]any{}, false)

		s.Equal(http.StatusBadRequest, rec.Code)

		body := decodeBody(s.T(), rec)
		s.Len(body["errors"], 2)
	})
}

func (s *AuthHandlerTestSuite) TestVerify() {
	s.Run("valid token returns the admin identity", func() {
		rec := s.app.request(s.T(), http.MethodPost, "/api/auth/verify", nil, true)

		s.Equal(http.StatusOK, rec.Code)

		body := decodeBody(s.T(), rec)
		user := body["data"].(map[string]any)["user"].(map[string]any)
		s.Equal("admin", user["username"])
	})

	s.Run("missing token", func() {
		rec := s.app.request(s.T(), http.MethodPost, "/api/auth/verify", nil, false)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("garbage token", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rec := s.app.do(s.T(), req, false)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := s.app.request(s.T(), http.MethodPost, "/api/auth/logout", nil, false)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Logged out successfully", decodeBody(s.T(), rec)["message"])
}
