package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/logger"
	"github.com/fsdevblog/groph-copurchase/internal/service"
	"github.com/fsdevblog/groph-copurchase/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-copurchase/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type MembersHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockMemberService *mocks.MockMemberServicer
}

func TestMembersHandlerSuite(t *testing.T) {
	suite.Run(t, new(MembersHandlerTestSuite))
}

func (s *MembersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockMemberService = mocks.NewMockMemberServicer(mockCtrl)

	router, routerErr := New(RouterArgs{
		Logger:              logger.New(os.Stdout),
		MemberService:       s.mockMemberService,
		CopurchasingService: mocks.NewMockCopurchasingServicer(mockCtrl),
	})
	s.Require().NoError(routerErr)
	s.router = router
}

func (s *MembersHandlerTestSuite) TestRegister() {
	validParams := MemberRegisterParams{
		Email:    "member@example.com",
		Password: "password",
		Nickname: "member",
	}
	duplicateParams := MemberRegisterParams{
		Email:    "taken@example.com",
		Password: "password",
		Nickname: "member",
	}
	invalidEmailParams := MemberRegisterParams{
		Email:    "not-an-email",
		Password: "password",
		Nickname: "member",
	}

	createdMember := domain.Member{
		ID:       1,
		Email:    validParams.Email,
		Nickname: validParams.Nickname,
	}

	// Моки
	s.mockMemberService.EXPECT().
		Register(gomock.Any(), service.RegisterMemberArgs{
			Email:    validParams.Email,
			Password: validParams.Password,
			Nickname: validParams.Nickname,
		}).
		Return(&createdMember, nil).Times(1)
	s.mockMemberService.EXPECT().
		Register(gomock.Any(), service.RegisterMemberArgs{
			Email:    duplicateParams.Email,
			Password: duplicateParams.Password,
			Nickname: duplicateParams.Nickname,
		}).
		Return(nil, domain.ErrDuplicateKey).Times(1)

	cases := []struct {
		name       string
		payload    any
		wantStatus int
	}{
		{name: "all ok", payload: validParams, wantStatus: http.StatusCreated},
		{name: "duplicate email", payload: duplicateParams, wantStatus: http.StatusConflict},
		{name: "invalid email", payload: invalidEmailParams, wantStatus: http.StatusUnprocessableEntity},
		{
			name:       "short password",
			payload:    MemberRegisterParams{Email: "member@example.com", Password: "12345", Nickname: "member"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{name: "malformed json", payload: "{", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + MembersRegisterRoute,
				Body:   s.jsonBody(t.payload),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var body MemberResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(createdMember.ID, body.ID)
				s.Equal(createdMember.Email, body.Email)
				s.Equal(int64(0), body.Points)
			}
		})
	}
}

func (s *MembersHandlerTestSuite) TestPoints() {
	points, pointsErr := domain.NewPoint(5000)
	s.Require().NoError(pointsErr)

	savedMember := domain.Member{
		ID:     123,
		Email:  "member@example.com",
		Points: points,
	}

	s.mockMemberService.EXPECT().FindByID(gomock.Any(), savedMember.ID).
		Return(&savedMember, nil)
	s.mockMemberService.EXPECT().FindByID(gomock.Any(), int64(999)).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		memberID   string
		wantStatus int
	}{
		{name: "all ok", memberID: "123", wantStatus: http.StatusOK},
		{name: "not found", memberID: "999", wantStatus: http.StatusNotFound},
		{name: "bad member id", memberID: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    fmt.Sprintf("%s/members/%s/points", RouteGroup, t.memberID),
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body PointsResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal(int64(5000), body.Points)
			}
		})
	}
}

func (s *MembersHandlerTestSuite) jsonBody(payload any) io.Reader {
	if raw, ok := payload.(string); ok {
		return bytes.NewReader([]byte(raw))
	}
	data, err := json.Marshal(payload)
	s.Require().NoError(err)
	return bytes.NewReader(data)
}
