package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/service"
	"github.com/gin-gonic/gin"
)

type MembersHandler struct {
	memberService MemberServicer
}

func NewMembersHandler(memberService MemberServicer) *MembersHandler {
	return &MembersHandler{
		memberService: memberService,
	}
}

type MemberRegisterParams struct {
	Email    string `binding:"required,email,max=255"  json:"email"`
	Password string `binding:"required,min=6,max=255"  json:"password"`
	Nickname string `binding:"required,min=1,max_bytes=50" json:"nickname"`
}

type MemberResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Points   int64  `json:"points"`
}

// Register POST RouteGroup + MembersRegisterRoute. Создает участника с нулевым балансом.
func (h *MembersHandler) Register(c *gin.Context) {
	var params MemberRegisterParams
	if ok := bindJSON(c, &params); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	member, createErr := h.memberService.Register(ctx, service.RegisterMemberArgs{
		Email:    params.Email,
		Password: params.Password,
		Nickname: params.Nickname,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("member with this email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, &MemberResponse{
		ID:       member.ID,
		Email:    member.Email,
		Nickname: member.Nickname,
		Points:   member.Points.Amount(),
	})
}

type PointsResponse struct {
	Points int64 `json:"points"`
}

// Points GET RouteGroup + MemberPointsRoute. Возвращает текущий баланс баллов участника.
func (h *MembersHandler) Points(c *gin.Context) {
	memberID, parseErr := strconv.ParseInt(c.Param("memberID"), 10, 64)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	member, err := h.memberService.FindByID(ctx, memberID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, &PointsResponse{Points: member.Points.Amount()})
}
