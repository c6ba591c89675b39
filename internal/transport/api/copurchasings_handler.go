package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-copurchase/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CopurchasingsHandler struct {
	copurchasingService CopurchasingServicer
}

func NewCopurchasingsHandler(copurchasingService CopurchasingServicer) *CopurchasingsHandler {
	return &CopurchasingsHandler{
		copurchasingService: copurchasingService,
	}
}

type CopurchasingCreateParams struct {
	Title            string     `binding:"required,max_bytes=255"  json:"title"`
	Content          string     `binding:"omitempty,max_bytes=500" json:"content"`
	ProductTotalCost int64      `binding:"min=0"                   json:"product_total_cost"`
	ShippingCost     int64      `binding:"min=0"                   json:"shipping_cost"`
	ProductURL       string     `binding:"required,url"            json:"product_url"`
	ExpirationDate   *time.Time `json:"expiration_date"`
	ProductMinNumber int        `binding:"required,min=1"          json:"product_min_number"`
	ProductMaxNumber int        `binding:"required,min=1"          json:"product_max_number"`
	DeadlineDate     time.Time  `binding:"required"                json:"deadline_date"`
	TradeDate        time.Time  `binding:"required"                json:"trade_date"`
	PurchasePhotoURL string     `json:"purchase_photo_url"`
	WriterID         int64      `binding:"required"                json:"writer_id"`
	PurchaseNumber   int        `binding:"omitempty,min=1"         json:"purchase_number"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// Create POST RouteGroup + CopurchasingsRoute. Создает закупку, в ответе id
// и Location на созданный ресурс.
func (h *CopurchasingsHandler) Create(c *gin.Context) {
	var params CopurchasingCreateParams
	if ok := bindJSON(c, &params); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	copurchasingID, createErr := h.copurchasingService.Create(ctx, service.CreateCopurchasingArgs{
		Title:            params.Title,
		Content:          params.Content,
		ProductTotalCost: params.ProductTotalCost,
		ShippingCost:     params.ShippingCost,
		ProductURL:       params.ProductURL,
		ExpirationDate:   params.ExpirationDate,
		ProductMinNumber: params.ProductMinNumber,
		ProductMaxNumber: params.ProductMaxNumber,
		DeadlineDate:     params.DeadlineDate,
		TradeDate:        params.TradeDate,
		PurchasePhotoURL: params.PurchasePhotoURL,
		WriterID:         params.WriterID,
		PurchaseNumber:   params.PurchaseNumber,
	})
	if createErr != nil {
		abortWithDomainError(c, createErr)
		return
	}

	c.Header("Location", fmt.Sprintf("%s%s/%d", RouteGroup, CopurchasingsRoute, copurchasingID))
	c.JSON(http.StatusCreated, &CreatedResponse{ID: copurchasingID})
}

type CopurchasingDeleteParams struct {
	MemberID int64 `binding:"required" json:"member_id"`
}

// Delete DELETE RouteGroup + CopurchasingRoute. Удаляет закупку с возвратом
// баллов всем участникам.
func (h *CopurchasingsHandler) Delete(c *gin.Context) {
	copurchasingID, parseErr := strconv.ParseInt(c.Param("copurchasingID"), 10, 64)
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	var params CopurchasingDeleteParams
	if ok := bindJSON(c, &params); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.copurchasingService.Delete(ctx, params.MemberID, copurchasingID); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

type ParticipateParams struct {
	CopurchasingID int64 `binding:"required"       json:"copurchasing_id"`
	ParticipantID  int64 `binding:"required"       json:"participant_id"`
	PurchaseNumber int   `binding:"required,min=1" json:"purchase_number"`
}

// Participate POST RouteGroup + ParticipateRoute. Вступает в закупку,
// списывая стоимость участия с баланса.
func (h *CopurchasingsHandler) Participate(c *gin.Context) {
	var params ParticipateParams
	if ok := bindJSON(c, &params); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	participationID, err := h.copurchasingService.Participate(ctx, service.ParticipateArgs{
		CopurchasingID: params.CopurchasingID,
		ParticipantID:  params.ParticipantID,
		PurchaseNumber: params.PurchaseNumber,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &CreatedResponse{ID: participationID})
}

type ParticipationDeleteParams struct {
	ParticipationID int64 `binding:"required" json:"participation_id"`
	DeleterID       int64 `binding:"required" json:"deleter_id"`
}

// CancelParticipation DELETE RouteGroup + ParticipationsRoute. Отменяет участие
// до старта закупки с возвратом замороженного платежа.
func (h *CopurchasingsHandler) CancelParticipation(c *gin.Context) {
	var params ParticipationDeleteParams
	if ok := bindJSON(c, &params); !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.copurchasingService.CancelParticipation(ctx, service.CancelParticipationArgs{
		ParticipationID: params.ParticipationID,
		DeleterID:       params.DeleterID,
	}); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}

// bindJSON биндит тело запроса в obj. Ошибки валидации отдают 422, прочие
// ошибки биндинга - 400. Возвращает false если запрос уже прерван.
func bindJSON(c *gin.Context, obj any) bool {
	if bindErr := c.ShouldBindJSON(obj); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return false
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}
