package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/gin-gonic/gin"
)

// badRequestErrors - доменные ошибки класса "некорректный ввод/состояние".
var badRequestErrors = []error{
	domain.ErrAlreadyJoined,
	domain.ErrCantJoinOwn,
	domain.ErrDeadlineExpired,
	domain.ErrMaxNumberReached,
	domain.ErrAlreadyStarted,
	domain.ErrInvalidProductNumber,
	domain.ErrInvalidTradeDate,
	domain.ErrInvalidPurchaseNumber,
	domain.ErrInvalidCost,
	domain.ErrInvalidPointAmount,
}

// abortWithDomainError транслирует доменные ошибки в http статусы. Ошибки
// авторизационного класса (не автор, автор отменяет свое участие) дают 401,
// остальные известные - клиентские статусы, неизвестные уходят в приватный 500.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		abortPublic(c, http.StatusNotFound, domain.ErrRecordNotFound)
	case errors.Is(err, domain.ErrNotEnoughPoints):
		abortPublic(c, http.StatusPaymentRequired, domain.ErrNotEnoughPoints)
	case errors.Is(err, domain.ErrNoPermission):
		abortPublic(c, http.StatusUnauthorized, domain.ErrNoPermission)
	case errors.Is(err, domain.ErrWriterCannotCancel):
		abortPublic(c, http.StatusUnauthorized, domain.ErrWriterCannotCancel)
	case errors.Is(err, domain.ErrDuplicateKey):
		abortPublic(c, http.StatusConflict, domain.ErrDuplicateKey)
	default:
		for _, badRequestErr := range badRequestErrors {
			if errors.Is(err, badRequestErr) {
				abortPublic(c, http.StatusBadRequest, badRequestErr)
				return
			}
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func abortPublic(c *gin.Context, status int, err error) {
	_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePublic)
}
