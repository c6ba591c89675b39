package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/service"
)

// MemberServicer интерфейс исключительно для моков.
type MemberServicer interface {
	Register(ctx context.Context, args service.RegisterMemberArgs) (*domain.Member, error)
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
}

type CopurchasingServicer interface {
	Create(ctx context.Context, args service.CreateCopurchasingArgs) (int64, error)
	Delete(ctx context.Context, deleterID, copurchasingID int64) error
	Participate(ctx context.Context, args service.ParticipateArgs) (int64, error)
	CancelParticipation(ctx context.Context, args service.CancelParticipationArgs) error
}
