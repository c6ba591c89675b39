package service

import (
	"context"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type MemberRepository interface {
	Create(ctx context.Context, args repoargs.CreateMember) (*domain.Member, error)
	FindByID(ctx context.Context, id int64) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	UpdatePoints(ctx context.Context, id int64, points int64) (*domain.Member, error)
}

type CopurchasingRepository interface {
	Create(ctx context.Context, args repoargs.CreateCopurchasing) (*domain.Copurchasing, error)
	FindByID(ctx context.Context, id int64) (*domain.Copurchasing, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Copurchasing, error)
	Delete(ctx context.Context, id int64) error
}

type ParticipationRepository interface {
	Create(ctx context.Context, args repoargs.CreateParticipation) (*domain.Participation, error)
	FindByID(ctx context.Context, id int64) (*domain.Participation, error)
	GetByCopurchasingID(ctx context.Context, copurchasingID int64) (domain.Participations, error)
	Delete(ctx context.Context, id int64) error
	DeleteByCopurchasingID(ctx context.Context, copurchasingID int64) error
}
