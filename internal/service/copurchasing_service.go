package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
	"github.com/fsdevblog/groph-copurchase/pkg/uow"
)

// CopurchasingService оркестрирует жизненный цикл закупки: создание, удаление,
// вступление и отмену участия. Каждый метод выполняется в одной транзакции
// UnitOfWork - списания и возвраты баллов коммитятся только вместе с изменением
// участий, частичных коммитов не бывает.
type CopurchasingService struct {
	uow     uow.UOW
	copRepo CopurchasingRepository

	// writerAutoJoin - политика автозаписи автора в участники при создании
	// закупки. В разных вариантах системы встречались оба поведения, поэтому
	// выбор вынесен в конфигурацию.
	writerAutoJoin bool
}

func NewCopurchasingService(u uow.UOW, writerAutoJoin bool) (*CopurchasingService, error) {
	copRepo, copRepoErr := uow.GetRepositoryAs[CopurchasingRepository](
		u, uow.RepositoryName(repoargs.CopurchasingRepoName))
	if copRepoErr != nil {
		return nil, copRepoErr
	}
	return &CopurchasingService{
		uow:            u,
		copRepo:        copRepo,
		writerAutoJoin: writerAutoJoin,
	}, nil
}

type CreateCopurchasingArgs struct {
	Title            string
	Content          string
	ProductTotalCost int64
	ShippingCost     int64
	ProductURL       string
	ExpirationDate   *time.Time
	ProductMinNumber int
	ProductMaxNumber int
	DeadlineDate     time.Time
	TradeDate        time.Time
	PurchasePhotoURL string
	WriterID         int64
	PurchaseNumber   int
}

// Create создает закупку от имени args.WriterID. При включенной политике
// writerAutoJoin автор сразу становится участником с args.PurchaseNumber
// единицами товара, баллы списываются как при обычном вступлении.
// Возвращает id созданной закупки.
func (s *CopurchasingService) Create(ctx context.Context, args CreateCopurchasingArgs) (int64, error) {
	now := time.Now()
	var copurchasingID int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberRepo, copRepo, participationRepo, reposErr := txRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		writer, writerErr := memberRepo.FindByID(c, args.WriterID)
		if writerErr != nil {
			return writerErr //nolint:wrapcheck
		}

		productTotalCost, totalCostErr := domain.NewCost(args.ProductTotalCost)
		if totalCostErr != nil {
			return totalCostErr //nolint:wrapcheck
		}
		shippingCost, shippingCostErr := domain.NewCost(args.ShippingCost)
		if shippingCostErr != nil {
			return shippingCostErr //nolint:wrapcheck
		}

		copurchasing, copErr := domain.NewCopurchasing(domain.NewCopurchasingArgs{
			Title:            args.Title,
			Content:          args.Content,
			ProductTotalCost: productTotalCost,
			ShippingCost:     shippingCost,
			ProductURL:       args.ProductURL,
			ExpirationDate:   args.ExpirationDate,
			ProductMinNumber: args.ProductMinNumber,
			ProductMaxNumber: args.ProductMaxNumber,
			DeadlineDate:     args.DeadlineDate,
			TradeDate:        args.TradeDate,
			PurchasePhotoURL: args.PurchasePhotoURL,
			WriterID:         writer.ID,
		})
		if copErr != nil {
			return copErr //nolint:wrapcheck
		}

		created, createErr := copRepo.Create(c, repoargs.CreateCopurchasing{
			Title:            copurchasing.Title,
			Content:          copurchasing.Content,
			ProductTotalCost: copurchasing.ProductTotalCost.Value(),
			ShippingCost:     copurchasing.ShippingCost.Value(),
			ProductURL:       copurchasing.ProductURL,
			ExpirationDate:   copurchasing.ExpirationDate,
			ProductMinNumber: copurchasing.ProductMinNumber,
			ProductMaxNumber: copurchasing.ProductMaxNumber,
			DeadlineDate:     copurchasing.DeadlineDate,
			TradeDate:        copurchasing.TradeDate,
			PurchasePhotoURL: copurchasing.PurchasePhotoURL,
			WriterID:         copurchasing.WriterID,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		copurchasingID = created.ID

		if s.writerAutoJoin {
			// Автозапись автора: закупка только что создана, валидации
			// вступления проходят на пустой коллекции участий.
			if _, joinErr := s.join(c, memberRepo, participationRepo, created, writer, args.PurchaseNumber, now); joinErr != nil {
				return joinErr
			}
		}
		return nil
	})

	if txErr != nil {
		return 0, fmt.Errorf("creating copurchasing: %w", txErr)
	}
	return copurchasingID, nil
}

// Delete удаляет закупку. Разрешено только автору и только до старта.
// Всем участникам возвращаются их замороженные платежи, участия удаляются
// каскадно вместе с самой закупкой.
func (s *CopurchasingService) Delete(ctx context.Context, deleterID, copurchasingID int64) error {
	now := time.Now()

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberRepo, copRepo, participationRepo, reposErr := txRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		copurchasing, loadErr := s.loadCopurchasing(c, copRepo, participationRepo, copurchasingID)
		if loadErr != nil {
			return loadErr
		}

		if validateErr := copurchasing.ValidateDelete(deleterID, now); validateErr != nil {
			return validateErr //nolint:wrapcheck
		}

		for _, refund := range copurchasing.Refunds() {
			if refundErr := s.refundMember(c, memberRepo, refund.ParticipantID, refund.Amount); refundErr != nil {
				return refundErr
			}
		}

		if dErr := participationRepo.DeleteByCopurchasingID(c, copurchasing.ID); dErr != nil {
			return dErr //nolint:wrapcheck
		}
		return copRepo.Delete(c, copurchasing.ID) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("deleting copurchasing %d: %w", copurchasingID, txErr)
	}
	return nil
}

type ParticipateArgs struct {
	CopurchasingID int64
	ParticipantID  int64
	PurchaseNumber int
}

// Participate вступает в закупку. Стоимость считается по текущему состоянию
// закупки и замораживается в участии. Баллы списываются до добавления участия;
// если добавление не проходит валидацию, транзакция откатывается целиком и
// списание не коммитится. Возвращает id участия.
func (s *CopurchasingService) Participate(ctx context.Context, args ParticipateArgs) (int64, error) {
	now := time.Now()
	var participationID int64

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberRepo, copRepo, participationRepo, reposErr := txRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		copurchasing, loadErr := s.loadCopurchasing(c, copRepo, participationRepo, args.CopurchasingID)
		if loadErr != nil {
			return loadErr
		}

		participant, participantErr := memberRepo.FindByID(c, args.ParticipantID)
		if participantErr != nil {
			return participantErr //nolint:wrapcheck
		}

		// Автор не может вступить в собственную закупку ни при каких условиях.
		if copurchasing.IsWriter(participant.ID) {
			return domain.ErrCantJoinOwn //nolint:wrapcheck
		}

		id, joinErr := s.join(c, memberRepo, participationRepo, copurchasing, participant, args.PurchaseNumber, now)
		if joinErr != nil {
			return joinErr
		}
		participationID = id
		return nil
	})

	if txErr != nil {
		return 0, fmt.Errorf("participating in copurchasing %d: %w", args.CopurchasingID, txErr)
	}
	return participationID, nil
}

type CancelParticipationArgs struct {
	ParticipationID int64
	DeleterID       int64
}

// CancelParticipation отменяет участие до старта закупки и возвращает
// участнику ровно замороженную при вступлении сумму.
func (s *CopurchasingService) CancelParticipation(ctx context.Context, args CancelParticipationArgs) error {
	now := time.Now()

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		memberRepo, copRepo, participationRepo, reposErr := txRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		participation, participationErr := participationRepo.FindByID(c, args.ParticipationID)
		if participationErr != nil {
			return participationErr //nolint:wrapcheck
		}

		copurchasing, loadErr := s.loadCopurchasing(c, copRepo, participationRepo, participation.CopurchasingID)
		if loadErr != nil {
			return loadErr
		}

		if copurchasing.IsStarted(now) {
			return domain.ErrAlreadyStarted //nolint:wrapcheck
		}
		if validateErr := participation.ValidateDelete(copurchasing.WriterID, args.DeleterID); validateErr != nil {
			return validateErr //nolint:wrapcheck
		}

		if refundErr := s.refundMember(c, memberRepo, participation.ParticipantID, participation.PaymentPoint); refundErr != nil {
			return refundErr
		}

		copurchasing.DeleteParticipation(participation.ID)
		return participationRepo.Delete(c, participation.ID) //nolint:wrapcheck
	})

	if txErr != nil {
		return fmt.Errorf("cancelling participation %d: %w", args.ParticipationID, txErr)
	}
	return nil
}

// loadCopurchasing загружает закупку под блокировкой строки и подтягивает её
// участия. Блокировка сериализует конкурентные вступления, иначе два запроса
// могут одновременно пройти проверку вместимости и перебрать максимум.
func (s *CopurchasingService) loadCopurchasing(
	ctx context.Context,
	copRepo CopurchasingRepository,
	participationRepo ParticipationRepository,
	id int64,
) (*domain.Copurchasing, error) {
	copurchasing, copErr := copRepo.FindByIDForUpdate(ctx, id)
	if copErr != nil {
		return nil, copErr //nolint:wrapcheck
	}
	participations, participationsErr := participationRepo.GetByCopurchasingID(ctx, id)
	if participationsErr != nil {
		return nil, participationsErr //nolint:wrapcheck
	}
	copurchasing.Participations = participations
	return copurchasing, nil
}

// join списывает с участника стоимость и добавляет участие в закупку.
func (s *CopurchasingService) join(
	ctx context.Context,
	memberRepo MemberRepository,
	participationRepo ParticipationRepository,
	copurchasing *domain.Copurchasing,
	participant *domain.Member,
	purchaseNumber int,
	now time.Time,
) (int64, error) {
	// Проверки вступления идут до списания, чтобы не трогать баланс зря.
	if validateErr := copurchasing.ValidateParticipation(participant.ID, now); validateErr != nil {
		return 0, validateErr //nolint:wrapcheck
	}

	paymentCost := copurchasing.PaymentCost(purchaseNumber, now)

	if payErr := participant.Pay(paymentCost); payErr != nil {
		return 0, payErr //nolint:wrapcheck
	}
	if _, updErr := memberRepo.UpdatePoints(ctx, participant.ID, participant.Points.Amount()); updErr != nil {
		return 0, updErr //nolint:wrapcheck
	}

	participation, participationErr := domain.NewParticipation(
		copurchasing.ID, participant.ID, purchaseNumber, paymentCost)
	if participationErr != nil {
		return 0, participationErr //nolint:wrapcheck
	}
	if addErr := copurchasing.AddParticipation(participation, now); addErr != nil {
		return 0, addErr //nolint:wrapcheck
	}

	created, createErr := participationRepo.Create(ctx, repoargs.CreateParticipation{
		CopurchasingID: participation.CopurchasingID,
		ParticipantID:  participation.ParticipantID,
		PurchaseNumber: participation.PurchaseNumber,
		PaymentPoint:   participation.PaymentPoint,
	})
	if createErr != nil {
		return 0, createErr //nolint:wrapcheck
	}
	return created.ID, nil
}

func (s *CopurchasingService) refundMember(
	ctx context.Context,
	memberRepo MemberRepository,
	memberID int64,
	amount int64,
) error {
	member, memberErr := memberRepo.FindByID(ctx, memberID)
	if memberErr != nil {
		return memberErr //nolint:wrapcheck
	}
	if refundErr := member.Refund(amount); refundErr != nil {
		return refundErr //nolint:wrapcheck
	}
	if _, updErr := memberRepo.UpdatePoints(ctx, member.ID, member.Points.Amount()); updErr != nil {
		return updErr //nolint:wrapcheck
	}
	return nil
}

// txRepos достает все три репозитория из транзакции.
func txRepos(tx uow.TX) (MemberRepository, CopurchasingRepository, ParticipationRepository, error) {
	memberRepo, memberRepoErr := uow.GetAs[MemberRepository](tx, uow.RepositoryName(repoargs.MemberRepoName))
	if memberRepoErr != nil {
		return nil, nil, nil, memberRepoErr //nolint:wrapcheck
	}
	copRepo, copRepoErr := uow.GetAs[CopurchasingRepository](tx, uow.RepositoryName(repoargs.CopurchasingRepoName))
	if copRepoErr != nil {
		return nil, nil, nil, copRepoErr //nolint:wrapcheck
	}
	participationRepo, participationRepoErr := uow.GetAs[ParticipationRepository](
		tx, uow.RepositoryName(repoargs.ParticipationRepoName))
	if participationRepoErr != nil {
		return nil, nil, nil, participationRepoErr //nolint:wrapcheck
	}
	return memberRepo, copRepo, participationRepo, nil
}
