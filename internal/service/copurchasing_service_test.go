package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
	"github.com/fsdevblog/groph-copurchase/internal/service/mocks"
	"github.com/fsdevblog/groph-copurchase/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-copurchase/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const (
	testWriterID      = int64(1)
	testParticipantID = int64(200)
)

type CopurchasingServiceTestSuite struct {
	suite.Suite
	mockCtrl              *gomock.Controller
	mockUOW               *uowmocks.MockUOW
	mockTX                *uowmocks.MockTX
	mockMemberRepo        *mocks.MockMemberRepository
	mockCopRepo           *mocks.MockCopurchasingRepository
	mockParticipationRepo *mocks.MockParticipationRepository
	service               *CopurchasingService
}

func TestCopurchasingServiceSuite(t *testing.T) {
	suite.Run(t, new(CopurchasingServiceTestSuite))
}

func (s *CopurchasingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockMemberRepo = mocks.NewMockMemberRepository(s.mockCtrl)
	s.mockCopRepo = mocks.NewMockCopurchasingRepository(s.mockCtrl)
	s.mockParticipationRepo = mocks.NewMockParticipationRepository(s.mockCtrl)

	// Настроить возврат CopurchasingRepository при инициализации сервиса
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.CopurchasingRepoName)).
		Return(s.mockCopRepo, nil).AnyTimes()

	// Репозитории внутри транзакции
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.MemberRepoName)).
		Return(s.mockMemberRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.CopurchasingRepoName)).
		Return(s.mockCopRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.ParticipationRepoName)).
		Return(s.mockParticipationRepo, nil).AnyTimes()

	// UOW обертка просто выполняет коллбек на мок-транзакции
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).AnyTimes()

	var err error
	s.service, err = NewCopurchasingService(s.mockUOW, false)
	s.Require().NoError(err)
}

func (s *CopurchasingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// newCopurchasing собирает закупку 1000+3000 баллов на 3..5 единиц товара.
// Стоимость до старта: ceil(4000/3) = 1334 за единицу.
func (s *CopurchasingServiceTestSuite) newCopurchasing(deadline time.Time) *domain.Copurchasing {
	productTotalCost, totalErr := domain.NewCost(1000)
	s.Require().NoError(totalErr)
	shippingCost, shippingErr := domain.NewCost(3000)
	s.Require().NoError(shippingErr)

	copurchasing, err := domain.NewCopurchasing(domain.NewCopurchasingArgs{
		Title:            "Title",
		Content:          "Content",
		ProductTotalCost: productTotalCost,
		ShippingCost:     shippingCost,
		ProductURL:       "https://example.com/product",
		ProductMinNumber: 3,
		ProductMaxNumber: 5,
		DeadlineDate:     deadline,
		TradeDate:        deadline.Add(5 * 24 * time.Hour),
		WriterID:         testWriterID,
	})
	s.Require().NoError(err)
	copurchasing.ID = 10
	return copurchasing
}

func (s *CopurchasingServiceTestSuite) newMember(id, points int64) *domain.Member {
	balance, err := domain.NewPoint(points)
	s.Require().NoError(err)
	return &domain.Member{ID: id, Email: "member@example.com", Points: balance}
}

func (s *CopurchasingServiceTestSuite) expectLoad(copurchasing *domain.Copurchasing, participations domain.Participations) {
	s.mockCopRepo.EXPECT().
		FindByIDForUpdate(gomock.Any(), copurchasing.ID).
		Return(copurchasing, nil)
	s.mockParticipationRepo.EXPECT().
		GetByCopurchasingID(gomock.Any(), copurchasing.ID).
		Return(participations, nil)
}

func (s *CopurchasingServiceTestSuite) TestParticipate() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	participant := s.newMember(testParticipantID, 5000)

	s.expectLoad(copurchasing, nil)
	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testParticipantID).
		Return(participant, nil)

	// за 3 единицы списывается 1334*3 = 4002, на балансе остается 998
	s.mockMemberRepo.EXPECT().
		UpdatePoints(gomock.Any(), testParticipantID, int64(998)).
		Return(participant, nil)

	s.mockParticipationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateParticipation) (*domain.Participation, error) {
			s.Equal(copurchasing.ID, args.CopurchasingID)
			s.Equal(testParticipantID, args.ParticipantID)
			s.Equal(3, args.PurchaseNumber)
			s.Equal(int64(4002), args.PaymentPoint)
			return &domain.Participation{ID: 77}, nil
		})

	participationID, err := s.service.Participate(s.T().Context(), ParticipateArgs{
		CopurchasingID: copurchasing.ID,
		ParticipantID:  testParticipantID,
		PurchaseNumber: 3,
	})
	s.Require().NoError(err)
	s.Equal(int64(77), participationID)
}

func (s *CopurchasingServiceTestSuite) TestParticipate_NotEnoughPoints() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))

	s.expectLoad(copurchasing, nil)
	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testParticipantID).
		Return(s.newMember(testParticipantID, 4001), nil)

	// списание не проходит, UpdatePoints и Create не вызываются
	_, err := s.service.Participate(s.T().Context(), ParticipateArgs{
		CopurchasingID: copurchasing.ID,
		ParticipantID:  testParticipantID,
		PurchaseNumber: 3,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughPoints)
}

func (s *CopurchasingServiceTestSuite) TestParticipate_OwnCopurchasing() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))

	s.expectLoad(copurchasing, nil)
	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testWriterID).
		Return(s.newMember(testWriterID, 5000), nil)

	_, err := s.service.Participate(s.T().Context(), ParticipateArgs{
		CopurchasingID: copurchasing.ID,
		ParticipantID:  testWriterID,
		PurchaseNumber: 1,
	})
	s.Require().ErrorIs(err, domain.ErrCantJoinOwn)
}

func (s *CopurchasingServiceTestSuite) TestParticipate_DeadlineExpired() {
	copurchasing := s.newCopurchasing(time.Now().Add(-time.Hour))

	s.expectLoad(copurchasing, nil)
	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testParticipantID).
		Return(s.newMember(testParticipantID, 5000), nil)

	// до списания дело не доходит, UpdatePoints не вызывается
	_, err := s.service.Participate(s.T().Context(), ParticipateArgs{
		CopurchasingID: copurchasing.ID,
		ParticipantID:  testParticipantID,
		PurchaseNumber: 1,
	})
	s.Require().ErrorIs(err, domain.ErrDeadlineExpired)
}

func (s *CopurchasingServiceTestSuite) TestCancelParticipation() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	participation := &domain.Participation{
		ID:             5,
		PurchaseNumber: 3,
		PaymentPoint:   4002,
		ParticipantID:  testParticipantID,
		CopurchasingID: copurchasing.ID,
	}

	s.mockParticipationRepo.EXPECT().
		FindByID(gomock.Any(), participation.ID).
		Return(participation, nil)
	s.expectLoad(copurchasing, domain.Participations{*participation})

	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testParticipantID).
		Return(s.newMember(testParticipantID, 998), nil)

	// возвращается ровно замороженная сумма: 998 + 4002 = 5000
	s.mockMemberRepo.EXPECT().
		UpdatePoints(gomock.Any(), testParticipantID, int64(5000)).
		Return(s.newMember(testParticipantID, 5000), nil)

	s.mockParticipationRepo.EXPECT().
		Delete(gomock.Any(), participation.ID).
		Return(nil)

	err := s.service.CancelParticipation(s.T().Context(), CancelParticipationArgs{
		ParticipationID: participation.ID,
		DeleterID:       testParticipantID,
	})
	s.Require().NoError(err)
}

func (s *CopurchasingServiceTestSuite) TestCancelParticipation_AlreadyStarted() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	participation := &domain.Participation{
		ID:             5,
		PurchaseNumber: 2,
		PaymentPoint:   2668,
		ParticipantID:  testParticipantID,
		CopurchasingID: copurchasing.ID,
	}
	// вместе с чужими участиями собран максимум - закупка стартовала
	other := domain.Participation{ID: 6, PurchaseNumber: 3, ParticipantID: 201}

	s.mockParticipationRepo.EXPECT().
		FindByID(gomock.Any(), participation.ID).
		Return(participation, nil)
	s.expectLoad(copurchasing, domain.Participations{*participation, other})

	err := s.service.CancelParticipation(s.T().Context(), CancelParticipationArgs{
		ParticipationID: participation.ID,
		DeleterID:       testParticipantID,
	})
	s.Require().ErrorIs(err, domain.ErrAlreadyStarted)
}

func (s *CopurchasingServiceTestSuite) TestCancelParticipation_NoPermission() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	participation := &domain.Participation{
		ID:             5,
		PurchaseNumber: 1,
		PaymentPoint:   1334,
		ParticipantID:  testParticipantID,
		CopurchasingID: copurchasing.ID,
	}

	s.mockParticipationRepo.EXPECT().
		FindByID(gomock.Any(), participation.ID).
		Return(participation, nil)
	s.expectLoad(copurchasing, domain.Participations{*participation})

	err := s.service.CancelParticipation(s.T().Context(), CancelParticipationArgs{
		ParticipationID: participation.ID,
		DeleterID:       999,
	})
	s.Require().ErrorIs(err, domain.ErrNoPermission)
}

func (s *CopurchasingServiceTestSuite) TestCancelParticipation_Writer() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	// участие автора, созданное автозаписью при создании закупки
	participation := &domain.Participation{
		ID:             5,
		PurchaseNumber: 1,
		PaymentPoint:   1334,
		ParticipantID:  testWriterID,
		CopurchasingID: copurchasing.ID,
	}

	s.mockParticipationRepo.EXPECT().
		FindByID(gomock.Any(), participation.ID).
		Return(participation, nil)
	s.expectLoad(copurchasing, domain.Participations{*participation})

	err := s.service.CancelParticipation(s.T().Context(), CancelParticipationArgs{
		ParticipationID: participation.ID,
		DeleterID:       testWriterID,
	})
	s.Require().ErrorIs(err, domain.ErrWriterCannotCancel)
}

func (s *CopurchasingServiceTestSuite) TestDelete() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	participations := domain.Participations{
		{ID: 5, PurchaseNumber: 1, PaymentPoint: 1334, ParticipantID: 200, CopurchasingID: copurchasing.ID},
		{ID: 6, PurchaseNumber: 2, PaymentPoint: 2668, ParticipantID: 201, CopurchasingID: copurchasing.ID},
	}

	s.expectLoad(copurchasing, participations)

	// каждому участнику возвращается его замороженный платеж
	s.mockMemberRepo.EXPECT().FindByID(gomock.Any(), int64(200)).
		Return(s.newMember(200, 0), nil)
	s.mockMemberRepo.EXPECT().UpdatePoints(gomock.Any(), int64(200), int64(1334)).
		Return(s.newMember(200, 1334), nil)
	s.mockMemberRepo.EXPECT().FindByID(gomock.Any(), int64(201)).
		Return(s.newMember(201, 100), nil)
	s.mockMemberRepo.EXPECT().UpdatePoints(gomock.Any(), int64(201), int64(2768)).
		Return(s.newMember(201, 2768), nil)

	s.mockParticipationRepo.EXPECT().
		DeleteByCopurchasingID(gomock.Any(), copurchasing.ID).
		Return(nil)
	s.mockCopRepo.EXPECT().
		Delete(gomock.Any(), copurchasing.ID).
		Return(nil)

	err := s.service.Delete(s.T().Context(), testWriterID, copurchasing.ID)
	s.Require().NoError(err)
}

func (s *CopurchasingServiceTestSuite) TestDelete_NoPermission() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))

	s.expectLoad(copurchasing, nil)

	err := s.service.Delete(s.T().Context(), 999, copurchasing.ID)
	s.Require().ErrorIs(err, domain.ErrNoPermission)
}

func (s *CopurchasingServiceTestSuite) TestDelete_AlreadyStarted() {
	copurchasing := s.newCopurchasing(time.Now().Add(24 * time.Hour))
	participations := domain.Participations{
		{ID: 5, PurchaseNumber: 5, PaymentPoint: 6670, ParticipantID: 200, CopurchasingID: copurchasing.ID},
	}

	s.expectLoad(copurchasing, participations)

	err := s.service.Delete(s.T().Context(), testWriterID, copurchasing.ID)
	s.Require().ErrorIs(err, domain.ErrAlreadyStarted)
}

func (s *CopurchasingServiceTestSuite) createArgs(deadline time.Time) CreateCopurchasingArgs {
	return CreateCopurchasingArgs{
		Title:            "Title",
		Content:          "Content",
		ProductTotalCost: 1000,
		ShippingCost:     3000,
		ProductURL:       "https://example.com/product",
		ProductMinNumber: 3,
		ProductMaxNumber: 5,
		DeadlineDate:     deadline,
		TradeDate:        deadline.Add(5 * 24 * time.Hour),
		WriterID:         testWriterID,
		PurchaseNumber:   2,
	}
}

func (s *CopurchasingServiceTestSuite) TestCreate() {
	args := s.createArgs(time.Now().Add(24 * time.Hour))
	created := s.newCopurchasing(args.DeadlineDate)

	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testWriterID).
		Return(s.newMember(testWriterID, 5000), nil)
	s.mockCopRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateCopurchasing) (*domain.Copurchasing, error) {
			s.Equal(args.Title, createArgs.Title)
			s.Equal(args.ProductTotalCost, createArgs.ProductTotalCost)
			s.Equal(args.ShippingCost, createArgs.ShippingCost)
			s.Equal(testWriterID, createArgs.WriterID)
			return created, nil
		})

	copurchasingID, err := s.service.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(created.ID, copurchasingID)
}

func (s *CopurchasingServiceTestSuite) TestCreate_InvalidTradeDate() {
	args := s.createArgs(time.Now().Add(24 * time.Hour))
	args.TradeDate = args.DeadlineDate.Add(-time.Hour)

	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testWriterID).
		Return(s.newMember(testWriterID, 5000), nil)

	_, err := s.service.Create(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrInvalidTradeDate)
}

func (s *CopurchasingServiceTestSuite) TestCreate_WriterAutoJoin() {
	service, serviceErr := NewCopurchasingService(s.mockUOW, true)
	s.Require().NoError(serviceErr)

	args := s.createArgs(time.Now().Add(24 * time.Hour))
	created := s.newCopurchasing(args.DeadlineDate)
	writer := s.newMember(testWriterID, 5000)

	s.mockMemberRepo.EXPECT().
		FindByID(gomock.Any(), testWriterID).
		Return(writer, nil)
	s.mockCopRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(created, nil)

	// автор сразу вступает на 2 единицы: списывается 1334*2 = 2668
	s.mockMemberRepo.EXPECT().
		UpdatePoints(gomock.Any(), testWriterID, int64(2332)).
		Return(writer, nil)
	s.mockParticipationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateParticipation) (*domain.Participation, error) {
			s.Equal(created.ID, createArgs.CopurchasingID)
			s.Equal(testWriterID, createArgs.ParticipantID)
			s.Equal(2, createArgs.PurchaseNumber)
			s.Equal(int64(2668), createArgs.PaymentPoint)
			return &domain.Participation{ID: 77}, nil
		})

	copurchasingID, err := service.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(created.ID, copurchasingID)
}
