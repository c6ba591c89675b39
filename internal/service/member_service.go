package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
	"github.com/fsdevblog/groph-copurchase/pkg/uow"
	"golang.org/x/crypto/bcrypt"
)

type MemberService struct {
	uow        uow.UOW
	memberRepo MemberRepository
}

func NewMemberService(u uow.UOW) (*MemberService, error) {
	memberRepo, memberRepoErr := uow.GetRepositoryAs[MemberRepository](u, uow.RepositoryName(repoargs.MemberRepoName))
	if memberRepoErr != nil {
		return nil, memberRepoErr
	}
	return &MemberService{
		uow:        u,
		memberRepo: memberRepo,
	}, nil
}

type RegisterMemberArgs struct {
	Email    string
	Password string
	Nickname string
}

// Register создает участника с нулевым балансом баллов. Пароль хранится
// только в виде bcrypt-хеша. Дубликат email вернется как domain.ErrDuplicateKey.
func (s *MemberService) Register(ctx context.Context, args RegisterMemberArgs) (*domain.Member, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering member: %s", hashErr.Error())
	}

	member, createErr := s.memberRepo.Create(ctx, repoargs.CreateMember{
		Email:    args.Email,
		Password: password,
		Nickname: args.Nickname,
	})
	if createErr != nil {
		return nil, fmt.Errorf("registering member: %w", createErr)
	}
	return member, nil
}

func (s *MemberService) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return member, nil
}

func (s *MemberService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}
