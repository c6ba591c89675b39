package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
	"github.com/fsdevblog/groph-copurchase/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const memberColumns = "id, created_at, updated_at, email, password, nickname, points"

type MemberRepository struct {
	db uow.DBTX
}

func NewMemberRepository(db uow.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, args repoargs.CreateMember) (*domain.Member, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO members (email, password, nickname, points)
		 VALUES ($1, $2, $3, 0)
		 RETURNING `+memberColumns,
		args.Email, args.Password, args.Nickname,
	)
	member, err := scanMember(row)
	if err != nil {
		return nil, convertErr(err, "creating member %s", args.Email)
	}
	return member, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	row := r.db.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	member, err := scanMember(row)
	if err != nil {
		return nil, convertErr(err, "finding member by id %d", id)
	}
	return member, nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	row := r.db.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE email = $1`, email)
	member, err := scanMember(row)
	if err != nil {
		return nil, convertErr(err, "finding member by email %s", email)
	}
	return member, nil
}

// UpdatePoints сохраняет новый баланс баллов участника. Чек points >= 0 на
// уровне схемы страхует доменную проверку.
func (r *MemberRepository) UpdatePoints(ctx context.Context, id int64, points int64) (*domain.Member, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE members SET points = $2, updated_at = now() WHERE id = $1
		 RETURNING `+memberColumns,
		id, points,
	)
	member, err := scanMember(row)
	if err != nil {
		return nil, convertErr(err, "updating points of member %d", id)
	}
	return member, nil
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	var createdAt, updatedAt time.Time
	var points int64

	if err := row.Scan(&m.ID, &createdAt, &updatedAt, &m.Email, &m.Password, &m.Nickname, &points); err != nil {
		return nil, err
	}
	m.CreatedAt = createdAt
	m.UpdatedAt = updatedAt

	p, pErr := domain.NewPoint(points)
	if pErr != nil {
		return nil, pErr
	}
	m.Points = p
	return &m, nil
}
