package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
	"github.com/fsdevblog/groph-copurchase/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const participationColumns = `id, created_at, updated_at, purchase_number, payment_point,
	confirm_date, participant_id, copurchasing_id`

type ParticipationRepository struct {
	db uow.DBTX
}

func NewParticipationRepository(db uow.DBTX) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

func (r *ParticipationRepository) Create(
	ctx context.Context,
	args repoargs.CreateParticipation,
) (*domain.Participation, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO participations (purchase_number, payment_point, participant_id, copurchasing_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+participationColumns,
		args.PurchaseNumber, args.PaymentPoint, args.ParticipantID, args.CopurchasingID,
	)
	participation, err := scanParticipation(row)
	if err != nil {
		return nil, convertErr(err, "creating participation")
	}
	return participation, nil
}

func (r *ParticipationRepository) FindByID(ctx context.Context, id int64) (*domain.Participation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+participationColumns+` FROM participations WHERE id = $1`, id)
	participation, err := scanParticipation(row)
	if err != nil {
		return nil, convertErr(err, "finding participation by id %d", id)
	}
	return participation, nil
}

func (r *ParticipationRepository) GetByCopurchasingID(
	ctx context.Context,
	copurchasingID int64,
) (domain.Participations, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+participationColumns+` FROM participations WHERE copurchasing_id = $1 ORDER BY id`,
		copurchasingID,
	)
	if err != nil {
		return nil, convertErr(err, "getting participations of copurchasing %d", copurchasingID)
	}
	defer rows.Close()

	var participations domain.Participations
	for rows.Next() {
		p, scanErr := scanParticipation(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting participations of copurchasing %d", copurchasingID)
		}
		participations = append(participations, *p)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting participations of copurchasing %d", copurchasingID)
	}
	return participations, nil
}

func (r *ParticipationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM participations WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting participation %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting participation %d", id)
	}
	return nil
}

// DeleteByCopurchasingID каскадно удаляет участия закупки. Отсутствие строк не
// считается ошибкой - у закупки может не быть участников.
func (r *ParticipationRepository) DeleteByCopurchasingID(ctx context.Context, copurchasingID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM participations WHERE copurchasing_id = $1`, copurchasingID); err != nil {
		return convertErr(err, "deleting participations of copurchasing %d", copurchasingID)
	}
	return nil
}

func scanParticipation(row pgx.Row) (*domain.Participation, error) {
	var p domain.Participation
	if err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.PurchaseNumber, &p.PaymentPoint,
		&p.ConfirmDate, &p.ParticipantID, &p.CopurchasingID,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
