package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-copurchase/internal/domain"
	"github.com/fsdevblog/groph-copurchase/internal/repository/repoargs"
	"github.com/fsdevblog/groph-copurchase/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const copurchasingColumns = `id, created_at, updated_at, title, content, product_total_cost,
	shipping_cost, product_url, expiration_date, product_min_number, product_max_number,
	deadline_date, trade_date, purchase_photo_url, writer_id`

type CopurchasingRepository struct {
	db uow.DBTX
}

func NewCopurchasingRepository(db uow.DBTX) *CopurchasingRepository {
	return &CopurchasingRepository{db: db}
}

func (r *CopurchasingRepository) Create(
	ctx context.Context,
	args repoargs.CreateCopurchasing,
) (*domain.Copurchasing, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO copurchasings (title, content, product_total_cost, shipping_cost, product_url,
			expiration_date, product_min_number, product_max_number, deadline_date, trade_date,
			purchase_photo_url, writer_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+copurchasingColumns,
		args.Title, args.Content, args.ProductTotalCost, args.ShippingCost, args.ProductURL,
		args.ExpirationDate, args.ProductMinNumber, args.ProductMaxNumber, args.DeadlineDate,
		args.TradeDate, args.PurchasePhotoURL, args.WriterID,
	)
	copurchasing, err := scanCopurchasing(row)
	if err != nil {
		return nil, convertErr(err, "creating copurchasing")
	}
	return copurchasing, nil
}

func (r *CopurchasingRepository) FindByID(ctx context.Context, id int64) (*domain.Copurchasing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+copurchasingColumns+` FROM copurchasings WHERE id = $1`, id)
	copurchasing, err := scanCopurchasing(row)
	if err != nil {
		return nil, convertErr(err, "finding copurchasing by id %d", id)
	}
	return copurchasing, nil
}

// FindByIDForUpdate берет блокировку строки закупки до конца транзакции.
// Конкурентные вступления/отмены/удаления одной закупки сериализуются на этой
// блокировке, иначе два вступления могут одновременно пройти проверку вместимости.
func (r *CopurchasingRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Copurchasing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+copurchasingColumns+` FROM copurchasings WHERE id = $1 FOR UPDATE`, id)
	copurchasing, err := scanCopurchasing(row)
	if err != nil {
		return nil, convertErr(err, "locking copurchasing by id %d", id)
	}
	return copurchasing, nil
}

func (r *CopurchasingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM copurchasings WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting copurchasing %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting copurchasing %d", id)
	}
	return nil
}

func scanCopurchasing(row pgx.Row) (*domain.Copurchasing, error) {
	var c domain.Copurchasing
	var productTotalCost, shippingCost int64

	if err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Title, &c.Content, &productTotalCost,
		&shippingCost, &c.ProductURL, &c.ExpirationDate, &c.ProductMinNumber, &c.ProductMaxNumber,
		&c.DeadlineDate, &c.TradeDate, &c.PurchasePhotoURL, &c.WriterID,
	); err != nil {
		return nil, err
	}

	totalCost, totalCostErr := domain.NewCost(productTotalCost)
	if totalCostErr != nil {
		return nil, totalCostErr
	}
	shipCost, shipCostErr := domain.NewCost(shippingCost)
	if shipCostErr != nil {
		return nil, shipCostErr
	}
	c.ProductTotalCost = totalCost
	c.ShippingCost = shipCost
	return &c, nil
}
