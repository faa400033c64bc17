package withdrawalrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (user_id, amount, ton_wallet_address, status)
		VALUES ($1, $2::numeric, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.UserID, withdrawal.Amount.String(), withdrawal.WalletAddress, withdrawal.Status,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

// List returns withdrawals joined with the owning user, newest first,
// optionally filtered by a substring of the handle or wallet address.
func (r *Repository) List(ctx context.Context, search string) ([]domain.WithdrawalWithOwner, error) {
	query := `
		SELECT w.id, w.user_id, w.amount::text, w.ton_wallet_address, w.status, w.created_at,
		       u.username, u.first_name
		FROM withdrawals w
		JOIN users u ON u.id = w.user_id
		WHERE $1 = '' OR u.username LIKE '%' || $1 || '%' OR w.ton_wallet_address LIKE '%' || $1 || '%'
		ORDER BY w.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalWithOwner
	for rows.Next() {
		var wd domain.WithdrawalWithOwner
		var amount string
		err := rows.Scan(
			&wd.ID, &wd.UserID, &amount, &wd.WalletAddress, &wd.Status,
			&wd.CreatedAt, &wd.OwnerUsername, &wd.OwnerFirstName,
		)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		wd.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}

	return withdrawals, rows.Err()
}

// UpdateStatus overwrites the status unconditionally. Returns nil, nil when
// no withdrawal has that id.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) (*domain.Withdrawal, error) {
	query := `
		UPDATE withdrawals
		SET status = $1
		WHERE id = $2
		RETURNING id, user_id, amount::text, ton_wallet_address, status, created_at
	`
	var wd domain.Withdrawal
	var amount string
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&wd.ID, &wd.UserID, &amount, &wd.WalletAddress, &wd.Status, &wd.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return nil, err
	}
	wd.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	return &wd, nil
}
