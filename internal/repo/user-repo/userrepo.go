package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/pg"
)

// Balance is stored as NUMERIC and moved over the wire as text so the exact
// decimal value never passes through binary floating point.
const userColumns = `id, telegram_id, first_name, last_name, username, photo_url, auth_date, hash, balance::text, ads_viewed, referral_code, referrer_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var balance string
	err := row.Scan(
		&user.ID, &user.TelegramID, &user.FirstName, &user.LastName,
		&user.Username, &user.PhotoURL, &user.AuthDate, &user.Hash,
		&balance, &user.AdsViewed, &user.ReferralCode, &user.ReferrerID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, telegramID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by telegram id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByIDForUpdate locks the user row for the rest of the enclosing
// transaction. Callers must run it inside TXManager.Begin.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user row", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (telegram_id, first_name, last_name, username, photo_url, auth_date, hash, referral_code, referrer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, balance::text, created_at
	`
	var balance string
	err := r.db.QueryRow(ctx, query,
		user.TelegramID, user.FirstName, user.LastName, user.Username,
		user.PhotoURL, user.AuthDate, user.Hash, user.ReferralCode, user.ReferrerID,
	).Scan(&user.ID, &balance, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile overwrites the provider-supplied fields on a repeat login.
// Balance, view counter, referral code and referrer link are never touched.
func (r *Repository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, username = $3, photo_url = $4, auth_date = $5, hash = $6
		WHERE telegram_id = $7
	`
	_, err := r.db.Exec(ctx, query,
		user.FirstName, user.LastName, user.Username, user.PhotoURL,
		user.AuthDate, user.Hash, user.TelegramID,
	)
	if err != nil {
		zap.L().Error("can't update user profile", zap.Error(err))
		return err
	}
	return nil
}

// IncrementView bumps the view counter and credits the base reward as a
// single statement, returning the new counter and balance.
func (r *Repository) IncrementView(ctx context.Context, userID int, reward decimal.Decimal) (int, decimal.Decimal, error) {
	query := `
		UPDATE users
		SET ads_viewed = ads_viewed + 1, balance = balance + $1::numeric
		WHERE id = $2
		RETURNING ads_viewed, balance::text
	`
	var adsViewed int
	var balance string
	err := r.db.QueryRow(ctx, query, reward.String(), userID).Scan(&adsViewed, &balance)
	if err != nil {
		zap.L().Error("can't increment ad view", zap.Error(err))
		return 0, decimal.Zero, err
	}
	newBalance, err := decimal.NewFromString(balance)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return adsViewed, newBalance, nil
}

func (r *Repository) AddToBalance(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE users
		SET balance = balance + $1::numeric
		WHERE id = $2
		RETURNING balance::text
	`
	var balance string
	err := r.db.QueryRow(ctx, query, amount.String(), userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't credit balance", zap.Error(err))
		return decimal.Zero, err
	}
	return decimal.NewFromString(balance)
}

func (r *Repository) ResetBalance(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET balance = 0 WHERE id = $1`, userID)
	if err != nil {
		zap.L().Error("can't reset balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, search string) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE $1 = '' OR username LIKE '%' || $1 || '%' OR telegram_id::text LIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, search)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}
