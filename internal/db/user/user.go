package user

import (
	c "carshare/internal/core/domain/common"
	"carshare/internal/core/domain/user"
	"carshare/internal/db"
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, first_name, last_name, password_hash, password_reset_code, password_reset_attempts, created_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, first_name, last_name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		string(input.Email),
		input.FirstName,
		input.LastName,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var errUniqueConstraint *pgconn.PgError
	if errors.As(err, &errUniqueConstraint) {
		if errUniqueConstraint.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE &&
			errUniqueConstraint.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}

	if err != nil {
		return u, err
	}
	if err := u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`,
		int64(id),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmailWithLock(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1 FOR UPDATE`,
		string(email),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET
			first_name = CASE WHEN $2::bool THEN $3 ELSE first_name END,
			last_name = CASE WHEN $4::bool THEN $5 ELSE last_name END
		 WHERE id = $1
		 RETURNING `+userColumns,
		int64(input.ID),
		input.DoFirstNameUpdate,
		input.FirstName,
		input.DoLastNameUpdate,
		input.LastName,
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) SetPasswordResetCode(ctx context.Context, id user.ID, code user.ResetCode) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_reset_code = $2, password_reset_attempts = 0 WHERE id = $1`,
		int64(id),
		string(code),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) IncrementPasswordResetAttempts(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_reset_attempts = password_reset_attempts + 1 WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ResetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET
			password_hash = $2,
			password_reset_code = NULL,
			password_reset_attempts = 0
		 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var id int64
	var email string
	var passwordHash string
	var resetCode sql.NullString
	err = row.Scan(
		&id,
		&email,
		&u.FirstName,
		&u.LastName,
		&passwordHash,
		&resetCode,
		&u.PasswordResetAttempts,
		&u.CreatedAt,
	)
	if err != nil {
		return u, err
	}
	u.ID = user.ID(id)
	u.Email = c.Email(email)
	u.PasswordHash = user.PasswordHash(passwordHash)
	u.PasswordResetCode = c.NewOptional(user.ResetCode(resetCode.String), resetCode.Valid)
	return u, nil
}
