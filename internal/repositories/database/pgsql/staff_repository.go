package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sabaipos/pos_backend/internal/apperrors"
	"github.com/sabaipos/pos_backend/internal/core/domain"
	portsrepo "github.com/sabaipos/pos_backend/internal/core/ports/repositories"
	"github.com/sabaipos/pos_backend/internal/models"
	"github.com/sabaipos/pos_backend/internal/utils/mapping"
)

type PgxStaffUserRepository struct {
	BaseRepository
}

// newPgxStaffUserRepository creates a new repository for staff credentials.
func newPgxStaffUserRepository(pool DBPool) portsrepo.StaffUserRepositoryFacade {
	return &PgxStaffUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StaffUserRepositoryFacade = (*PgxStaffUserRepository)(nil)

func (r *PgxStaffUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	query := `
		SELECT user_id, username, display_name, password_hash, created_at
		FROM staff_users WHERE username = $1;
	`
	var m models.StaffUser
	err := r.Pool.QueryRow(ctx, query, username).Scan(
		&m.UserID, &m.Username, &m.DisplayName, &m.PasswordHash, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff user %q: %w", username, err)
	}
	user := mapping.ToDomainStaffUser(m)
	return &user, nil
}

func (r *PgxStaffUserRepository) SaveUser(ctx context.Context, user domain.StaffUser) error {
	m := mapping.ToModelStaffUser(user)
	query := `
		INSERT INTO staff_users (user_id, username, display_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.Username, m.DisplayName, m.PasswordHash, m.CreatedAt)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("username %q already taken: %w", m.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save staff user %q: %w", m.Username, err)
	}
	return nil
}
