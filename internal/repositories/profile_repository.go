package repositories

import (
	"database/sql"
	"time"

	"github.com/alimgiray/projectboard/internal/models"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

const profileColumns = `id, email, full_name, twitter, linkedin, phone, created_at, updated_at`

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.db.Exec(query,
		profile.ID,
		profile.Email,
		profile.FullName,
		profile.Twitter,
		profile.LinkedIn,
		profile.Phone,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return scanProfile(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = ?`
	return scanProfile(r.db.QueryRow(query, email))
}

// Update refreshes the identity fields of a profile
func (r *ProfileRepository) Update(profile *models.Profile) error {
	query := `
		UPDATE profiles
		SET email = ?, full_name = ?, twitter = ?, linkedin = ?, phone = ?, updated_at = ?
		WHERE id = ?
	`

	profile.UpdatedAt = time.Now().UTC()
	result, err := r.db.Exec(query,
		profile.Email,
		profile.FullName,
		profile.Twitter,
		profile.LinkedIn,
		profile.Phone,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	profile := &models.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.FullName,
		&profile.Twitter,
		&profile.LinkedIn,
		&profile.Phone,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
