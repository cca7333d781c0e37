package sql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var errNotInitialised = fmt.Errorf("repository not initialised")

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// ready reports whether the repository has a usable connection.
func (r *GormRepository) ready() bool {
	return r != nil && r.db != nil
}

// absent converts gorm's not-found sentinel into the (nil, nil) read contract.
func absent(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
