package postgres

import (
	"context"
	"errors"
	"time"

	"textkit-client/internal/domain"
	"textkit-client/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Compile-time check to ensure TokenRepository implements TokenStore interface
var _ output.TokenStore = (*TokenRepository)(nil)

// TokenEntry struct - One persisted session token row
type TokenEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Token     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName overrides the table name used by gorm
func (TokenEntry) TableName() string {
	return "session_tokens"
}

// TokenRepository struct - Secondary/Driven adapter for PostgreSQL
type TokenRepository struct {
	dbGorm *gorm.DB
}

// NewTokenRepository func - Creates new PostgreSQL token repository
func NewTokenRepository(dbGorm *gorm.DB) (*TokenRepository, error) {
	logrus.Info("Migrate database ...")
	if err := dbGorm.AutoMigrate(&TokenEntry{}); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &TokenRepository{
		dbGorm: dbGorm,
	}, nil
}

// LoadToken func - Reads the token row, "" when absent
func (p *TokenRepository) LoadToken(ctx context.Context) (string, error) {
	var entry TokenEntry
	err := p.dbGorm.WithContext(ctx).Where("key = ?", domain.TokenStorageKey).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}
	return entry.Token, nil
}

// SaveToken func - Upserts the token row
func (p *TokenRepository) SaveToken(ctx context.Context, token string) error {
	entry := TokenEntry{
		Key:   domain.TokenStorageKey,
		Token: token,
	}
	err := p.dbGorm.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// ClearToken func - Deletes the token row
func (p *TokenRepository) ClearToken(ctx context.Context) error {
	err := p.dbGorm.WithContext(ctx).Where("key = ?", domain.TokenStorageKey).Delete(&TokenEntry{}).Error
	if err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}
