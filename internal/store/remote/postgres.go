package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/pytutor-ai/backend/internal/store"
)

// documentRow is one document in the shared documents table. Every user's
// partition lives in the same table, keyed by (user_id, collection, id).
type documentRow struct {
	UserID     string         `gorm:"primaryKey;size:128"`
	Collection string         `gorm:"primaryKey;size:32"`
	ID         string         `gorm:"primaryKey;size:128"`
	Body       datatypes.JSON `gorm:"not null"`
}

func (documentRow) TableName() string { return "documents" }

// Postgres is a DocumentStore on PostgreSQL.
type Postgres struct {
	db *gorm.DB
}

// Compile-time check: *Postgres satisfies DocumentStore.
var _ DocumentStore = (*Postgres)(nil)

// OpenPostgres connects with dsn and migrates the documents table.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}
	return NewPostgres(db)
}

// NewPostgres wraps an existing connection and migrates the documents table.
func NewPostgres(db *gorm.DB) (*Postgres, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	return &Postgres{db: db}, nil
}

// Close releases the connection pool.
func (s *Postgres) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Postgres) Get(ctx context.Context, p Partition, id string) (*Document, error) {
	var row documentRow
	err := s.partition(ctx, p).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Document{ID: row.ID, Body: json.RawMessage(row.Body)}, nil
}

func (s *Postgres) List(ctx context.Context, p Partition) ([]Document, error) {
	var rows []documentRow
	if err := s.partition(ctx, p).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDocuments(rows), nil
}

func (s *Postgres) Query(ctx context.Context, p Partition, field, value string) ([]Document, error) {
	var rows []documentRow
	err := s.partition(ctx, p).
		Where(datatypes.JSONQuery("body").Equals(value, field)).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDocuments(rows), nil
}

// Put writes all docs in one transaction.
func (s *Postgres) Put(ctx context.Context, p Partition, docs ...Document) error {
	if len(docs) == 0 {
		return nil
	}
	rows := make([]documentRow, len(docs))
	for i, d := range docs {
		rows[i] = documentRow{
			UserID:     p.UserID,
			Collection: string(p.Collection),
			ID:         d.ID,
			Body:       datatypes.JSON(d.Body),
		}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body"}),
		}).Create(&rows).Error
	})
}

func (s *Postgres) Delete(ctx context.Context, p Partition, id string) error {
	return s.partition(ctx, p).Where("id = ?", id).Delete(&documentRow{}).Error
}

func (s *Postgres) partition(ctx context.Context, p Partition) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&documentRow{}).
		Where("user_id = ? AND collection = ?", p.UserID, string(p.Collection))
}

func toDocuments(rows []documentRow) []Document {
	docs := make([]Document, len(rows))
	for i, row := range rows {
		docs[i] = Document{ID: row.ID, Body: json.RawMessage(row.Body)}
	}
	return docs
}
