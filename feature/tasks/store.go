package tasks

import (
	"context"
	"fmt"

	"task-sync/core/database"

	"gorm.io/gorm"
)

// Store reads and writes task records.
type Store interface {
	GetByIDs(ctx context.Context, ids []string) ([]Task, error)
	InsertMany(ctx context.Context, tasks []Task) error
	UpdateOne(ctx context.Context, task Task) error
	GetAll(ctx context.Context) ([]Task, error)
	Search(ctx context.Context, filter Filter) ([]Task, error)
}

// GormStore is a Store backed by a single table.
type GormStore struct {
	db        *gorm.DB
	table     string
	batchSize int
}

// NewStore creates a store over cfg.Table.
func NewStore(db *gorm.DB, cfg database.Config) *GormStore {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 500
	}
	table := cfg.Table
	if table == "" {
		table = "tareas"
	}
	return &GormStore{db: db, table: table, batchSize: batch}
}

// GetByIDs returns the stored tasks whose id is in ids. Lookups are chunked.
func (s *GormStore) GetByIDs(ctx context.Context, ids []string) ([]Task, error) {
	var out []Task
	for start := 0; start < len(ids); start += s.batchSize {
		end := min(start+s.batchSize, len(ids))

		var chunk []Task
		err := s.db.WithContext(ctx).
			Table(s.table).
			Where(ColumnID+" IN ?", ids[start:end]).
			Find(&chunk).Error
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// InsertMany inserts tasks in batches of the configured size.
func (s *GormStore) InsertMany(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Table(s.table).CreateInBatches(&tasks, s.batchSize).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.table, err)
	}
	return nil
}

// UpdateOne overwrites every column of the stored task with the same id.
// Nil fields are written as NULL.
func (s *GormStore) UpdateOne(ctx context.Context, task Task) error {
	err := s.db.WithContext(ctx).
		Table(s.table).
		Model(&Task{}).
		Where(ColumnID+" = ?", task.ID).
		Select("*").
		Omit(ColumnID).
		Updates(&task).Error
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", s.table, err)
	}
	return nil
}

// GetAll returns every stored task ordered by id.
func (s *GormStore) GetAll(ctx context.Context) ([]Task, error) {
	return s.Search(ctx, Filter{})
}

// Search returns the stored tasks matching the column filters of f, ordered by id.
// Free text search is applied by the service.
func (s *GormStore) Search(ctx context.Context, f Filter) ([]Task, error) {
	q := s.db.WithContext(ctx).Table(s.table)
	if f.Progress != "" {
		q = q.Where("progreso = ?", f.Progress)
	}
	if f.AssignedTo != "" {
		q = q.Where("asignado_a = ?", f.AssignedTo)
	}
	if f.CompletedBy != "" {
		q = q.Where("completado_por = ?", f.CompletedBy)
	}
	if f.CreatedFrom != "" {
		q = q.Where("fecha_de_creacion >= ?", f.CreatedFrom)
	}
	if f.DueUntil != "" {
		q = q.Where("fecha_de_vencimiento <= ?", f.DueUntil)
	}

	var out []Task
	if err := q.Order(ColumnID).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	return out, nil
}
