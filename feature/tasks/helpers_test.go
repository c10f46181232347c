package tasks

import (
	"bytes"
	"testing"

	"task-sync/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

// taskRow returns a full planner row for id with every column filled.
func taskRow(id string) []any {
	return []any{
		id, "Revisar bomba", "Mantenimiento", "En curso", "Media", "Ana", "Luis",
		"05/03/2024", "06/03/2024", "10/03/2024", nil,
		false, true, nil, 1, 3, "Planta, Urgente", "Revisión trimestral",
	}
}

// workbook builds an xlsx export with the given header and rows on the Tareas sheet.
func workbook(t *testing.T, header []string, rows ...[]any) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Tareas"))

	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	require.NoError(t, f.SetSheetRow("Tareas", "A1", &head))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Tareas", cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

// setupSQLiteStore returns a store over a fresh in-memory task table.
func setupSQLiteStore(t *testing.T) *GormStore {
	t.Helper()

	cfg := database.Config{Driver: database.DriverSQLite, Name: ":memory:", Table: "tareas", BatchSize: 2}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Table(cfg.Table).AutoMigrate(&Task{}))

	return NewStore(db, cfg)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}
