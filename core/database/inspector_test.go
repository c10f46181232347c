package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_tasks (id_de_tarea TEXT PRIMARY KEY, progreso TEXT, checklist_total INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_tasks")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["id_de_tarea"])
	assert.Equal(t, "integer", colMap["checklist_total"])
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE tareas (id_de_tarea TEXT PRIMARY KEY, progreso TEXT)").Error)

	missing, err := MissingColumns(db, "tareas", []string{"id_de_tarea", "progreso", "priority", "etiquetas"})
	require.NoError(t, err)
	assert.Equal(t, []string{"etiquetas", "priority"}, missing)

	missing, err = MissingColumns(db, "no_such_table", []string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, missing)
}
