package tasks

import (
	"context"
	"errors"
	"testing"

	"task-sync/core/apperr"
	"task-sync/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockStore is a testify mock of Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetByIDs(ctx context.Context, ids []string) ([]Task, error) {
	args := m.Called(ctx, ids)
	tasks, _ := args.Get(0).([]Task)
	return tasks, args.Error(1)
}

func (m *mockStore) InsertMany(ctx context.Context, tasks []Task) error {
	return m.Called(ctx, tasks).Error(0)
}

func (m *mockStore) UpdateOne(ctx context.Context, task Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *mockStore) GetAll(ctx context.Context) ([]Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]Task)
	return tasks, args.Error(1)
}

func (m *mockStore) Search(ctx context.Context, f Filter) ([]Task, error) {
	args := m.Called(ctx, f)
	tasks, _ := args.Get(0).([]Task)
	return tasks, args.Error(1)
}

func newTestService(store Store) *Service {
	return NewService(store, sheet.Config{Sheet: "Tareas"}, zap.NewNop())
}

func TestService_SyncInsertsNewTask(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("GetByIDs", ctx, []string{"T1"}).Return([]Task{}, nil)
	store.On("InsertMany", ctx, mock.MatchedBy(func(in []Task) bool {
		return len(in) == 1 && in[0].ID == "T1"
	})).Return(nil)

	res, err := newTestService(store).Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1")))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 0, res.Updated)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything)
}

func TestService_SyncRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(setupSQLiteStore(t))

	res, err := svc.Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1"), taskRow("T2"), taskRow("T3")))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Inserted)

	res, err = svc.Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1"), taskRow("T2"), taskRow("T3")))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 3, res.Unchanged)

	changed := taskRow("T2")
	changed[3] = "Completado"
	res, err = svc.Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1"), changed, taskRow("T4")))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Unchanged)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 4, sum.Late)
	assert.Equal(t, 3, sum.ByProgress["En curso"])
}

func TestService_Preview(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("GetByIDs", ctx, []string{"T1", "T2"}).Return([]Task{
		{ID: "T2", Name: strPtr("Otra")},
	}, nil)

	res, err := newTestService(store).Preview(ctx, workbook(t, RequiredColumns(), taskRow("T1"), taskRow("T2")))
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Updated)
	assert.Contains(t, res.Mismatches["T2"], "nombre_de_la_tarea: Revisar bomba != Otra")
	store.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything)
}

func TestService_SyncErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingColumn", func(t *testing.T) {
		header := RequiredColumns()[:17]
		_, err := newTestService(new(mockStore)).Sync(ctx, workbook(t, header, taskRow("T1")[:17]))
		require.Error(t, err)
		assert.Equal(t, apperr.KindMalformedInput, apperr.KindOf(err))
		assert.Contains(t, err.Error(), HeaderDescription)
	})

	t.Run("AllIdentifiersBlank", func(t *testing.T) {
		_, err := newTestService(new(mockStore)).Sync(ctx, workbook(t, RequiredColumns(), taskRow(""), taskRow("  ")))
		require.Error(t, err)
		assert.Equal(t, apperr.KindMalformedInput, apperr.KindOf(err))
	})

	t.Run("InvalidCount", func(t *testing.T) {
		row := taskRow("T1")
		row[15] = "muchos"
		_, err := newTestService(new(mockStore)).Sync(ctx, workbook(t, RequiredColumns(), row))
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("ReadFailure", func(t *testing.T) {
		store := new(mockStore)
		store.On("GetByIDs", ctx, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := newTestService(store).Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1")))
		require.Error(t, err)
		assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("WriteFailureStops", func(t *testing.T) {
		store := new(mockStore)
		store.On("GetByIDs", ctx, mock.Anything).Return([]Task{{ID: "T2"}}, nil)
		store.On("InsertMany", ctx, mock.Anything).Return(errors.New("unique violation"))

		_, err := newTestService(store).Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1"), taskRow("T2")))
		require.Error(t, err)
		assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
		store.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything)
	})

	t.Run("TaggedWriteFailureKeepsKind", func(t *testing.T) {
		store := new(mockStore)
		store.On("GetByIDs", ctx, mock.Anything).Return([]Task{}, nil)
		store.On("InsertMany", ctx, mock.Anything).Return(apperr.Validation("rejected"))

		_, err := newTestService(store).Sync(ctx, workbook(t, RequiredColumns(), taskRow("T1")))
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("Search", ctx, Filter{Search: "revision", Progress: "En curso"}).Return([]Task{
		{ID: "T1", Name: strPtr("Revisión de bomba"), Tags: strPtr("Planta")},
		{ID: "T2", Name: strPtr("Cambio de filtro")},
		{ID: "REVISION-3", Bucket: strPtr("Efectividad Verificada")},
	}, nil)

	list, err := newTestService(store).List(ctx, Filter{Search: "revision", Progress: "En curso"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "T1", list[0].ID)
	assert.Equal(t, []string{"planta"}, list[0].NormalizedTags)
	assert.Equal(t, []string{VerifiedTag}, list[1].NormalizedTags)
}

func TestService_ListFailure(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("Search", ctx, Filter{}).Return(nil, errors.New("down"))
	store.On("GetAll", ctx).Return(nil, errors.New("down"))

	_, err := newTestService(store).List(ctx, Filter{})
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))

	_, err = newTestService(store).Summary(ctx)
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
}
