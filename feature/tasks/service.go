package tasks

import (
	"context"
	"io"
	"strings"

	"task-sync/core/apperr"
	"task-sync/core/reconcile"
	"task-sync/core/sheet"

	"go.uber.org/zap"
)

// ProgressCompleted is the progress value of a finished task.
const ProgressCompleted = "Completado"

// SyncPlan is a reconcile plan for one workbook, before anything is written.
type SyncPlan struct {
	*reconcile.Plan[Task]
	// Dropped counts sheet rows discarded for lacking an identifier.
	Dropped int
}

// Result reports the plan counts without writing anything.
func (p *SyncPlan) Result() *Result {
	return &Result{
		Inserted:  p.Summary.Inserts,
		Updated:   p.Summary.Updates,
		Unchanged: p.Summary.Unchanged,
		Skipped:   p.Summary.Skipped,
		Dropped:   p.Dropped,
	}
}

// Service reconciles planner workbooks with the task store.
type Service struct {
	store   Store
	adapter *Adapter
	reader  *sheet.Reader
	logger  *zap.Logger
}

// NewService creates a new task service reading the sheet named in cfg.
func NewService(store Store, cfg sheet.Config, logger *zap.Logger) *Service {
	reader := sheet.NewReader(sheet.Options{
		Sheet:     cfg.Sheet,
		KeyColumn: HeaderID,
		Required:  RequiredColumns(),
	}, logger)

	return &Service{
		store:   store,
		adapter: NewAdapter(),
		reader:  reader,
		logger:  logger,
	}
}

// Plan parses the workbook and diffs it against the store without writing.
func (s *Service) Plan(ctx context.Context, r io.Reader) (*SyncPlan, error) {
	table, err := s.reader.Read(r)
	if err != nil {
		return nil, err
	}

	incoming := make([]Task, 0, len(table.Rows))
	ids := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		t, err := FromRow(row)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "failed to build task record")
		}
		incoming = append(incoming, *t)
		if t.ID != "" {
			ids = append(ids, t.ID)
		}
	}

	existing, err := s.store.GetByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err, "failed to read existing tasks")
	}

	plan := reconcile.BuildPlan[Task](s.adapter, incoming, existing)
	for _, t := range plan.Updates {
		s.logger.Debug("Task changed",
			zap.String("id", t.ID),
			zap.Strings("diffs", plan.Mismatches[t.ID]),
		)
	}

	s.logger.Info("Sync plan built",
		zap.Int("incoming", plan.Summary.Incoming),
		zap.Int("existing", plan.Summary.Existing),
		zap.Int("inserts", plan.Summary.Inserts),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("unchanged", plan.Summary.Unchanged),
		zap.Int("skipped", plan.Summary.Skipped),
		zap.Int("dropped", table.Dropped),
	)
	if plan.Summary.DuplicateExisting > 0 {
		s.logger.Warn("Store holds duplicate task ids; the last row wins",
			zap.Int("duplicates", plan.Summary.DuplicateExisting),
		)
	}

	return &SyncPlan{Plan: plan, Dropped: table.Dropped}, nil
}

// Apply writes the plan: one batch insert, then one update per changed task.
// The first failure aborts the run; earlier writes are not rolled back.
func (s *Service) Apply(ctx context.Context, p *SyncPlan) (*Result, error) {
	executed, err := reconcile.ApplyPlan[Task](ctx, s.adapter, s.store, p.Plan, reconcile.ApplyOptions{})
	if err != nil {
		s.logger.Error("Sync aborted", zap.Int("written", executed), zap.Error(err))
		return nil, apperr.Wrap(apperr.KindStore, err, "failed to write tasks")
	}

	res := p.Result()
	s.logger.Info("Sync applied",
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
	)
	return res, nil
}

// Sync reconciles the workbook in r with the store.
func (s *Service) Sync(ctx context.Context, r io.Reader) (*Result, error) {
	p, err := s.Plan(ctx, r)
	if err != nil {
		return nil, err
	}
	return s.Apply(ctx, p)
}

// Preview returns the counts and per-task differences Sync would produce.
func (s *Service) Preview(ctx context.Context, r io.Reader) (*Result, error) {
	p, err := s.Plan(ctx, r)
	if err != nil {
		return nil, err
	}
	res := p.Result()
	res.DryRun = true
	res.Mismatches = p.Mismatches
	return res, nil
}

// List returns the stored tasks matching f, with normalized tags.
func (s *Service) List(ctx context.Context, f Filter) ([]Task, error) {
	found, err := s.store.Search(ctx, f)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err, "failed to list tasks")
	}

	needle := Fold(f.Search)
	out := make([]Task, 0, len(found))
	for _, t := range found {
		if needle != "" && !matches(t, needle) {
			continue
		}
		t.NormalizedTags = NormalizeTags(t.Tags, t.Bucket)
		out = append(out, t)
	}
	return out, nil
}

// Summary aggregates every stored task.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, err, "failed to read tasks")
	}

	sum := &Summary{Total: len(all), ByProgress: make(map[string]int)}
	for _, t := range all {
		progress := "Sin progreso"
		if t.Progress != nil && *t.Progress != "" {
			progress = *t.Progress
		}
		sum.ByProgress[progress]++

		if progress == ProgressCompleted {
			sum.Completed++
		}
		if t.Late != nil && *t.Late {
			sum.Late++
		}
		if contains(NormalizeTags(t.Tags, t.Bucket), VerifiedTag) {
			sum.Verified++
		}
	}
	return sum, nil
}

func matches(t Task, needle string) bool {
	if strings.Contains(Fold(t.ID), needle) {
		return true
	}
	return t.Name != nil && strings.Contains(Fold(*t.Name), needle)
}
