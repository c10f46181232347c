package tasks

// Task is one planner task as stored in the task table.
// Every attribute except the identifier is optional; nil is the canonical null.
type Task struct {
	ID             string  `gorm:"column:id_de_tarea;primaryKey" json:"id_de_tarea"`
	Name           *string `gorm:"column:nombre_de_la_tarea" json:"nombre_de_la_tarea"`
	Bucket         *string `gorm:"column:nombre_del_deposito" json:"nombre_del_deposito"`
	Progress       *string `gorm:"column:progreso" json:"progreso"`
	Priority       *string `gorm:"column:priority" json:"priority"`
	AssignedTo     *string `gorm:"column:asignado_a" json:"asignado_a"`
	CreatedBy      *string `gorm:"column:creado_por" json:"creado_por"`
	CreatedOn      *string `gorm:"column:fecha_de_creacion" json:"fecha_de_creacion"`
	StartedOn      *string `gorm:"column:fecha_de_inicio" json:"fecha_de_inicio"`
	DueOn          *string `gorm:"column:fecha_de_vencimiento" json:"fecha_de_vencimiento"`
	CompletedOn    *string `gorm:"column:fecha_de_finalizacion" json:"fecha_de_finalizacion"`
	Periodic       *bool   `gorm:"column:es_periodica" json:"es_periodica"`
	Late           *bool   `gorm:"column:con_retraso" json:"con_retraso"`
	CompletedBy    *string `gorm:"column:completado_por" json:"completado_por"`
	ChecklistDone  *int    `gorm:"column:checklist_completados" json:"checklist_completados"`
	ChecklistTotal *int    `gorm:"column:checklist_total" json:"checklist_total"`
	Tags           *string `gorm:"column:etiquetas" json:"etiquetas"`
	Description    *string `gorm:"column:descripcion" json:"descripcion"`

	// NormalizedTags is derived on read and never stored.
	NormalizedTags []string `gorm:"-" json:"etiquetas_normalizadas,omitempty"`
}

// Result reports the outcome of one sync run.
type Result struct {
	Inserted  int  `json:"inserted"`
	Updated   int  `json:"updated"`
	Unchanged int  `json:"unchanged"`
	Skipped   int  `json:"skipped"`
	Dropped   int  `json:"dropped"`
	DryRun    bool `json:"dry_run,omitempty"`

	// Mismatches lists the changed fields per task id. Only filled on dry runs.
	Mismatches map[string][]string `json:"mismatches,omitempty"`
}

// Filter narrows a task listing. Empty fields do not filter.
type Filter struct {
	// Search matches the task name or id, ignoring case and accents.
	Search      string
	Progress    string
	AssignedTo  string
	CompletedBy string
	// CreatedFrom keeps tasks created on or after this YYYY-MM-DD date.
	CreatedFrom string
	// DueUntil keeps tasks due on or before this YYYY-MM-DD date.
	DueUntil string
}

// Summary aggregates the stored tasks for the dashboard cards.
type Summary struct {
	Total      int            `json:"total"`
	ByProgress map[string]int `json:"por_progreso"`
	Late       int            `json:"con_retraso"`
	Completed  int            `json:"completadas"`
	Verified   int            `json:"efectividad_verificada"`
}
