package tasks

// Sheet headers of the planner export.
const (
	HeaderID             = "Id. de tarea"
	HeaderName           = "Nombre de la tarea"
	HeaderBucket         = "Nombre del depósito"
	HeaderProgress       = "Progreso"
	HeaderPriority       = "Priority"
	HeaderAssignedTo     = "Asignado a"
	HeaderCreatedBy      = "Creado por"
	HeaderCreatedOn      = "Fecha de creación"
	HeaderStartedOn      = "Fecha de inicio"
	HeaderDueOn          = "Fecha de vencimiento"
	HeaderCompletedOn    = "Fecha de finalización"
	HeaderPeriodic       = "Es periódica"
	HeaderLate           = "Con retraso"
	HeaderCompletedBy    = "Completado por"
	HeaderChecklistDone  = "Elementos de la lista de comprobación completados"
	HeaderChecklistTotal = "Elementos de la lista de comprobación"
	HeaderTags           = "Etiquetas"
	HeaderDescription    = "Descripción"
)

// ColumnID is the store column holding the task identifier.
const ColumnID = "id_de_tarea"

// column binds a sheet header to a store column and a Task field.
// field returns a pointer to the field: *string for the id, **string,
// **bool or **int for the optional attributes.
type column struct {
	Header string
	Store  string
	field  func(t *Task) any
}

var columns = []column{
	{HeaderID, ColumnID, func(t *Task) any { return &t.ID }},
	{HeaderName, "nombre_de_la_tarea", func(t *Task) any { return &t.Name }},
	{HeaderBucket, "nombre_del_deposito", func(t *Task) any { return &t.Bucket }},
	{HeaderProgress, "progreso", func(t *Task) any { return &t.Progress }},
	{HeaderPriority, "priority", func(t *Task) any { return &t.Priority }},
	{HeaderAssignedTo, "asignado_a", func(t *Task) any { return &t.AssignedTo }},
	{HeaderCreatedBy, "creado_por", func(t *Task) any { return &t.CreatedBy }},
	{HeaderCreatedOn, "fecha_de_creacion", func(t *Task) any { return &t.CreatedOn }},
	{HeaderStartedOn, "fecha_de_inicio", func(t *Task) any { return &t.StartedOn }},
	{HeaderDueOn, "fecha_de_vencimiento", func(t *Task) any { return &t.DueOn }},
	{HeaderCompletedOn, "fecha_de_finalizacion", func(t *Task) any { return &t.CompletedOn }},
	{HeaderPeriodic, "es_periodica", func(t *Task) any { return &t.Periodic }},
	{HeaderLate, "con_retraso", func(t *Task) any { return &t.Late }},
	{HeaderCompletedBy, "completado_por", func(t *Task) any { return &t.CompletedBy }},
	{HeaderChecklistDone, "checklist_completados", func(t *Task) any { return &t.ChecklistDone }},
	{HeaderChecklistTotal, "checklist_total", func(t *Task) any { return &t.ChecklistTotal }},
	{HeaderTags, "etiquetas", func(t *Task) any { return &t.Tags }},
	{HeaderDescription, "descripcion", func(t *Task) any { return &t.Description }},
}

// RequiredColumns returns the sheet headers every upload must carry.
func RequiredColumns() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Header
	}
	return out
}

// StoreColumns returns the store columns the task table must have.
func StoreColumns() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Store
	}
	return out
}

// value returns the field of t bound to c, one pointer level removed.
func (c column) value(t *Task) any {
	switch p := c.field(t).(type) {
	case *string:
		return *p
	case **string:
		return *p
	case **bool:
		return *p
	case **int:
		return *p
	}
	return nil
}
