package sheet

// Config holds configuration for workbook parsing.
type Config struct {
	// Sheet is the worksheet holding the task export. Empty reads the first sheet.
	Sheet string `mapstructure:"sheet" default:"Tareas"`
}
