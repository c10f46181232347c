package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_CompareFields(t *testing.T) {
	a := NewAdapter()

	stored := Task{
		ID:        "T1",
		Name:      strPtr("Revisar bomba"),
		CreatedOn: strPtr("2024-03-05T00:00:00+00:00"),
		Late:      boolPtr(false),
		Tags:      strPtr(""),
	}

	t.Run("EquivalentValues", func(t *testing.T) {
		incoming := Task{
			ID:        "T1",
			Name:      strPtr("Revisar bomba "),
			CreatedOn: strPtr("05/03/2024"),
			Late:      boolPtr(false),
		}
		assert.Empty(t, a.CompareFields(incoming, stored))
	})

	t.Run("ChangedFields", func(t *testing.T) {
		incoming := Task{
			ID:             "T1",
			Name:           strPtr("Revisar bomba"),
			CreatedOn:      strPtr("2024-03-05"),
			Late:           boolPtr(true),
			ChecklistTotal: intPtr(3),
		}
		assert.Equal(t, []string{
			"con_retraso: true != false",
			"checklist_total: 3 != null",
		}, a.CompareFields(incoming, stored))
	})

	assert.Equal(t, "tasks", a.Name())
	assert.Equal(t, "T1", a.Key(stored))
}
