package expense_test

import (
	"sync"
	"testing"

	"go-shopbook/internal/expense"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestMoneyColumnsKeepFullPrecision(t *testing.T) {
	s, err := schema.Parse(&expense.ExpenseItem{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	for _, name := range []string{"DefaultAmount"} {
		field := s.LookUpField(name)
		if assert.NotNil(t, field, name) {
			assert.Equal(t, "numeric", field.TagSettings["TYPE"], name)
		}
	}
}
