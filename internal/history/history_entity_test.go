package history_test

import (
	"sync"
	"testing"

	"go-shopbook/internal/history"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestMoneyColumnsKeepFullPrecision(t *testing.T) {
	s, err := schema.Parse(&history.HistoryRecord{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	for _, name := range []string{"Sales", "Expenses", "Profit"} {
		field := s.LookUpField(name)
		if assert.NotNil(t, field, name) {
			assert.Equal(t, "numeric", field.TagSettings["TYPE"], name)
		}
	}
}
