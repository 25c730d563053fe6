package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputs_Validate(t *testing.T) {
	assert.NoError(t, DefaultInputs().Validate())
	assert.NoError(t, Inputs{}.Validate())

	in := DefaultInputs()
	in.FixedOverheads = -1
	in.PayableDays = -30

	err := in.Validate()
	assert.ErrorIs(t, err, ErrNegativeInput)
	assert.Contains(t, err.Error(), "fixed_overheads, payable_days")
}

func TestInputs_JSONKeysMatchFieldNames(t *testing.T) {
	payload, err := json.Marshal(DefaultInputs())
	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Len(t, decoded, len(InputFields))
	for _, field := range InputFields {
		assert.Contains(t, decoded, field)
	}
}
