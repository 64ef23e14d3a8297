package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpgradeCatalog(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{
			name: "valid catalog",
			data: `{"version": "1.0", "upgrades": [
				{"id": "hoe", "name": "Hoe", "kind": "tools", "base_cost": 100, "magnitude": 0.1},
				{"id": "plow", "name": "Plow", "kind": "tools", "base_cost": 400, "prerequisite_id": "hoe", "magnitude": 0.3}
			]}`,
		},
		{
			name:     "missing upgrades",
			data:     `{"version": "1.0"}`,
			wantErr:  true,
			errorMsg: "required",
		},
		{
			name:     "empty upgrade list",
			data:     `{"upgrades": []}`,
			wantErr:  true,
			errorMsg: "minItems",
		},
		{
			name:     "unknown kind",
			data:     `{"upgrades": [{"id": "x", "name": "X", "kind": "magic", "base_cost": 1}]}`,
			wantErr:  true,
			errorMsg: "/upgrades/0/kind",
		},
		{
			name:     "fractional cost",
			data:     `{"upgrades": [{"id": "x", "name": "X", "kind": "slot", "base_cost": 1.5}]}`,
			wantErr:  true,
			errorMsg: "/upgrades/0/base_cost",
		},
		{
			name:     "zero cost",
			data:     `{"upgrades": [{"id": "x", "name": "X", "kind": "slot", "base_cost": 0}]}`,
			wantErr:  true,
			errorMsg: "minimum",
		},
		{
			name:     "unknown field",
			data:     `{"upgrades": [{"id": "x", "name": "X", "kind": "slot", "base_cost": 5, "price": 5}]}`,
			wantErr:  true,
			errorMsg: "additionalProperties",
		},
		{
			name:     "bad id",
			data:     `{"upgrades": [{"id": "Big Hoe", "name": "X", "kind": "tools", "base_cost": 5}]}`,
			wantErr:  true,
			errorMsg: "pattern",
		},
		{
			name:     "not json",
			data:     `{`,
			wantErr:  true,
			errorMsg: "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpgradeCatalog([]byte(tt.data))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "schemas/missing.schema.json")
	assert.ErrorContains(t, err, "failed to load schema")
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	data := []byte(`{"upgrades": [{"id": "x", "name": "X", "kind": "slot", "base_cost": 5}]}`)

	require.NoError(t, v.ValidateBytes(data, SchemaUpgradeCatalog))
	require.NoError(t, v.ValidateBytes(data, SchemaUpgradeCatalog))
	assert.Len(t, v.schemas, 1)
}
