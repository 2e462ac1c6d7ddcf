package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialDraft_Validate(t *testing.T) {
	tests := []struct {
		name    string
		draft   MaterialDraft
		wantErr error
		wantRef MaterialRef
	}{
		{name: "catalog", draft: MaterialDraft{CatalogID: 5, Quantity: 2}, wantRef: CatalogRef(5)},
		{name: "cable", draft: MaterialDraft{CableAccessoryID: 8, Quantity: 1}, wantRef: CableRef(8)},
		{name: "both sources", draft: MaterialDraft{CatalogID: 5, CableAccessoryID: 8, Quantity: 1}, wantErr: ErrMaterialSourceConflict},
		{name: "no source", draft: MaterialDraft{Quantity: 1}, wantErr: ErrMaterialSourceMissing},
		{name: "negative ids count as absent", draft: MaterialDraft{CatalogID: -1, Quantity: 1}, wantErr: ErrMaterialSourceMissing},
		{name: "zero quantity", draft: MaterialDraft{CatalogID: 5}, wantErr: ErrMaterialQuantity},
		{name: "quantity checked first", draft: MaterialDraft{Quantity: -2}, wantErr: ErrMaterialQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := tt.draft.Validate(10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MaterialInput{ProcessID: 10, Ref: tt.wantRef, Quantity: tt.draft.Quantity}, in)
		})
	}
}

func TestMaterialDraft_Select(t *testing.T) {
	d := NewMaterialDraft()
	assert.Equal(t, 1, d.Quantity)

	d.Select(CatalogSelection{Product: CatalogProduct{ID: 5}})
	assert.Equal(t, int64(5), d.CatalogID)

	d.Select(CableSelection{Item: CableOrAccessory{ID: 8, Name: "UTP"}})
	assert.Zero(t, d.CatalogID)
	assert.Equal(t, int64(8), d.CableAccessoryID)
}

func TestMaterialPatch_Apply(t *testing.T) {
	current := ProcessMaterial{ID: 1, Quantity: 2, Source: CatalogMaterial{CatalogID: 5}}
	qty := 4
	assert.Equal(t, MaterialDraft{CatalogID: 5, Quantity: 4}, MaterialPatch{Quantity: &qty}.Apply(current))

	// Switching source needs the old key cleared explicitly.
	cable, zero := int64(8), int64(0)
	d := MaterialPatch{CableAccessoryID: &cable}.Apply(current)
	_, err := d.Ref()
	assert.ErrorIs(t, err, ErrMaterialSourceConflict)

	d = MaterialPatch{CatalogID: &zero, CableAccessoryID: &cable}.Apply(current)
	ref, err := d.Ref()
	require.NoError(t, err)
	assert.Equal(t, CableRef(8), ref)
}

func TestProcessMaterial(t *testing.T) {
	m := ProcessMaterial{Quantity: 3, Source: CableMaterial{CableAccessoryID: 8, Name: "UTP", Price: "2500.50"}}
	assert.Equal(t, "7501.50", m.LineTotal().StringFixed(2))
	assert.Equal(t, "UTP", m.Label())
	assert.Equal(t, CableRef(8), m.Ref())

	bad := ProcessMaterial{Quantity: 3, Source: CatalogMaterial{CatalogID: 1, Reference: "R1", Price: "n/a"}}
	assert.True(t, bad.LineTotal().IsZero())
	assert.Equal(t, "R1", bad.Label())

	empty := ProcessMaterial{Quantity: 1}
	assert.True(t, empty.Ref().IsZero())
	assert.Equal(t, "Material", empty.Label())
	assert.True(t, empty.LineTotal().IsZero())
}

func TestCatalogMatches(t *testing.T) {
	p := CatalogProduct{Reference: "DS-2CD1043", Description: "Cámara bala 4MP"}
	assert.True(t, p.Matches(NormalizeSearchTerm("  CÁMARA ")))
	assert.True(t, p.Matches("ds-2cd"))
	assert.False(t, p.Matches("nvr"))

	c := CableOrAccessory{Name: "Cable UTP", MeasurementType: "metro"}
	assert.True(t, c.Matches("metro"))
	assert.True(t, c.Matches(""))
}

func TestMaterialSourceFor(t *testing.T) {
	assert.Equal(t, CableMaterial{CableAccessoryID: 4}, MaterialSourceFor(CableRef(4)))
	assert.Equal(t, CatalogMaterial{CatalogID: 5}, MaterialSourceFor(CatalogRef(5)))
	assert.Nil(t, MaterialSourceFor(MaterialRef{}))
	assert.Equal(t, CableRef(4), ProcessMaterial{Source: MaterialSourceFor(CableRef(4))}.Ref())
}
