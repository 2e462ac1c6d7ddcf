package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_electro/internal/domain/entities"
	"portal_electro/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	pickerCatalog = []entities.CatalogProduct{
		{ID: 1, Reference: "DS-2CD1043", Description: "Cámara bala 4MP", Price: "250000"},
		{ID: 2, Reference: "DS-7104", Description: "NVR 4 canales", Price: "480000"},
	}
	pickerCables = []entities.CableOrAccessory{
		{ID: 7, Name: "Cable UTP cat6", Description: "Exterior", MeasurementType: "metro", Price: "2500"},
		{ID: 8, Name: "Conector RJ45", Description: "Blindado", MeasurementType: "unidad", Price: "900"},
	}
)

func TestMaterialPicker_Search(t *testing.T) {
	ctx := withUser(1)
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	p := NewMaterialPicker(m.catalog, 0, zap.NewNop())

	// Loaded once, then served from memory.
	m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(pickerCatalog, nil).Times(1)
	m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(pickerCables, nil).Times(1)

	res, err := p.Search(ctx, "  CÁMARA ")
	require.NoError(t, err)
	assert.Len(t, res.Catalog, 1)
	assert.Empty(t, res.Cables)

	res, err = p.Search(ctx, "metro")
	require.NoError(t, err)
	assert.Empty(t, res.Catalog)
	require.Len(t, res.Cables, 1)
	assert.Equal(t, int64(7), res.Cables[0].ID)

	res, err = p.Search(ctx, "ds-7104")
	require.NoError(t, err)
	assert.Len(t, res.Catalog, 1)

	res, err = p.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, res.Catalog, 2)
	assert.Len(t, res.Cables, 2)
}

func TestMaterialPicker_Find(t *testing.T) {
	ctx := withUser(1)
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	p := NewMaterialPicker(m.catalog, 0, zap.NewNop())

	m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(pickerCatalog, nil)
	m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(pickerCables, nil)

	sel, err := p.Find(ctx, entities.CableRef(8))
	require.NoError(t, err)
	assert.Equal(t, "Conector RJ45", sel.Label())

	draft := entities.MaterialDraft{CatalogID: 2, Quantity: 1}
	draft.Select(sel)
	assert.Zero(t, draft.CatalogID)
	assert.Equal(t, int64(8), draft.CableAccessoryID)

	_, err = p.Find(ctx, entities.CatalogRef(99))
	assert.ErrorIs(t, err, ErrMaterialNotFound)

	_, err = p.Find(ctx, entities.MaterialRef{})
	assert.ErrorIs(t, err, entities.ErrMaterialSourceMissing)
}

func TestMaterialPicker_LoadFailureIsRetried(t *testing.T) {
	ctx := withUser(1)
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	p := NewMaterialPicker(m.catalog, time.Minute, zap.NewNop())

	gomock.InOrder(
		m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(nil, errors.New("503")),
		m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(pickerCatalog, nil),
	)
	m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(pickerCables, nil).MinTimes(1).MaxTimes(2)

	_, err := p.Search(ctx, "nvr")
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "Could not load the materials.", te.UserMessage())

	res, err := p.Search(ctx, "nvr")
	require.NoError(t, err)
	assert.Len(t, res.Catalog, 1)
}

func TestMaterialPicker_ExpiresAfterTTL(t *testing.T) {
	ctx := withUser(1)
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	p := NewMaterialPicker(m.catalog, time.Minute, zap.NewNop())
	now := fixedNow
	p.now = func() time.Time { return now }

	m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(pickerCatalog, nil).Times(2)
	m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(pickerCables, nil).Times(2)

	_, err := p.Search(ctx, "x")
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	_, err = p.Search(ctx, "x")
	require.NoError(t, err)
	now = now.Add(time.Minute)
	_, err = p.Search(ctx, "x")
	require.NoError(t, err)
}

func TestMaterialPicker_OnlyServesAcceptedTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	p := NewMaterialPicker(m.catalog, time.Minute, zap.NewNop())

	m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(pickerCatalog, nil)
	m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(pickerCables, nil)
	_, err := p.Search(withUser(1), "4mp")
	require.NoError(t, err)

	t.Run("no credentials", func(t *testing.T) {
		_, err := p.Search(context.Background(), "4mp")
		assert.ErrorIs(t, err, session.ErrMissingToken)
		_, err = p.Find(context.Background(), entities.CatalogRef(1))
		assert.ErrorIs(t, err, session.ErrMissingToken)
	})

	t.Run("rejected token gets nothing", func(t *testing.T) {
		forged := session.WithCredentials(context.Background(), session.Credentials{Token: "forged"})
		m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(nil, errors.New("401"))
		m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(nil, errors.New("401")).MaxTimes(1)

		res, err := p.Search(forged, "4mp")
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Empty(t, res.Catalog)
	})

	t.Run("accepted token is served from memory", func(t *testing.T) {
		other := session.WithCredentials(context.Background(), session.Credentials{Token: "other"})
		m.catalog.EXPECT().ListCatalog(gomock.Any()).Return(pickerCatalog, nil).Times(1)
		m.catalog.EXPECT().ListCablesAndAccessories(gomock.Any()).Return(pickerCables, nil).Times(1)

		for i := 0; i < 3; i++ {
			res, err := p.Search(other, "4mp")
			require.NoError(t, err)
			assert.Len(t, res.Catalog, 1)
		}
		res, err := p.Search(withUser(1), "nvr")
		require.NoError(t, err)
		assert.Len(t, res.Catalog, 1)
	})
}
