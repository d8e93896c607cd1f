package modality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lymphatic/modality"
)

func TestSetRejectsOutOfRangeSpSn(t *testing.T) {
	r := modality.NewRegistry()
	assert.ErrorIs(t, r.Set("CT", modality.Clinical, 0.4, 0.9), modality.ErrInvalidSpSn)
	assert.ErrorIs(t, r.Set("CT", modality.Clinical, 0.9, 1.4), modality.ErrInvalidSpSn)
}

func TestSetRejectsEmptyName(t *testing.T) {
	r := modality.NewRegistry()
	assert.ErrorIs(t, r.Set("", modality.Clinical, 0.8, 0.8), modality.ErrEmptyName)
}

func TestNamesAreSorted(t *testing.T) {
	r := modality.NewRegistry()
	require.NoError(t, r.Set("path", modality.Pathological, 0.81, 0.87))
	require.NoError(t, r.Set("CT", modality.Clinical, 0.76, 0.81))
	require.NoError(t, r.Set("MRI", modality.Clinical, 0.7, 0.9))

	assert.Equal(t, []string{"CT", "MRI", "path"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestClinicalConfusionMatrixTrinary(t *testing.T) {
	r := modality.NewRegistry()
	require.NoError(t, r.Set("CT", modality.Clinical, 0.8, 0.9))

	cm, err := r.ConfusionMatrix("CT", 3)
	require.NoError(t, err)

	// Clinical: healthy and micro rows both read as "healthy", only the
	// macroscopic row uses sensitivity.
	assert.InDelta(t, 0.8, cm.MustAt(0, 0), 1e-9)
	assert.InDelta(t, 0.2, cm.MustAt(0, 1), 1e-9)
	assert.InDelta(t, 0.8, cm.MustAt(1, 0), 1e-9)
	assert.InDelta(t, 0.2, cm.MustAt(1, 1), 1e-9)
	assert.InDelta(t, 0.1, cm.MustAt(2, 0), 1e-9)
	assert.InDelta(t, 0.9, cm.MustAt(2, 1), 1e-9)
}

func TestPathologicalConfusionMatrixTrinary(t *testing.T) {
	r := modality.NewRegistry()
	require.NoError(t, r.Set("path", modality.Pathological, 0.81, 0.87))

	cm, err := r.ConfusionMatrix("path", 3)
	require.NoError(t, err)

	// Pathological: only the healthy row uses specificity, both micro
	// and macro rows use sensitivity.
	assert.InDelta(t, 0.81, cm.MustAt(0, 0), 1e-9)
	assert.InDelta(t, 0.19, cm.MustAt(0, 1), 1e-9)
	assert.InDelta(t, 0.13, cm.MustAt(1, 0), 1e-9)
	assert.InDelta(t, 0.87, cm.MustAt(1, 1), 1e-9)
	assert.InDelta(t, 0.13, cm.MustAt(2, 0), 1e-9)
	assert.InDelta(t, 0.87, cm.MustAt(2, 1), 1e-9)
}

func TestConfusionMatrixBinaryCollapsesBothKinds(t *testing.T) {
	r := modality.NewRegistry()
	require.NoError(t, r.Set("CT", modality.Clinical, 0.8, 0.9))
	require.NoError(t, r.Set("path", modality.Pathological, 0.8, 0.9))

	clinical, err := r.ConfusionMatrix("CT", 2)
	require.NoError(t, err)
	pathological, err := r.ConfusionMatrix("path", 2)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, clinical.MustAt(0, 0), 1e-9)
	assert.InDelta(t, 0.1, clinical.MustAt(1, 0), 1e-9)
	assert.InDelta(t, 0.8, pathological.MustAt(0, 0), 1e-9)
	assert.InDelta(t, 0.1, pathological.MustAt(1, 0), 1e-9)
}

func TestConfusionMatrixUnknownModality(t *testing.T) {
	r := modality.NewRegistry()
	_, err := r.ConfusionMatrix("missing", 2)
	assert.ErrorIs(t, err, modality.ErrUnknownModality)
}
