package services

import (
	"testing"

	"preorder/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService(t *testing.T) {
	svc := newTestCatalog()

	assert.Len(t, svc.List(""), 3)
	assert.Len(t, svc.List("ALL"), 3)
	drinks := svc.List("drinks")
	require.Len(t, drinks, 1)
	assert.Equal(t, "m5", drinks[0].ID)

	assert.Equal(t, []string{"Rice", "Noodles", "Drinks"}, svc.Categories())

	_, err := svc.Get("nope")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
