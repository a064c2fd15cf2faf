package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategoriesQuery(t *testing.T) {
	query, args, err := listCategoriesQuery().ToSql()
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT id, category_name, slug, image, created_at, updated_at FROM categories ORDER BY updated_at DESC, id ASC", query)
}

func TestGetCategoriesByIDsQuery(t *testing.T) {
	query, args, err := getCategoriesByIDsQuery([]int64{4, 9}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id IN ($1,$2)")
	assert.Equal(t, []interface{}{int64(4), int64(9)}, args)
}
