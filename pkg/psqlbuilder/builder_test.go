package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("products").
		Where(squirrel.Eq{"id": []string{"a", "b"}}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM products WHERE id IN ($1,$2)", query)
	assert.Equal(t, []interface{}{"a", "b"}, args)
}

func TestDeleteUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Delete("orders").Where(squirrel.Eq{"id": "o1"}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM orders WHERE id = $1", query)
	assert.Equal(t, []interface{}{"o1"}, args)
}
