package uow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct{ n int }

func TestTransaction_Get(t *testing.T) {
	calls := 0
	tx := NewTransaction(nil, map[RepositoryName]RepositoryFactory{
		"stub": func(DBTX) Repository {
			calls++
			return &stubRepo{n: calls}
		},
	})

	first, err := GetAs[*stubRepo](tx, "stub")
	require.NoError(t, err)
	second, err := GetAs[*stubRepo](tx, "stub")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	_, err = tx.Get("missing")
	require.ErrorIs(t, err, ErrRepositoryNotRegistered)
	assert.Contains(t, err.Error(), `"missing"`)

	_, err = GetAs[string](tx, "stub")
	require.ErrorIs(t, err, ErrInvalidRepositoryType)
}

func TestUnitOfWork_Register(t *testing.T) {
	u := NewUnitOfWork(nil)
	factory := func(DBTX) Repository { return &stubRepo{} }

	require.NoError(t, u.Register("stub", factory))
	require.ErrorIs(t, u.Register("stub", factory), ErrRepositoryAlreadyRegistered)

	repo, err := GetRepositoryAs[*stubRepo](u, "stub")
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
