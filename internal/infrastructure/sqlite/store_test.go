package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-ledger/internal/domain/repository"
	"github.com/jhoicas/pos-ledger/internal/infrastructure/sqlite"
)

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	defer s.Close()

	raw, err := s.Get(ctx, repository.KeySalesHistory)
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, s.Set(ctx, repository.KeySalesHistory, []byte(`[]`)))
	require.NoError(t, s.SetMany(ctx, []repository.Entry{
		{Key: repository.KeySalesHistory, Value: []byte(`[{"transactionId":"t1"}]`)},
		{Key: repository.KeyInvoices, Value: []byte(`[]`)},
	}))

	raw, err = s.Get(ctx, repository.KeySalesHistory)
	require.NoError(t, err)
	assert.Equal(t, `[{"transactionId":"t1"}]`, string(raw))

	raw, err = s.Get(ctx, repository.KeyInvoices)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
	assert.NoError(t, s.Ping(ctx))
}
