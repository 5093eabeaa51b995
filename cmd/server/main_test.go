package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"boutique_back_end/internal/config"
	"boutique_back_end/internal/database"
	"boutique_back_end/internal/store"
)

func TestRun(t *testing.T) {
	t.Run("Run_RequiresJWTSecret", func(t *testing.T) {
		require.Error(t, run(config.Settings{StoreBackend: database.BackendMemory}))
	})

	t.Run("Run_ReleasesStorageWhenLoadFails", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "storefront.db")

		kv, err := database.OpenBolt(path)
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, store.KeyCart, []byte(`[{"name":`)))
		require.NoError(t, kv.Close())

		err = run(config.Settings{JWTSecret: "s", StoreBackend: database.BackendBolt, BoltPath: path})
		var loadErr *store.LoadError
		require.ErrorAs(t, err, &loadErr)

		// le verrou du fichier doit être libéré
		kv, err = database.OpenBolt(path)
		require.NoError(t, err)
		require.NoError(t, kv.Close())
	})
}
