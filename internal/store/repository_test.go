package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"boutique_back_end/internal/database"
	"boutique_back_end/internal/models"
	"boutique_back_end/internal/store"
)

func TestKVRepository(t *testing.T) {
	ctx := context.Background()

	newBoltRepo := func(t *testing.T) (*store.KVRepository, database.KeyValue) {
		kv, err := database.OpenBolt(filepath.Join(t.TempDir(), "storefront.db"))
		require.NoError(t, err)
		t.Cleanup(func() { kv.Close() })
		return store.NewRepository(kv), kv
	}

	t.Run("Load_MissingKeysGiveEmptyCollections", func(t *testing.T) {
		repo, _ := newBoltRepo(t)

		cart, err := repo.LoadCart(ctx)
		require.NoError(t, err)
		require.NotNil(t, cart)
		require.Empty(t, cart)

		products, err := repo.LoadCustomProducts(ctx)
		require.NoError(t, err)
		require.Empty(t, products)

		users, err := repo.LoadUsers(ctx)
		require.NoError(t, err)
		require.NotNil(t, users)

		session, err := repo.LoadSession(ctx)
		require.NoError(t, err)
		require.Empty(t, session)
	})

	t.Run("Save_RoundTripsEachCollection", func(t *testing.T) {
		repo, _ := newBoltRepo(t)

		cart := models.Cart{{Name: "Shirt", Price: 20, ImageURL: "images/4.avif", Rating: 4}}
		require.NoError(t, repo.SaveCart(ctx, cart))
		gotCart, err := repo.LoadCart(ctx)
		require.NoError(t, err)
		require.Equal(t, cart, gotCart)

		products := []models.Product{{Name: "Hat", Price: 9, ImageURL: "h.png", Rating: 3}}
		require.NoError(t, repo.SaveCustomProducts(ctx, products))
		gotProducts, err := repo.LoadCustomProducts(ctx)
		require.NoError(t, err)
		require.Equal(t, products, gotProducts)

		users := models.Credentials{"bob": "x"}
		require.NoError(t, repo.SaveUsers(ctx, users))
		gotUsers, err := repo.LoadUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, users, gotUsers)
	})

	t.Run("SaveCart_UsesStorefrontJSONShape", func(t *testing.T) {
		repo, kv := newBoltRepo(t)

		require.NoError(t, repo.SaveCart(ctx, models.Cart{{Name: "Shirt", Price: 20, ImageURL: "a.png", Rating: 4}}))
		raw, err := kv.Get(ctx, store.KeyCart)
		require.NoError(t, err)
		require.JSONEq(t, `[{"name":"Shirt","price":20,"imageUrl":"a.png","rating":4}]`, string(raw))

		require.NoError(t, repo.SaveCart(ctx, nil))
		raw, err = kv.Get(ctx, store.KeyCart)
		require.NoError(t, err)
		require.Equal(t, "[]", string(raw))
	})

	t.Run("SaveSession_StoresRawStringAndDeletesOnEmpty", func(t *testing.T) {
		repo, kv := newBoltRepo(t)

		require.NoError(t, repo.SaveSession(ctx, "alice"))
		raw, err := kv.Get(ctx, store.KeyLoggedInUser)
		require.NoError(t, err)
		require.Equal(t, "alice", string(raw))

		require.NoError(t, repo.SaveSession(ctx, ""))
		_, err = kv.Get(ctx, store.KeyLoggedInUser)
		require.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("Load_NullValueIsEmpty", func(t *testing.T) {
		repo, kv := newBoltRepo(t)
		require.NoError(t, kv.Set(ctx, store.KeyUsers, []byte("null")))

		users, err := repo.LoadUsers(ctx)
		require.NoError(t, err)
		require.NotNil(t, users)
		require.Empty(t, users)
	})

	t.Run("Load_MalformedValueIsLoadError", func(t *testing.T) {
		repo, kv := newBoltRepo(t)
		require.NoError(t, kv.Set(ctx, store.KeyCustomProducts, []byte("{pas du json")))

		_, err := repo.LoadCustomProducts(ctx)
		var loadErr *store.LoadError
		require.ErrorAs(t, err, &loadErr)
		require.Equal(t, store.KeyCustomProducts, loadErr.Key)
	})
}
