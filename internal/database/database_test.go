package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boutique_back_end/internal/config"
)

func exerciseKeyValue(t *testing.T, kv KeyValue) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "cart")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "cart", []byte(`[]`)))
	v, err := kv.Get(ctx, "cart")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)

	require.NoError(t, kv.Set(ctx, "cart", []byte(`[1]`)))
	v, err = kv.Get(ctx, "cart")
	require.NoError(t, err)
	require.Equal(t, []byte(`[1]`), v)

	require.NoError(t, kv.Delete(ctx, "cart"))
	_, err = kv.Get(ctx, "cart")
	require.ErrorIs(t, err, ErrKeyNotFound)

	// supprimer une clé absente n'est pas une erreur
	require.NoError(t, kv.Delete(ctx, "cart"))
}

func TestMemoryStore(t *testing.T) {
	t.Run("MemoryStore_GetSetDelete", func(t *testing.T) {
		exerciseKeyValue(t, NewMemoryStore())
	})

	t.Run("MemoryStore_CopiesValues", func(t *testing.T) {
		ctx := context.Background()
		m := NewMemoryStore()
		in := []byte("alice")
		require.NoError(t, m.Set(ctx, "loggedInUser", in))
		in[0] = 'X'

		out, err := m.Get(ctx, "loggedInUser")
		require.NoError(t, err)
		require.Equal(t, "alice", string(out))
	})
}

func TestBoltStore(t *testing.T) {
	t.Run("BoltStore_GetSetDelete", func(t *testing.T) {
		b, err := OpenBolt(filepath.Join(t.TempDir(), "kv.db"))
		require.NoError(t, err)
		defer b.Close()
		exerciseKeyValue(t, b)
	})

	t.Run("BoltStore_SurvivesReopen", func(t *testing.T) {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "kv.db")

		b, err := OpenBolt(path)
		require.NoError(t, err)
		require.NoError(t, b.Set(ctx, "users", []byte(`{"bob":"x"}`)))
		require.NoError(t, b.Close())

		b, err = OpenBolt(path)
		require.NoError(t, err)
		defer b.Close()
		v, err := b.Get(ctx, "users")
		require.NoError(t, err)
		require.Equal(t, `{"bob":"x"}`, string(v))
	})
}

func TestOpen(t *testing.T) {
	t.Run("Open_MemoryBackend", func(t *testing.T) {
		kv, err := Open(config.Settings{StoreBackend: BackendMemory})
		require.NoError(t, err)
		require.IsType(t, &MemoryStore{}, kv)
	})

	t.Run("Open_DefaultsToBolt", func(t *testing.T) {
		kv, err := Open(config.Settings{BoltPath: filepath.Join(t.TempDir(), "s.db")})
		require.NoError(t, err)
		defer kv.Close()
		require.IsType(t, &BoltStore{}, kv)
	})

	t.Run("Open_UnknownBackend", func(t *testing.T) {
		_, err := Open(config.Settings{StoreBackend: "mongo"})
		require.Error(t, err)
	})
}

func TestScyllaCluster(t *testing.T) {
	t.Run("CreateScyllaCluster_RequiresHostsAndKeyspace", func(t *testing.T) {
		_, err := createScyllaCluster(ScyllaConfig{Keyspace: "shop"})
		require.Error(t, err)
		_, err = createScyllaCluster(ScyllaConfig{Hosts: []string{"127.0.0.1"}})
		require.Error(t, err)
	})

	t.Run("CreateScyllaCluster_AppliesDefaults", func(t *testing.T) {
		cluster, err := createScyllaCluster(ScyllaConfig{
			Hosts:    []string{"127.0.0.1:9042"},
			Keyspace: "shop",
			Username: "scylla",
			Password: "pw",
			SSL:      true,
			CAPath:   "/etc/ca.pem",
		})
		require.NoError(t, err)
		require.Equal(t, "shop", cluster.Keyspace)
		require.Equal(t, 5*time.Second, cluster.Timeout)
		require.Equal(t, 2, cluster.NumConns)
		require.NotNil(t, cluster.Authenticator)
		require.Equal(t, "/etc/ca.pem", cluster.SslOpts.CaPath)
	})
}
