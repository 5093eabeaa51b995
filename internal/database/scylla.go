package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gocql/gocql"
)

// ScyllaConfig décrit la connexion au keyspace de la vitrine
type ScyllaConfig struct {
	Hosts    []string
	Keyspace string
	Username string
	Password string
	SSL      bool
	CAPath   string
	Timeout  time.Duration
	NumConns int
}

// ScyllaStore range les collections dans la table storefront_kv
type ScyllaStore struct {
	session *gocql.Session
}

// createScyllaCluster crée la configuration de cluster pour le keyspace
func createScyllaCluster(cfg ScyllaConfig) (*gocql.ClusterConfig, error) {
	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("SCYLLA_HOSTS non configuré")
	}
	if cfg.Keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KEYSPACE non configuré")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.NumConns == 0 {
		cfg.NumConns = 2
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.Keyspace = cfg.Keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = cfg.Timeout
	cluster.NumConns = cfg.NumConns
	cluster.ReconnectInterval = 1 * time.Second
	if cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.Username,
			Password: cfg.Password,
		}
	}
	if cfg.SSL {
		cluster.SslOpts = &gocql.SslOptions{
			CaPath:                 cfg.CAPath,
			EnableHostVerification: true,
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	return cluster, nil
}

// OpenScylla ouvre la session et crée la table si besoin
func OpenScylla(ctx context.Context, cfg ScyllaConfig) (*ScyllaStore, error) {
	cluster, err := createScyllaCluster(cfg)
	if err != nil {
		return nil, err
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erreur création session pour %s: %w", cfg.Keyspace, err)
	}

	err = session.Query(`CREATE TABLE IF NOT EXISTS storefront_kv (key text PRIMARY KEY, value blob)`).
		WithContext(ctx).Exec()
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("création de storefront_kv: %w", err)
	}

	log.Printf("✅ Session ScyllaDB ouverte pour keyspace '%s'", cfg.Keyspace)
	return &ScyllaStore{session: session}, nil
}

func (s *ScyllaStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.session.Query(`SELECT value FROM storefront_kv WHERE key = ?`, key).
		WithContext(ctx).Scan(&value)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	return value, err
}

func (s *ScyllaStore) Set(ctx context.Context, key string, value []byte) error {
	return s.session.Query(`INSERT INTO storefront_kv (key, value) VALUES (?, ?)`, key, value).
		WithContext(ctx).Exec()
}

func (s *ScyllaStore) Delete(ctx context.Context, key string) error {
	return s.session.Query(`DELETE FROM storefront_kv WHERE key = ?`, key).
		WithContext(ctx).Exec()
}

func (s *ScyllaStore) Close() error {
	s.session.Close()
	log.Println("🔌 Session ScyllaDB fermée")
	return nil
}
