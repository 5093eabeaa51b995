package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"boutique_back_end/internal/config"
)

// ErrKeyNotFound est renvoyé par Get quand la clé n'a jamais été écrite
var ErrKeyNotFound = errors.New("clé introuvable")

// KeyValue est le stockage persistant de la vitrine : des valeurs opaques
// rangées sous quelques clés fixes.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	BackendBolt   = "bolt"
	BackendRedis  = "redis"
	BackendScylla = "scylla"
	BackendMemory = "memory"
)

// Open ouvre le backend choisi par STORE_BACKEND
func Open(cfg config.Settings) (KeyValue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.StoreBackend {
	case BackendBolt, "":
		store, err := OpenBolt(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Stockage bbolt ouvert :", cfg.BoltPath)
		return store, nil

	case BackendRedis:
		client, err := ConnectRedis(ctx, cfg.RedisHost, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, cfg.RedisPrefix), nil

	case BackendScylla:
		store, err := OpenScylla(ctx, ScyllaConfig{
			Hosts:    cfg.ScyllaHosts,
			Keyspace: cfg.ScyllaKeyspace,
			Username: cfg.ScyllaUser,
			Password: cfg.ScyllaPassword,
			SSL:      cfg.ScyllaSSL,
			CAPath:   cfg.ScyllaCAPath,
		})
		if err != nil {
			return nil, err
		}
		return store, nil

	case BackendMemory:
		log.Println("⚠️ Stockage en mémoire : rien ne survivra au redémarrage")
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("STORE_BACKEND inconnu: %q", cfg.StoreBackend)
}
