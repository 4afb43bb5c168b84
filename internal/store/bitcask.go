package store

import (
	"errors"
	"fmt"
	"log/slog"

	"go.mills.io/bitcask/v2"
)

// Bitcask is the on-disk KV implementation.
type Bitcask struct {
	db *bitcask.Bitcask
}

// OpenBitcask opens (or creates) the store at path.
func OpenBitcask(path string) (*Bitcask, error) {
	db, err := bitcask.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	slog.Info("opened local store", "path", path)
	return &Bitcask{db: db}, nil
}

func (b *Bitcask) Get(key string) ([]byte, error) {
	v, err := b.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, bitcask.ErrKeyNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return v, nil
}

func (b *Bitcask) Put(key string, value []byte) error {
	return b.db.Put([]byte(key), value)
}

func (b *Bitcask) Delete(key string) error {
	if err := b.db.Delete([]byte(key)); err != nil && !errors.Is(err, bitcask.ErrKeyNotFound) {
		return err
	}
	return nil
}

func (b *Bitcask) Close() error {
	return b.db.Close()
}
