/*
Package redisstore provides a store for grown trees backed by a redis DB.
Trees are kept as their JSON serialization under a key made of a prefix and
the tree key.
*/
package redisstore

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/pkg/errors"
	"gopkg.in/redis.v5"
)

// StoreError represents an error related with the store
type StoreError string

// ErrTreeNotFound is returned when loading a key with no tree stored.
const ErrTreeNotFound = StoreError("tree not found")

func (se StoreError) Error() string {
	return string(se)
}

/*
Store saves and loads trees onto a redis DB.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New builds a Store over the given redis client using the given key prefix.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc, prefix}
}

/*
ParseLocation takes a redis URL with an optional key query parameter, like
redis://localhost:6379/0?key=weather, and returns the options to connect to
the redis DB and the tree key.
*/
func ParseLocation(location string) (*redis.Options, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, "", errors.Wrapf(err, "parsing redis location %q", location)
	}
	key := u.Query().Get("key")
	u.RawQuery = ""
	opts, err := redis.ParseURL(u.String())
	if err != nil {
		return nil, "", errors.Wrapf(err, "parsing redis location %q", location)
	}
	return opts, key, nil
}

/*
Save takes a context, a key and a tree and stores the tree under the key,
replacing any tree stored there. When the key is empty a random one is
generated. It returns the key used.
*/
func (s *Store) Save(ctx context.Context, key string, t id3.Tree) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if key == "" {
		key = uuid.New().String()
	}
	data, err := bio.MarshalTree(t)
	if err != nil {
		return "", errors.Wrapf(err, "saving tree %q: encoding tree", key)
	}
	if err = s.rc.Set(s.keyFor(key), data, 0).Err(); err != nil {
		return "", errors.Wrapf(err, "saving tree %q in redis", key)
	}
	return key, nil
}

/*
Load takes a context and a key and returns the tree stored under the key,
or ErrTreeNotFound if there is none.
*/
func (s *Store) Load(ctx context.Context, key string) (id3.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.rc.Get(s.keyFor(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrTreeNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading tree %q from redis", key)
	}
	t, err := bio.UnmarshalTree(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading tree %q", key)
	}
	return t, nil
}

// Delete removes the tree stored under the given key, if any.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.rc.Del(s.keyFor(key)).Err(); err != nil {
		return errors.Wrapf(err, "deleting tree %q from redis", key)
	}
	return nil
}

// Close closes the underlying redis client.
func (s *Store) Close() error {
	return s.rc.Close()
}

func (s *Store) keyFor(key string) string {
	if s.prefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.prefix, key)
}
