package main

import (
	"context"
	"strings"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pbanos/id3tree/pkg/bio/mongo"
	biosql "github.com/pbanos/id3tree/pkg/bio/sql"
	"github.com/pbanos/id3tree/pkg/bio/sql/pgadapter"
	"github.com/pbanos/id3tree/pkg/bio/sql/sqlite3adapter"
	"github.com/pbanos/id3tree/pkg/bio/redisstore"
	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"
)

type tableBackend int

const (
	csvBackend tableBackend = iota
	sqlite3Backend
	postgreSQLBackend
	mongoBackend
)

func (tb tableBackend) String() string {
	switch tb {
	case sqlite3Backend:
		return "SQLite3"
	case postgreSQLBackend:
		return "PostgreSQL"
	case mongoBackend:
		return "MongoDB"
	}
	return "CSV"
}

// tableBackendFor returns the backend a table location refers to.
func tableBackendFor(location string) tableBackend {
	switch {
	case strings.HasPrefix(location, "postgresql://"), strings.HasPrefix(location, "postgres://"):
		return postgreSQLBackend
	case strings.HasPrefix(location, "mongodb://"):
		return mongoBackend
	case strings.HasSuffix(location, ".db"):
		return sqlite3Backend
	}
	return csvBackend
}

// isRedisLocation tells whether a tree location is a redis URL.
func isRedisLocation(location string) bool {
	return strings.HasPrefix(location, "redis://") || strings.HasPrefix(location, "rediss://")
}

/*
readTable reads the table on the given location restricted to the given
columns, all of them when nil. The location is a CSV file path (STDIN when
empty), a SQLite3 .db file path, a PostgreSQL URL or a MongoDB URL.
*/
func (rcc *rootCmdConfig) readTable(ctx context.Context, location string, columns []string) (*bio.Table, error) {
	backend := tableBackendFor(location)
	log := rcc.log.WithField("backend", backend.String())
	switch backend {
	case sqlite3Backend, postgreSQLBackend:
		adapter, err := sqlAdapter(backend, location)
		if err != nil {
			return nil, err
		}
		defer adapter.Close()
		log.WithField("table", rcc.env.SQLTable).Debug("reading table")
		return biosql.ReadTable(ctx, adapter, rcc.env.SQLTable, columns)
	case mongoBackend:
		session, err := mgo.Dial(location)
		if err != nil {
			return nil, errors.Wrap(err, "connecting to MongoDB")
		}
		defer session.Close()
		log.WithField("collection", rcc.env.MongoCollection).Debug("reading table")
		return mongo.ReadTable(ctx, session, rcc.env.MongoCollection, columns)
	}
	log.WithField("path", location).Debug("reading table")
	t, err := bio.ReadCSVTableFromFilePath(location)
	if err != nil || columns == nil {
		return t, err
	}
	return t.Select(columns)
}

/*
writeTable writes the table onto the given location, which can be any of
those readTable takes with STDOUT in place of STDIN.
*/
func (rcc *rootCmdConfig) writeTable(ctx context.Context, location string, t *bio.Table) error {
	backend := tableBackendFor(location)
	log := rcc.log.WithFields(logrus.Fields{"backend": backend.String(), "rows": len(t.Rows)})
	switch backend {
	case sqlite3Backend, postgreSQLBackend:
		adapter, err := sqlAdapter(backend, location)
		if err != nil {
			return err
		}
		defer adapter.Close()
		log.WithField("table", rcc.env.SQLTable).Debug("writing table")
		return biosql.WriteTable(ctx, adapter, rcc.env.SQLTable, t)
	case mongoBackend:
		session, err := mgo.Dial(location)
		if err != nil {
			return errors.Wrap(err, "connecting to MongoDB")
		}
		defer session.Close()
		log.WithField("collection", rcc.env.MongoCollection).Debug("writing table")
		return mongo.WriteTable(ctx, session, rcc.env.MongoCollection, t)
	}
	log.WithField("path", location).Debug("writing table")
	return bio.WriteCSVTableToFilePath(location, t)
}

func sqlAdapter(backend tableBackend, location string) (biosql.Adapter, error) {
	if backend == postgreSQLBackend {
		return pgadapter.New(location)
	}
	return sqlite3adapter.New(location)
}

/*
loadTree reads a tree from the given location: a redis URL with a key
query parameter or the path to a JSON file.
*/
func (rcc *rootCmdConfig) loadTree(ctx context.Context, location string) (id3.Tree, error) {
	if !isRedisLocation(location) {
		rcc.log.WithField("path", location).Debug("loading tree")
		return bio.ReadJSONTreeFromFile(location)
	}
	store, key, err := rcc.redisStore(location)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	if key == "" {
		return nil, errors.Errorf("redis location %s has no key", location)
	}
	rcc.log.WithField("key", key).Debug("loading tree from redis")
	return store.Load(ctx, key)
}

/*
saveTree writes the tree onto the given location: a redis URL, where it is
stored under the key query parameter or a random key, the path to a JSON
file or STDOUT when empty.
*/
func (rcc *rootCmdConfig) saveTree(ctx context.Context, location string, t id3.Tree) error {
	if !isRedisLocation(location) {
		rcc.log.WithField("path", location).Debug("saving tree")
		return bio.WriteJSONTreeToFile(location, t)
	}
	store, key, err := rcc.redisStore(location)
	if err != nil {
		return err
	}
	defer store.Close()
	key, err = store.Save(ctx, key, t)
	if err != nil {
		return err
	}
	rcc.log.WithField("key", key).Info("tree saved to redis")
	return nil
}

func (rcc *rootCmdConfig) redisStore(location string) (*redisstore.Store, string, error) {
	opts, key, err := redisstore.ParseLocation(location)
	if err != nil {
		return nil, "", err
	}
	return redisstore.New(redis.NewClient(opts), rcc.env.RedisPrefix), key, nil
}
