package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/id3tree/pkg/bio"
	"github.com/pbanos/id3tree/pkg/id3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *rootCmdConfig {
	log := logrus.New()
	log.Out = ioutil.Discard
	return &rootCmdConfig{
		env: &envConfig{
			LogLevel:        "info",
			LogFormat:       "text",
			RedisPrefix:     "id3tree",
			MongoCollection: "samples",
			SQLTable:        "samples",
			Concurrency:     1,
		},
		log: log,
	}
}

func TestTableBackendFor(t *testing.T) {
	cases := map[string]tableBackend{
		"":                                       csvBackend,
		"data/weather.csv":                       csvBackend,
		"data/weather.db":                        sqlite3Backend,
		"postgresql://user@localhost/weather":    postgreSQLBackend,
		"postgres://user@localhost/weather":      postgreSQLBackend,
		"mongodb://localhost:27017/weather":      mongoBackend,
		"mongodb://localhost:27017/weather.db":   mongoBackend,
		"postgresql://user@localhost/weather.db": postgreSQLBackend,
	}
	for location, expected := range cases {
		assert.Equal(t, expected, tableBackendFor(location), location)
	}
}

func TestIsRedisLocation(t *testing.T) {
	assert.True(t, isRedisLocation("redis://localhost:6379/0?key=weather"))
	assert.True(t, isRedisLocation("rediss://localhost:6379/0"))
	assert.False(t, isRedisLocation("tree.json"))
	assert.False(t, isRedisLocation(""))
}

func TestSetupLogger(t *testing.T) {
	config := testConfig()
	require.NoError(t, config.setupLogger())
	assert.Equal(t, logrus.InfoLevel, config.log.Level)
	assert.IsType(t, &logrus.TextFormatter{}, config.log.Formatter)

	config.env.LogFormat = "json"
	config.env.LogLevel = "warn"
	require.NoError(t, config.setupLogger())
	assert.Equal(t, logrus.WarnLevel, config.log.Level)
	assert.IsType(t, &logrus.JSONFormatter{}, config.log.Formatter)

	config.verbose = true
	require.NoError(t, config.setupLogger())
	assert.Equal(t, logrus.DebugLevel, config.log.Level)

	config.env.LogFormat = "xml"
	assert.Error(t, config.setupLogger())

	config.env.LogFormat = "text"
	config.env.LogLevel = "loud"
	config.verbose = false
	assert.Error(t, config.setupLogger())
}

func TestValidate(t *testing.T) {
	root := testConfig()
	assert.Error(t, (&growCmdConfig{rootCmdConfig: root}).Validate())
	assert.Error(t, (&growCmdConfig{rootCmdConfig: root, metadataInput: "m.yml", minGain: -0.1}).Validate())
	assert.NoError(t, (&growCmdConfig{rootCmdConfig: root, metadataInput: "m.yml"}).Validate())
	assert.Error(t, (&predictCmdConfig{rootCmdConfig: root}).Validate())
	assert.NoError(t, (&predictCmdConfig{rootCmdConfig: root, treeInput: "tree.json"}).Validate())
	assert.Error(t, (&testCmdConfig{rootCmdConfig: root, metadataInput: "m.yml"}).Validate())
	assert.Error(t, (&testCmdConfig{rootCmdConfig: root, treeInput: "tree.json"}).Validate())
	assert.NoError(t, (&testCmdConfig{rootCmdConfig: root, treeInput: "tree.json", metadataInput: "m.yml"}).Validate())
	assert.Error(t, (&setCmdConfig{rootCmdConfig: root, setInput: "a.csv", setOutput: "a.csv"}).Validate())
	assert.NoError(t, (&setCmdConfig{rootCmdConfig: root, setInput: "a.csv", setOutput: "a.db"}).Validate())
}

func TestCLIParserCommands(t *testing.T) {
	cmd := cliParser(testConfig().env)
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"version", "grow", "predict", "test", "set"}, names)
	grow, _, err := cmd.Find([]string{"grow"})
	require.NoError(t, err)
	assert.NotNil(t, grow.PersistentFlags().Lookup("min-gain"))
	assert.NotNil(t, grow.PersistentFlags().Lookup("concurrency"))
}

func TestCSVTableAndJSONTreeLocations(t *testing.T) {
	dir, err := ioutil.TempDir("", "id3tree")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	config := testConfig()
	ctx := context.Background()

	source := &bio.Table{
		Columns: []string{"outlook", "windy", "play"},
		Rows: [][]string{
			{"sunny", "false", "no"},
			{"overcast", "true", "yes"},
			{"rain", "false", "yes"},
			{"rain", "true", "no"},
		},
	}
	tablePath := filepath.Join(dir, "weather.csv")
	require.NoError(t, config.writeTable(ctx, tablePath, source))

	table, err := config.readTable(ctx, tablePath, nil)
	require.NoError(t, err)
	assert.Equal(t, source, table)

	table, err = config.readTable(ctx, tablePath, []string{"windy", "play"})
	require.NoError(t, err)
	assert.Equal(t, []string{"windy", "play"}, table.Columns)
	assert.Equal(t, []string{"true", "no"}, table.Rows[3])

	input, err := source.Project(&bio.Metadata{Label: "play"})
	require.NoError(t, err)
	tree, err := id3.Grow(input.Dataset, input.Names)
	require.NoError(t, err)

	treePath := filepath.Join(dir, "tree.json")
	require.NoError(t, config.saveTree(ctx, treePath, tree))
	loaded, err := config.loadTree(ctx, treePath)
	require.NoError(t, err)
	assert.Equal(t, tree.String(), loaded.String())
}

func TestLoadTreeFromRedisRequiresKey(t *testing.T) {
	_, err := testConfig().loadTree(context.Background(), "redis://localhost:6379/0")
	assert.Error(t, err)
}

func TestStdoutValueRequesterIsValueRequester(t *testing.T) {
	var vr bio.ValueRequester = stdoutValueRequester{}
	assert.NotNil(t, vr)
	var buf bytes.Buffer
	tree := &id3.Leaf{Label: "yes"}
	label, err := bio.PredictFromReader(tree, &buf, vr)
	require.NoError(t, err)
	assert.Equal(t, "yes", label)
}
