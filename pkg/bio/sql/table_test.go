package sql

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	Adapter
}

func (fakeAdapter) QuoteIdentifier(name string) (string, error) {
	if strings.Contains(name, "`") {
		return "", fmt.Errorf("invalid identifier %q", name)
	}
	return "`" + name + "`", nil
}

func (fakeAdapter) Placeholder(i int) string {
	return fmt.Sprintf(":%d", i)
}

func (fakeAdapter) TextColumnType() string {
	return "VARCHAR"
}

func TestStatements(t *testing.T) {
	a := fakeAdapter{}
	s, err := selectStatement(a, "weather", nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `weather`", s)

	s, err = selectStatement(a, "weather", []string{"outlook", "play"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT `outlook`, `play` FROM `weather`", s)

	s, err = createStatement(a, "weather", []string{"outlook", "play"})
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS `weather` (`outlook` VARCHAR NOT NULL, `play` VARCHAR NOT NULL)", s)

	s, err = insertStatement(a, "weather", []string{"outlook", "play"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO `weather` (`outlook`, `play`) VALUES (:1, :2)", s)
}

func TestStatementErrors(t *testing.T) {
	a := fakeAdapter{}
	_, err := selectStatement(a, "weather", []string{"out`look"})
	assert.Error(t, err)
	_, err = createStatement(a, "weather", nil)
	assert.Error(t, err)
	_, err = insertStatement(a, "wea`ther", []string{"outlook"})
	assert.Error(t, err)
}
