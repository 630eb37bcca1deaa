package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesLeveledLines(t *testing.T) {
	log, err := CreateLogger()
	require.NoError(t, err)
	defer log.Close()

	log.Infof("ingested %d teams", 30)
	log.Errorf("request failed on %s", "scoreboard")

	content, err := os.ReadFile(log.filePath)
	require.NoError(t, err)

	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "ingested 30 teams")
	assert.Contains(t, string(content), "[ERROR]")
	assert.Contains(t, string(content), "request failed on scoreboard")
}

func TestCleanFileEmptiesTheLog(t *testing.T) {
	log, err := CreateLogger()
	require.NoError(t, err)
	defer log.Close()

	log.Infof("something")
	log.CleanFile()

	content, err := os.ReadFile(log.filePath)
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestCloseRemovesTheBackingFile(t *testing.T) {
	log, err := CreateLogger()
	require.NoError(t, err)

	path := log.filePath
	require.NoError(t, log.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
