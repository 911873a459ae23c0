package logger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferConcurrentAccess(t *testing.T) {
	buffer := NewLogBuffer(100)

	var wg sync.WaitGroup
	numGoroutines := 10
	logsPerGoroutine := 100

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < logsPerGoroutine; j++ {
				buffer.Add("INFO", fmt.Sprintf("Log from goroutine %d, iteration %d", id, j), map[string]interface{}{
					"goroutine": id,
					"iteration": j,
				})
			}
		}(i)
	}

	go func() {
		for i := 0; i < 50; i++ {
			_ = buffer.GetRecentLogs(10)
			_, _ = buffer.GetStats()
		}
	}()

	wg.Wait()

	total, dropped := buffer.GetStats()
	assert.Equal(t, uint64(numGoroutines*logsPerGoroutine), total)
	assert.Equal(t, uint64(numGoroutines*logsPerGoroutine-100), dropped)
	assert.Len(t, buffer.GetRecentLogs(0), 100)
}

func TestLogBufferOrdering(t *testing.T) {
	buffer := NewLogBuffer(3)
	for i := 1; i <= 5; i++ {
		buffer.Add("INFO", fmt.Sprintf("m%d", i), nil)
	}

	logs := buffer.GetRecentLogs(0)
	require.Len(t, logs, 3)
	assert.Equal(t, "m3", logs[0].Message)
	assert.Equal(t, "m5", logs[2].Message)

	last := buffer.GetRecentLogs(2)
	require.Len(t, last, 2)
	assert.Equal(t, "m4", last[0].Message)
	assert.Equal(t, "m5", last[1].Message)
}

func TestLogBufferWriteDecodesZapJSON(t *testing.T) {
	buffer := NewLogBuffer(10)
	line := `{"level":"WARN","time":"2024-05-01T10:00:00.000Z","logger":"market","msg":"request failed","status":500}` + "\n"

	n, err := buffer.Write([]byte(line + "plain text\n"))
	require.NoError(t, err)
	assert.Equal(t, len(line)+len("plain text\n"), n)

	logs := buffer.GetRecentLogs(0)
	require.Len(t, logs, 2)
	assert.Equal(t, "WARN", logs[0].Level)
	assert.Equal(t, "market", logs[0].Component)
	assert.Equal(t, "request failed", logs[0].Message)
	assert.Equal(t, 2024, logs[0].Timestamp.Year())
	assert.Equal(t, float64(500), logs[0].Fields["status"])
	assert.Equal(t, "plain text", logs[1].Message)
}

func TestLogBufferClear(t *testing.T) {
	buffer := NewLogBuffer(2)
	buffer.Add("INFO", "a", nil)
	buffer.Add("INFO", "b", nil)
	buffer.Add("INFO", "c", nil)
	buffer.Clear()

	assert.Empty(t, buffer.GetRecentLogs(0))
	total, _ := buffer.GetStats()
	assert.Equal(t, uint64(3), total)
}

func TestCreateTUILoggerWritesToBufferAndFile(t *testing.T) {
	buffer := NewLogBuffer(10)
	path := t.TempDir() + "/app.log"

	log, err := CreateTUILogger(false, buffer, DefaultFileConfig(path))
	require.NoError(t, err)
	log.Named("ui").Info("started")
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	logs := buffer.GetRecentLogs(0)
	require.Len(t, logs, 1)
	assert.Equal(t, "INFO", logs[0].Level)
	assert.Equal(t, "ui", logs[0].Component)
	assert.FileExists(t, path)

	_, err = CreateTUILogger(false, nil, FileConfig{})
	assert.Error(t, err)
}
