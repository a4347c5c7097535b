package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "json debug", level: "debug", format: "json"},
		{name: "console info", level: "info", format: "console"},
		{name: "unknown level", level: "chatty", format: "json", wantErr: true},
		{name: "unknown format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.level, log.GetLevel().String())
		})
	}
}

func TestNewDoesNotTouchGlobal(t *testing.T) {
	before := GetLogger()

	_, err := New("debug", "json")
	require.NoError(t, err)

	assert.Equal(t, before.GetLevel(), GetLogger().GetLevel())
}

// Exercises concurrent New/GetLogger calls; the race detector flags any
// shared unsynchronized write.
func TestConcurrentConstruction(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = GetLogger()
		}()
		go func() {
			defer wg.Done()
			log, err := New("info", "json")
			assert.NoError(t, err)
			assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
		}()
	}
	wg.Wait()
}
