package sl

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	err := errors.New("something went wrong")
	attr := Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.NotPanics(t, func() {
		attr := Err(nil)
		assert.Equal(t, "<nil>", attr.Value.String())
	})
}

func TestNewLogger_Env(t *testing.T) {
	t.Run("prod пишет JSON и скрывает debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(envProd, &buf)

		log.Debug("hidden")
		log.Info("shown", slog.String("op", "test"))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.Equal(t, "test", line["op"])
	})

	t.Run("local пишет текст с debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger(envLocal, &buf)

		log.Debug("visible")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("неизвестное окружение", func(t *testing.T) {
		var buf bytes.Buffer
		log := newLogger("staging", &buf)

		log.Debug("hidden")

		assert.Empty(t, buf.String())
	})
}
