package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timepp/uu/internal/config"
)

func TestHandleFind(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	path := writeTemp(t, "doc.yaml", cyclicYAML)

	assert.NoError(t, HandleFind([]string{"Par", path}))
	assert.NoError(t, HandleFind([]string{"-ignore-case", "-show-value", "PARIS", path}))
	assert.ErrorIs(t, HandleFind([]string{"paris", path}), ErrNoMatch)
}

func TestHandleFind_Args(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	assert.NoError(t, HandleFind([]string{"-h"}))
	assert.Error(t, HandleFind([]string{"only-keyword"}))
	assert.Error(t, HandleFind([]string{"", "doc.json"}))
}

func TestHandleFind_CaseFromConfig(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("UU_CASE_SENSITIVE", "false")
	path := writeTemp(t, "doc.yaml", cyclicYAML)

	assert.NoError(t, HandleFind([]string{"paris", path}))
	assert.ErrorIs(t, HandleFind([]string{"-ignore-case=false", "paris", path}), ErrNoMatch)
}
