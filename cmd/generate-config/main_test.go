package main

import (
	"bytes"
	"os"
	"path/filepath"
	"pokerodds/internal/config"
	"pokerodds/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteDefaultConfig(t *testing.T) {
	a := assert.New(t)

	var buf bytes.Buffer
	a.NoError(writeDefaultConfig(&buf))
	a.Contains(buf.String(), "iterations: 2000")
	a.Contains(buf.String(), "potMismatch: true")

	file := filepath.Join(t.TempDir(), "config.yaml")
	a.NoError(os.WriteFile(file, buf.Bytes(), 0o600))

	unset := util.SetEnv("POKERODDS_CONFIG_FILE", file)
	defer unset()

	// the generated file loads back to the defaults
	a.NoError(config.Load())
	cfg := config.Instance()
	def := config.DefaultConfig()
	a.Equal(def.Equity, cfg.Equity)
	a.Equal(def.Settlement, cfg.Settlement)
	a.Equal(def.Log, cfg.Log)
}
