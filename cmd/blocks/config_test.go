package main

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(writeDefaultConfig(&buf, "blocks"), qt.IsNil)

	var cfg config.BlocksConfig
	c.Assert(yaml.Unmarshal(buf.Bytes(), &cfg), qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, config.DefaultBlocksConfig())
}

func TestWriteDefaultConfigUnknownGame(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(writeDefaultConfig(&buf, "pong"), qt.ErrorMatches, `no config for game "pong"`)
	c.Assert(buf.Len(), qt.Equals, 0)
}
