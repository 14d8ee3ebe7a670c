package config

import (
	"encoding/json"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema constrains the file. Every field is optional; unknown fields are
// rejected by close().
const schema = `
size?:             int & >=4 & <=2000
scale?:            int & >=2
tps?:              int & >0
speed?:            int & >=0
max_speed?:        int & >=0
max_delay_ms?:     int & >0
density?:          number & >=0 & <=1
seed?:             int
theme?:            "nord" | "dark" | "black-yellow"
pattern?:          string
audio?:            string
sample_rate?:      int & >0
volume?:           number & >=0 & <=1
beat_threshold?:   number & >0
beat_cooldown_ms?: int & >0
generations?:      int & >=0
poll_ms?:          int & >0
log_every?:        int & >=0
log_level?:        "debug" | "info" | "warn" | "error"
log_file?:         string
`

// LoadFile validates the CUE file at path and overlays the fields it sets.
func (c *Config) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	value, err := compile(content, path)
	if err != nil {
		return err
	}
	return c.apply(value)
}

func compile(content []byte, path string) (cue.Value, error) {
	ctx := cuecontext.New()
	schemaValue := ctx.CompileString("close({" + schema + "})")
	if err := schemaValue.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("config schema: %w", err)
	}

	value := ctx.CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("parse %s: %w", path, err)
	}
	unified := schemaValue.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cue.Value{}, fmt.Errorf("validate %s: %w", path, err)
	}
	return unified, nil
}

func (c *Config) apply(value cue.Value) error {
	raw, err := value.MarshalJSON()
	if err != nil {
		return fmt.Errorf("export config: %w", err)
	}
	if err := json.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	return nil
}
