package dict

import (
	"encoding/json"
	"fmt"
	"os"
)

// Checkpoint persists corpus-build progress so a multi-hour run over
// the archive can resume after interruption.
type Checkpoint struct {
	path string
}

// CheckpointState is the resumable build state
type CheckpointState struct {
	Processed map[string]struct{}
	Counter   map[string]int
}

type checkpointFile struct {
	Processed []string       `json:"processed"`
	Counter   map[string]int `json:"counter"`
}

// NewCheckpoint creates a checkpoint at path
func NewCheckpoint(path string) *Checkpoint {
	return &Checkpoint{path: path}
}

// Load reads the saved state, or returns a fresh one when no checkpoint
// exists yet.
func (c *Checkpoint) Load() (*CheckpointState, error) {
	state := &CheckpointState{
		Processed: make(map[string]struct{}),
		Counter:   make(map[string]int),
	}

	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}

	var file checkpointFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse checkpoint %s: %w", c.path, err)
	}

	for _, id := range file.Processed {
		state.Processed[id] = struct{}{}
	}
	if file.Counter != nil {
		state.Counter = file.Counter
	}

	return state, nil
}

// Save writes the state atomically (temp file, then rename)
func (c *Checkpoint) Save(state *CheckpointState) error {
	file := checkpointFile{
		Processed: make([]string, 0, len(state.Processed)),
		Counter:   state.Counter,
	}
	for id := range state.Processed {
		file.Processed = append(file.Processed, id)
	}

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace checkpoint: %w", err)
	}

	return nil
}
