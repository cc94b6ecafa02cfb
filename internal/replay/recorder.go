package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/input"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// Recorder captures the events fed to a session between ticks.
type Recorder struct {
	data    ReplayData
	frame   int
	pending []EventInput
}

// NewRecorder starts a recording for a session built from cfg and atlas.
func NewRecorder(cfg config.GameConfig, atlas *sprites.Atlas, difficulty string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:    Version,
			StartTime:  time.Now().Format(time.RFC3339),
			Difficulty: difficulty,
			Config:     cfg,
			Sprites:    atlas.Sizes(),
		},
	}
}

// Record stores an event for the upcoming tick.
func (r *Recorder) Record(ev input.Event) {
	if e, ok := encodeEvent(ev); ok {
		r.pending = append(r.pending, e)
	}
}

// Tick closes the current frame. Call it right after the session ticks.
func (r *Recorder) Tick() {
	if len(r.pending) > 0 {
		r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame, Ev: r.pending})
		r.pending = nil
	}
	r.frame++
}

// Finish stamps the final world hash.
func (r *Recorder) Finish(hash uint64) {
	r.data.FinalHash = hash
}

// Data returns the recording so far. Events recorded after the last Tick
// are not included.
func (r *Recorder) Data() ReplayData {
	d := r.data
	d.Ticks = r.frame
	d.Frames = append([]FrameInput(nil), r.data.Frames...)
	return d
}

// Save writes the recording as JSON, creating the directory.
func (r *Recorder) Save(path string) error {
	return Save(path, r.Data())
}

// Save writes replay data as indented JSON.
func Save(path string, data ReplayData) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: create dir: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load loads replay data from a file.
func Load(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("replay: failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("replay: failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("replay: unsupported version %q", data.Version)
	}

	return &data, nil
}
