package curriculum

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
)

//go:embed data/*.json
var dataFS embed.FS

// trackFiles lists the embedded track files in display order.
var trackFiles = map[TrackID]string{
	TrackWeb:      "data/web.json",
	TrackTrucking: "data/trucking.json",
}

// catalog holds all tracks with precomputed indices.
type catalog struct {
	tracks    []Track
	byID      map[TrackID]*Track
	taskTrack map[string]TrackID // task id -> owning track
}

// c is the package-level catalog singleton, set by init().
var c *catalog

func init() {
	cat, err := load()
	if err != nil {
		panic(fmt.Sprintf("curriculum: %v", err))
	}
	c = cat
}

// load reads, validates, and indexes the embedded track data.
func load() (*catalog, error) {
	cat := &catalog{
		byID:      make(map[TrackID]*Track, len(trackFiles)),
		taskTrack: make(map[string]TrackID),
	}

	for _, id := range AllTrackIDs() {
		name := trackFiles[id]
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := validateRaw(name, raw); err != nil {
			return nil, err
		}
		var t Track
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if t.ID != id {
			return nil, fmt.Errorf("%s: track id %q does not match file slot %q", name, t.ID, id)
		}
		cat.tracks = append(cat.tracks, t)
	}

	for i := range cat.tracks {
		cat.byID[cat.tracks[i].ID] = &cat.tracks[i]
	}

	if err := cat.check(); err != nil {
		return nil, err
	}
	return cat, nil
}

// check enforces the structural invariants the schema cannot express:
// globally unique task ids, per-track unique phase ids, and answer
// indices within option range.
func (cat *catalog) check() error {
	for _, t := range cat.tracks {
		phaseIDs := make(map[int]bool, len(t.Phases))
		for _, p := range t.Phases {
			if phaseIDs[p.ID] {
				return fmt.Errorf("track %s: duplicate phase id %d", t.ID, p.ID)
			}
			phaseIDs[p.ID] = true

			for _, task := range p.Tasks {
				if owner, ok := cat.taskTrack[task.ID]; ok {
					return fmt.Errorf("task id %q appears in both %s and %s", task.ID, owner, t.ID)
				}
				cat.taskTrack[task.ID] = t.ID
			}

			for qi, q := range p.Exam {
				if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
					return fmt.Errorf("track %s phase %d exam question %d: correct index %d out of range", t.ID, p.ID, qi, q.CorrectIndex)
				}
			}
			if p.Quiz != nil {
				if p.Quiz.CorrectIndex < 0 || p.Quiz.CorrectIndex >= len(p.Quiz.Options) {
					return fmt.Errorf("track %s phase %d quiz: correct index %d out of range", t.ID, p.ID, p.Quiz.CorrectIndex)
				}
			}
		}
	}
	return nil
}

// Tracks returns all tracks in display order.
func Tracks() []Track {
	return slices.Clone(c.tracks)
}

// Get returns a track by id, or an error if not found.
func Get(id TrackID) (Track, error) {
	t, ok := c.byID[id]
	if !ok {
		return Track{}, fmt.Errorf("track not found: %q", id)
	}
	return *t, nil
}

// TaskOwner returns the track owning the given task id, or false if
// the id is not in any track's catalog.
func TaskOwner(taskID string) (TrackID, bool) {
	t, ok := c.taskTrack[taskID]
	return t, ok
}

// TaskCount returns the total number of tasks in a track.
func TaskCount(id TrackID) int {
	t, ok := c.byID[id]
	if !ok {
		return 0
	}
	n := 0
	for _, p := range t.Phases {
		n += len(p.Tasks)
	}
	return n
}
