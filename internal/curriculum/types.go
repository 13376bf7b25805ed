package curriculum

// TrackID identifies one of the independent curricula.
type TrackID string

const (
	TrackWeb      TrackID = "web"
	TrackTrucking TrackID = "trucking"
)

// AllTrackIDs returns the track ids in display order.
func AllTrackIDs() []TrackID {
	return []TrackID{TrackWeb, TrackTrucking}
}

// Track is one curriculum: an ordered sequence of phases.
type Track struct {
	ID      TrackID `json:"id"`
	Name    string  `json:"name"`
	Tagline string  `json:"tagline"`
	Phases  []Phase `json:"phases"`
}

// Phase is one gated unit of curriculum content.
// Phase order within a track is the unlock order.
type Phase struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	SketchChallenge string         `json:"sketchChallenge,omitempty"`
	Lingo           []Lingo        `json:"lingo,omitempty"`
	Tasks           []Task         `json:"tasks"`
	Quiz            *Quiz          `json:"quiz,omitempty"`
	Exam            []ExamQuestion `json:"exam,omitempty"`
}

// HasExam reports whether the phase carries a gating exam.
// Phases without one are treated as passed once all tasks complete.
func (p Phase) HasExam() bool {
	return len(p.Exam) > 0
}

// Task is one checklist item within a phase. IDs are unique across
// all tracks combined.
type Task struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Link   string `json:"link,omitempty"`
	Tool   string `json:"tool,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Lingo is a term/definition card shown with a phase.
type Lingo struct {
	Term string `json:"term"`
	Def  string `json:"def"`
}

// Quiz is a single non-gating knowledge-check question.
type Quiz struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// ExamQuestion is one multiple-choice question of a phase exam.
type ExamQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}
