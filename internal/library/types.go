package library

import (
	"time"

	"github.com/studybook-cli/studybook/internal/model"
)

// Content kinds stored in the library.
const (
	KindLesson    = "lesson"
	KindQuiz      = "quiz"
	KindReference = "reference"
)

// ContentItem is one stored piece of educational content. Lesson counters
// feed the show command's progress bar; LessonsDone never exceeds
// LessonsTotal for items written through the store.
type ContentItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Kind         string        `json:"kind"`
	Description  string        `json:"description,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Importance   int           `json:"importance,omitempty"`
	LessonsDone  int           `json:"lessons_done,omitempty"`
	LessonsTotal int           `json:"lessons_total,omitempty"`
	QuizScore    float64       `json:"quiz_score,omitempty"`
	StudyTime    time.Duration `json:"study_time,omitempty"`
	Notes        []model.Note  `json:"notes,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Progress derives the session-progress view of the item's counters for
// rendering. The value is computed rather than stored so it never drifts
// from the item fields.
func (c ContentItem) Progress() model.SessionProgress {
	return model.SessionProgress{
		ContentID:        c.ID,
		LessonsCompleted: c.LessonsDone,
		TotalLessons:     c.LessonsTotal,
		QuizScore:        c.QuizScore,
		StudyTime:        c.StudyTime,
		UpdatedAt:        c.UpdatedAt,
	}
}

// libraryFile is the on-disk representation of the whole library.
type libraryFile struct {
	Version string        `json:"version"`
	Items   []ContentItem `json:"items"`
}
