package model

import (
	"fmt"
	"time"
)

// SessionProgress tracks how far a learner has worked through one content
// item. Counters must be non-negative and the quiz score must fall in
// [0,100]; violations are rejected at construction.
type SessionProgress struct {
	ContentID        string        `json:"content_id" validate:"required"`
	LessonsCompleted int           `json:"lessons_completed" validate:"min=0,ltefield=TotalLessons"`
	TotalLessons     int           `json:"total_lessons" validate:"min=0"`
	QuizScore        float64       `json:"quiz_score" validate:"min=0,max=100"`
	StudyTime        time.Duration `json:"study_time" validate:"min=0"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// NewSessionProgress constructs a validated SessionProgress.
func NewSessionProgress(contentID string, completed, total int, quizScore float64, studyTime time.Duration) (SessionProgress, error) {
	s := SessionProgress{
		ContentID:        contentID,
		LessonsCompleted: completed,
		TotalLessons:     total,
		QuizScore:        quizScore,
		StudyTime:        studyTime,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := validateStruct(s); err != nil {
		return SessionProgress{}, err
	}
	return s, nil
}

// PercentComplete returns completion as a percentage in [0,100]. A zero
// lesson total reports 0 rather than dividing.
func (s SessionProgress) PercentComplete() float64 {
	if s.TotalLessons <= 0 {
		return 0
	}
	pct := float64(s.LessonsCompleted) / float64(s.TotalLessons) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatStudyTime renders the accumulated study time compactly. Values
// that would render as negative are labeled as zero instead.
func (s SessionProgress) FormatStudyTime() string {
	d := s.StudyTime
	if d <= 0 {
		return "0s"
	}

	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%ds", m, sec)
	default:
		return fmt.Sprintf("%ds", sec)
	}
}
