package models

import "time"

// LearningPathStep is one ordered milestone inside a learning path.
type LearningPathStep struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Resource    string     `json:"resource,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// LearningPath is the per-user study roadmap. Each user keeps at most one;
// a new generation replaces the previous path wholesale.
type LearningPath struct {
	Subject     string             `json:"subject" validate:"required"`
	Goal        string             `json:"goal,omitempty"`
	GeneratedAt time.Time          `json:"generatedAt" validate:"required"`
	Steps       []LearningPathStep `json:"steps" validate:"dive"`
}

// MarkStepDone flags the step with the given id as completed. It reports
// whether the step was found; marking an already completed step again is
// harmless.
func (p *LearningPath) MarkStepDone(stepID string, now time.Time) bool {
	for i := range p.Steps {
		if p.Steps[i].ID != stepID {
			continue
		}
		p.Steps[i].Completed = true
		p.Steps[i].CompletedAt = &now
		return true
	}
	return false
}

// CompletedSteps counts the steps already marked done.
func (p LearningPath) CompletedSteps() int {
	n := 0
	for _, s := range p.Steps {
		if s.Completed {
			n++
		}
	}
	return n
}
