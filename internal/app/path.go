package app

import (
	"time"

	"github.com/studywing/studywing/models"
)

// CompleteStep marks one learning-path step as done and persists the path.
// The boolean reports whether the step exists; a missing path or step is not
// an error.
func (c *Context) CompleteStep(userID, stepID string, now time.Time) (models.LearningPath, bool, error) {
	path, ok, err := c.Path.Get(userID)
	if err != nil {
		return models.LearningPath{}, false, err
	}
	if !ok {
		return models.LearningPath{}, false, nil
	}
	if !path.MarkStepDone(stepID, now) {
		return path, false, nil
	}
	if err := c.Path.Put(userID, path); err != nil {
		return models.LearningPath{}, false, err
	}
	return path, true, nil
}
