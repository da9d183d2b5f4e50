package engine

import (
	"errors"
	"fmt"
)

// MaxStage is the failure stage at which a round is lost.
const MaxStage = 9

// ErrStageOutOfRange is returned by StageVisual for stages outside [0, MaxStage].
var ErrStageOutOfRange = errors.New("stage out of range")

// StageVisual maps a failure stage to its visual identifier
// ("stage-0" through "stage-9").
func StageVisual(stage int) (string, error) {
	if stage < 0 || stage > MaxStage {
		return "", fmt.Errorf("%w: %d", ErrStageOutOfRange, stage)
	}
	return fmt.Sprintf("stage-%d", stage), nil
}

// StageVisuals returns every identifier StageVisual can produce, in stage order.
func StageVisuals() []string {
	ids := make([]string, 0, MaxStage+1)
	for stage := 0; stage <= MaxStage; stage++ {
		id, _ := StageVisual(stage)
		ids = append(ids, id)
	}
	return ids
}
