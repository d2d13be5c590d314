package dataset

import (
	"fmt"

	"datareport/domain/core"
	"datareport/domain/stats"
	"datareport/internal"
	apperrors "datareport/internal/errors"

	"github.com/tidwall/gjson"
)

// StepOp names a cleaning operation in a recipe.
type StepOp string

const (
	StepRemoveDuplicates          StepOp = "removeDuplicates"
	StepRemoveRowsWithEmptyValues StepOp = "removeRowsWithEmptyValues"
	StepFillEmpty                 StepOp = "fillEmpty"
	StepFillEmptyStat             StepOp = "fillEmptyStat"
	StepReplaceWithValue          StepOp = "replaceWithValue"
	StepReplaceWithStat           StepOp = "replaceWithStat"
	StepRemoveRowsWhere           StepOp = "removeRowsWhere"
	StepRound                     StepOp = "round"
)

// Step is one entry of a cleaning recipe. Fields that an operation does not
// use are ignored.
type Step struct {
	Op          StepOp `json:"op"`
	Column      string `json:"column,omitempty"`
	Operator    string `json:"operator,omitempty"`
	Value       string `json:"value,omitempty"`
	ReplaceWith string `json:"replaceWith,omitempty"`
	Statistic   string `json:"statistic,omitempty"`
	Decimals    int    `json:"decimals,omitempty"`
}

// ParseRecipe reads a JSON recipe: either an array of steps or an object
// holding the array under "steps".
func ParseRecipe(data []byte) ([]Step, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.InvalidInput("recipe is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if root.IsObject() {
		root = root.Get("steps")
	}
	return ParseSteps(root)
}

// ParseSteps reads an already located JSON array of steps.
func ParseSteps(list gjson.Result) ([]Step, error) {
	if !list.Exists() {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, apperrors.InvalidInput("recipe steps must be an array")
	}
	var steps []Step
	var err error
	list.ForEach(func(_, v gjson.Result) bool {
		op := v.Get("op")
		if !op.Exists() || op.String() == "" {
			err = apperrors.InvalidInput(fmt.Sprintf("step %d has no op", len(steps)))
			return false
		}
		steps = append(steps, Step{
			Op:          StepOp(op.String()),
			Column:      v.Get("column").String(),
			Operator:    v.Get("operator").String(),
			Value:       v.Get("value").String(),
			ReplaceWith: v.Get("replaceWith").String(),
			Statistic:   v.Get("statistic").String(),
			Decimals:    int(v.Get("decimals").Int()),
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// Apply runs the steps against df in order. Only an unknown op is an error,
// and it is reported before any step runs. An unknown operator matches no
// cell and an unknown statistic writes ErrorCell, as the frame operations do.
func Apply(df *DataFrame, steps []Step) error {
	for i, s := range steps {
		if !s.Op.Known() {
			return apperrors.UnsupportedOperation(fmt.Sprintf("cleaning step %d %q", i, s.Op), core.ErrUnknownStep)
		}
	}

	log := internal.DefaultLogger.With("dataset")
	for i, s := range steps {
		op, ok := ParseOperator(s.Operator)
		if !ok && s.needsOperator() {
			log.Debug("step %d (%s): unknown operator %q matches nothing", i, s.Op, s.Operator)
		}
		stat, ok := stats.ParseStatistic(s.Statistic)
		if !ok {
			stat = stats.Statistic(-1)
		}

		switch s.Op {
		case StepRemoveDuplicates:
			df.RemoveDuplicates()
		case StepRemoveRowsWithEmptyValues:
			df.RemoveRowsWithEmptyValues()
		case StepFillEmpty:
			df.FillEmpty(s.Column, s.Value)
		case StepFillEmptyStat:
			df.FillEmptyStat(s.Column, stat)
		case StepReplaceWithValue:
			df.ReplaceWithValue(s.Column, op, s.Value, s.ReplaceWith)
		case StepReplaceWithStat:
			df.ReplaceWithStat(s.Column, op, s.Value, stat)
		case StepRemoveRowsWhere:
			df.RemoveRowsWhere(s.Column, op, s.Value)
		case StepRound:
			df.Round(s.Column, s.Decimals)
		}
		log.Trace("step %d (%s) applied, %d rows", i, s.Op, df.Len())
	}
	return nil
}

// Known reports whether the op is one the pipeline implements.
func (op StepOp) Known() bool {
	switch op {
	case StepRemoveDuplicates, StepRemoveRowsWithEmptyValues, StepFillEmpty, StepFillEmptyStat,
		StepReplaceWithValue, StepReplaceWithStat, StepRemoveRowsWhere, StepRound:
		return true
	}
	return false
}

func (s Step) needsOperator() bool {
	switch s.Op {
	case StepReplaceWithValue, StepReplaceWithStat, StepRemoveRowsWhere:
		return true
	}
	return false
}
