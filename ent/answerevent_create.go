// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skand/proctor/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionNumber sets the "question_number" field.
func (_c *AnswerEventCreate) SetQuestionNumber(v int) *AnswerEventCreate {
	_c.mutation.SetQuestionNumber(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AnswerEventCreate) SetKind(v string) *AnswerEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AnswerEventCreate) SetDifficulty(v string) *AnswerEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *AnswerEventCreate) SetQuestionText(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *AnswerEventCreate) SetStudentAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *AnswerEventCreate) SetPointsAwarded(v int) *AnswerEventCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetMaxPoints sets the "max_points" field.
func (_c *AnswerEventCreate) SetMaxPoints(v int) *AnswerEventCreate {
	_c.mutation.SetMaxPoints(v)
	return _c
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_c *AnswerEventCreate) SetReferenceAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetReferenceAnswer(v)
	return _c
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableReferenceAnswer(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetReferenceAnswer(*v)
	}
	return _c
}

// SetTimeSecs sets the "time_secs" field.
func (_c *AnswerEventCreate) SetTimeSecs(v int) *AnswerEventCreate {
	_c.mutation.SetTimeSecs(v)
	return _c
}

// SetHintUsed sets the "hint_used" field.
func (_c *AnswerEventCreate) SetHintUsed(v bool) *AnswerEventCreate {
	_c.mutation.SetHintUsed(v)
	return _c
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableHintUsed(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetHintUsed(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ReferenceAnswer(); !ok {
		v := answerevent.DefaultReferenceAnswer
		_c.mutation.SetReferenceAnswer(v)
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		v := answerevent.DefaultHintUsed
		_c.mutation.SetHintUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionNumber(); !ok {
		return &ValidationError{Name: "question_number", err: errors.New(`ent: missing required field "AnswerEvent.question_number"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AnswerEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := answerevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AnswerEvent.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "AnswerEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "AnswerEvent.student_answer"`)}
	}
	if v, ok := _c.mutation.StudentAnswer(); ok {
		if err := answerevent.StudentAnswerValidator(v); err != nil {
			return &ValidationError{Name: "student_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "AnswerEvent.points_awarded"`)}
	}
	if _, ok := _c.mutation.MaxPoints(); !ok {
		return &ValidationError{Name: "max_points", err: errors.New(`ent: missing required field "AnswerEvent.max_points"`)}
	}
	if _, ok := _c.mutation.ReferenceAnswer(); !ok {
		return &ValidationError{Name: "reference_answer", err: errors.New(`ent: missing required field "AnswerEvent.reference_answer"`)}
	}
	if _, ok := _c.mutation.TimeSecs(); !ok {
		return &ValidationError{Name: "time_secs", err: errors.New(`ent: missing required field "AnswerEvent.time_secs"`)}
	}
	if _, ok := _c.mutation.HintUsed(); !ok {
		return &ValidationError{Name: "hint_used", err: errors.New(`ent: missing required field "AnswerEvent.hint_used"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionNumber(); ok {
		_spec.SetField(answerevent.FieldQuestionNumber, field.TypeInt, value)
		_node.QuestionNumber = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(answerevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(answerevent.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(answerevent.FieldPointsAwarded, field.TypeInt, value)
		_node.PointsAwarded = value
	}
	if value, ok := _c.mutation.MaxPoints(); ok {
		_spec.SetField(answerevent.FieldMaxPoints, field.TypeInt, value)
		_node.MaxPoints = value
	}
	if value, ok := _c.mutation.ReferenceAnswer(); ok {
		_spec.SetField(answerevent.FieldReferenceAnswer, field.TypeString, value)
		_node.ReferenceAnswer = value
	}
	if value, ok := _c.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeInt, value)
		_node.TimeSecs = value
	}
	if value, ok := _c.mutation.HintUsed(); ok {
		_spec.SetField(answerevent.FieldHintUsed, field.TypeBool, value)
		_node.HintUsed = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
