// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skand/proctor/ent/answerevent"
	"github.com/skand/proctor/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AnswerEventUpdate) SetQuestionNumber(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionNumber(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AnswerEventUpdate) AddQuestionNumber(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnswerEventUpdate) SetKind(v string) *AnswerEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableKind(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v string) *AnswerEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerEventUpdate) SetQuestionText(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionText(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *AnswerEventUpdate) SetStudentAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStudentAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *AnswerEventUpdate) SetPointsAwarded(v int) *AnswerEventUpdate {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePointsAwarded(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *AnswerEventUpdate) AddPointsAwarded(v int) *AnswerEventUpdate {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetMaxPoints sets the "max_points" field.
func (_u *AnswerEventUpdate) SetMaxPoints(v int) *AnswerEventUpdate {
	_u.mutation.ResetMaxPoints()
	_u.mutation.SetMaxPoints(v)
	return _u
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMaxPoints(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetMaxPoints(*v)
	}
	return _u
}

// AddMaxPoints adds value to the "max_points" field.
func (_u *AnswerEventUpdate) AddMaxPoints(v int) *AnswerEventUpdate {
	_u.mutation.AddMaxPoints(v)
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *AnswerEventUpdate) SetReferenceAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableReferenceAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AnswerEventUpdate) SetTimeSecs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeSecs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AnswerEventUpdate) AddTimeSecs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AnswerEventUpdate) SetHintUsed(v bool) *AnswerEventUpdate {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableHintUsed(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := answerevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentAnswer(); ok {
		if err := answerevent.StudentAnswerValidator(v); err != nil {
			return &ValidationError{Name: "student_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(answerevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(answerevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPoints(); ok {
		_spec.SetField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPoints(); ok {
		_spec.AddField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(answerevent.FieldReferenceAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(answerevent.FieldHintUsed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionNumber sets the "question_number" field.
func (_u *AnswerEventUpdateOne) SetQuestionNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionNumber()
	_u.mutation.SetQuestionNumber(v)
	return _u
}

// SetNillableQuestionNumber sets the "question_number" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionNumber(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionNumber(*v)
	}
	return _u
}

// AddQuestionNumber adds value to the "question_number" field.
func (_u *AnswerEventUpdateOne) AddQuestionNumber(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionNumber(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnswerEventUpdateOne) SetKind(v string) *AnswerEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableKind(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AnswerEventUpdateOne) SetQuestionText(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionText(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *AnswerEventUpdateOne) SetStudentAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStudentAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetPointsAwarded sets the "points_awarded" field.
func (_u *AnswerEventUpdateOne) SetPointsAwarded(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetPointsAwarded()
	_u.mutation.SetPointsAwarded(v)
	return _u
}

// SetNillablePointsAwarded sets the "points_awarded" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePointsAwarded(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPointsAwarded(*v)
	}
	return _u
}

// AddPointsAwarded adds value to the "points_awarded" field.
func (_u *AnswerEventUpdateOne) AddPointsAwarded(v int) *AnswerEventUpdateOne {
	_u.mutation.AddPointsAwarded(v)
	return _u
}

// SetMaxPoints sets the "max_points" field.
func (_u *AnswerEventUpdateOne) SetMaxPoints(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetMaxPoints()
	_u.mutation.SetMaxPoints(v)
	return _u
}

// SetNillableMaxPoints sets the "max_points" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMaxPoints(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMaxPoints(*v)
	}
	return _u
}

// AddMaxPoints adds value to the "max_points" field.
func (_u *AnswerEventUpdateOne) AddMaxPoints(v int) *AnswerEventUpdateOne {
	_u.mutation.AddMaxPoints(v)
	return _u
}

// SetReferenceAnswer sets the "reference_answer" field.
func (_u *AnswerEventUpdateOne) SetReferenceAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetReferenceAnswer(v)
	return _u
}

// SetNillableReferenceAnswer sets the "reference_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableReferenceAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetReferenceAnswer(*v)
	}
	return _u
}

// SetTimeSecs sets the "time_secs" field.
func (_u *AnswerEventUpdateOne) SetTimeSecs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeSecs()
	_u.mutation.SetTimeSecs(v)
	return _u
}

// SetNillableTimeSecs sets the "time_secs" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeSecs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeSecs(*v)
	}
	return _u
}

// AddTimeSecs adds value to the "time_secs" field.
func (_u *AnswerEventUpdateOne) AddTimeSecs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeSecs(v)
	return _u
}

// SetHintUsed sets the "hint_used" field.
func (_u *AnswerEventUpdateOne) SetHintUsed(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetHintUsed(v)
	return _u
}

// SetNillableHintUsed sets the "hint_used" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableHintUsed(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetHintUsed(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := answerevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentAnswer(); ok {
		if err := answerevent.StudentAnswerValidator(v); err != nil {
			return &ValidationError{Name: "student_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionNumber(); ok {
		_spec.SetField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionNumber(); ok {
		_spec.AddField(answerevent.FieldQuestionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(answerevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(answerevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PointsAwarded(); ok {
		_spec.SetField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAwarded(); ok {
		_spec.AddField(answerevent.FieldPointsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxPoints(); ok {
		_spec.SetField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxPoints(); ok {
		_spec.AddField(answerevent.FieldMaxPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReferenceAnswer(); ok {
		_spec.SetField(answerevent.FieldReferenceAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSecs(); ok {
		_spec.AddField(answerevent.FieldTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintUsed(); ok {
		_spec.SetField(answerevent.FieldHintUsed, field.TypeBool, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
