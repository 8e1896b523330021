// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/realnamesareboring/certifai/ent/predicate"
	"github.com/realnamesareboring/certifai/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *QuizEventUpdate) SetKind(v string) *QuizEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableKind(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCertificationID sets the "certification_id" field.
func (_u *QuizEventUpdate) SetCertificationID(v string) *QuizEventUpdate {
	_u.mutation.SetCertificationID(v)
	return _u
}

// SetNillableCertificationID sets the "certification_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCertificationID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetCertificationID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *QuizEventUpdate) SetDomain(v string) *QuizEventUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDomain(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizEventUpdate) SetQuestionCount(v int) *QuizEventUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestionCount(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizEventUpdate) AddQuestionCount(v int) *QuizEventUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *QuizEventUpdate) SetUsedFallback(v bool) *QuizEventUpdate {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableUsedFallback(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v int) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v int) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizEventUpdate) SetPercentage(v int) *QuizEventUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillablePercentage(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizEventUpdate) AddPercentage(v int) *QuizEventUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(quizevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CertificationID(); ok {
		_spec.SetField(quizevent.FieldCertificationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(quizevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(quizevent.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizevent.FieldPercentage, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetKind sets the "kind" field.
func (_u *QuizEventUpdateOne) SetKind(v string) *QuizEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableKind(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCertificationID sets the "certification_id" field.
func (_u *QuizEventUpdateOne) SetCertificationID(v string) *QuizEventUpdateOne {
	_u.mutation.SetCertificationID(v)
	return _u
}

// SetNillableCertificationID sets the "certification_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCertificationID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCertificationID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *QuizEventUpdateOne) SetDomain(v string) *QuizEventUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDomain(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *QuizEventUpdateOne) SetQuestionCount(v int) *QuizEventUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestionCount(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *QuizEventUpdateOne) AddQuestionCount(v int) *QuizEventUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetUsedFallback sets the "used_fallback" field.
func (_u *QuizEventUpdateOne) SetUsedFallback(v bool) *QuizEventUpdateOne {
	_u.mutation.SetUsedFallback(v)
	return _u
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableUsedFallback(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetUsedFallback(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v int) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v int) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *QuizEventUpdateOne) SetPercentage(v int) *QuizEventUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillablePercentage(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *QuizEventUpdateOne) AddPercentage(v int) *QuizEventUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(quizevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.CertificationID(); ok {
		_spec.SetField(quizevent.FieldCertificationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(quizevent.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(quizevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedFallback(); ok {
		_spec.SetField(quizevent.FieldUsedFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(quizevent.FieldPercentage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(quizevent.FieldPercentage, field.TypeInt, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
