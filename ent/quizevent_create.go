// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/realnamesareboring/certifai/ent/quizevent"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetKind sets the "kind" field.
func (_c *QuizEventCreate) SetKind(v string) *QuizEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCertificationID sets the "certification_id" field.
func (_c *QuizEventCreate) SetCertificationID(v string) *QuizEventCreate {
	_c.mutation.SetCertificationID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *QuizEventCreate) SetDomain(v string) *QuizEventCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *QuizEventCreate) SetQuestionCount(v int) *QuizEventCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableQuestionCount(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetUsedFallback sets the "used_fallback" field.
func (_c *QuizEventCreate) SetUsedFallback(v bool) *QuizEventCreate {
	_c.mutation.SetUsedFallback(v)
	return _c
}

// SetNillableUsedFallback sets the "used_fallback" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableUsedFallback(v *bool) *QuizEventCreate {
	if v != nil {
		_c.SetUsedFallback(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizEventCreate) SetScore(v int) *QuizEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableScore(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *QuizEventCreate) SetPercentage(v int) *QuizEventCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillablePercentage(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := quizevent.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		v := quizevent.DefaultUsedFallback
		_c.mutation.SetUsedFallback(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := quizevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := quizevent.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "QuizEvent.kind"`)}
	}
	if _, ok := _c.mutation.CertificationID(); !ok {
		return &ValidationError{Name: "certification_id", err: errors.New(`ent: missing required field "QuizEvent.certification_id"`)}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "QuizEvent.domain"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "QuizEvent.question_count"`)}
	}
	if _, ok := _c.mutation.UsedFallback(); !ok {
		return &ValidationError{Name: "used_fallback", err: errors.New(`ent: missing required field "QuizEvent.used_fallback"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizEvent.score"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "QuizEvent.percentage"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
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

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(quizevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.CertificationID(); ok {
		_spec.SetField(quizevent.FieldCertificationID, field.TypeString, value)
		_node.CertificationID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(quizevent.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(quizevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.UsedFallback(); ok {
		_spec.SetField(quizevent.FieldUsedFallback, field.TypeBool, value)
		_node.UsedFallback = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(quizevent.FieldPercentage, field.TypeInt, value)
		_node.Percentage = value
	}
	return _node, _spec
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
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
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
