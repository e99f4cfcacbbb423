// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studydrill/drill/ent/examevent"
)

// ExamEventCreate is the builder for creating a ExamEvent entity.
type ExamEventCreate struct {
	config
	mutation *ExamEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ExamEventCreate) SetSequence(v int64) *ExamEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamEventCreate) SetTimestamp(v time.Time) *ExamEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTimestamp(v *time.Time) *ExamEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExamEventCreate) SetSessionID(v string) *ExamEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ExamEventCreate) SetCorrectCount(v int) *ExamEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ExamEventCreate) SetTotal(v int) *ExamEventCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *ExamEventCreate) SetThreshold(v int) *ExamEventCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExamEventCreate) SetPassed(v bool) *ExamEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *ExamEventCreate) SetDurationSecs(v int) *ExamEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableDurationSecs(v *int) *ExamEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the ExamEventMutation object of the builder.
func (_c *ExamEventCreate) Mutation() *ExamEventMutation {
	return _c.mutation
}

// Save creates the ExamEvent in the database.
func (_c *ExamEventCreate) Save(ctx context.Context) (*ExamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamEventCreate) SaveX(ctx context.Context) *ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := examevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "ExamEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ExamEvent.total"`)}
	}
	if _, ok := _c.mutation.Threshold(); !ok {
		return &ValidationError{Name: "threshold", err: errors.New(`ent: missing required field "ExamEvent.threshold"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExamEvent.passed"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "ExamEvent.duration_secs"`)}
	}
	return nil
}

func (_c *ExamEventCreate) sqlSave(ctx context.Context) (*ExamEvent, error) {
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

func (_c *ExamEventCreate) createSpec() (*ExamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examevent.Table, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(examevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(examevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(examevent.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(examevent.FieldThreshold, field.TypeInt, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(examevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExamEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExamEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExamEventCreate) OnConflict(opts ...sql.ConflictOption) *ExamEventUpsertOne {
	_c.conflict = opts
	return &ExamEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExamEventCreate) OnConflictColumns(columns ...string) *ExamEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExamEventUpsertOne{
		create: _c,
	}
}

type (
	// ExamEventUpsertOne is the builder for "upsert"-ing
	//  one ExamEvent node.
	ExamEventUpsertOne struct {
		create *ExamEventCreate
	}

	// ExamEventUpsert is the "OnConflict" setter.
	ExamEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *ExamEventUpsert) SetSessionID(v string) *ExamEventUpsert {
	u.Set(examevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateSessionID() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldSessionID)
	return u
}

// SetCorrectCount sets the "correct_count" field.
func (u *ExamEventUpsert) SetCorrectCount(v int) *ExamEventUpsert {
	u.Set(examevent.FieldCorrectCount, v)
	return u
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateCorrectCount() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldCorrectCount)
	return u
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *ExamEventUpsert) AddCorrectCount(v int) *ExamEventUpsert {
	u.Add(examevent.FieldCorrectCount, v)
	return u
}

// SetTotal sets the "total" field.
func (u *ExamEventUpsert) SetTotal(v int) *ExamEventUpsert {
	u.Set(examevent.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateTotal() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *ExamEventUpsert) AddTotal(v int) *ExamEventUpsert {
	u.Add(examevent.FieldTotal, v)
	return u
}

// SetThreshold sets the "threshold" field.
func (u *ExamEventUpsert) SetThreshold(v int) *ExamEventUpsert {
	u.Set(examevent.FieldThreshold, v)
	return u
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateThreshold() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldThreshold)
	return u
}

// AddThreshold adds v to the "threshold" field.
func (u *ExamEventUpsert) AddThreshold(v int) *ExamEventUpsert {
	u.Add(examevent.FieldThreshold, v)
	return u
}

// SetPassed sets the "passed" field.
func (u *ExamEventUpsert) SetPassed(v bool) *ExamEventUpsert {
	u.Set(examevent.FieldPassed, v)
	return u
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdatePassed() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldPassed)
	return u
}

// SetDurationSecs sets the "duration_secs" field.
func (u *ExamEventUpsert) SetDurationSecs(v int) *ExamEventUpsert {
	u.Set(examevent.FieldDurationSecs, v)
	return u
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateDurationSecs() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldDurationSecs)
	return u
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *ExamEventUpsert) AddDurationSecs(v int) *ExamEventUpsert {
	u.Add(examevent.FieldDurationSecs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExamEventUpsertOne) UpdateNewValues() *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(examevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(examevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExamEventUpsertOne) Ignore() *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExamEventUpsertOne) DoNothing() *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExamEventCreate.OnConflict
// documentation for more info.
func (u *ExamEventUpsertOne) Update(set func(*ExamEventUpsert)) *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExamEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ExamEventUpsertOne) SetSessionID(v string) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateSessionID() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *ExamEventUpsertOne) SetCorrectCount(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *ExamEventUpsertOne) AddCorrectCount(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateCorrectCount() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetTotal sets the "total" field.
func (u *ExamEventUpsertOne) SetTotal(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *ExamEventUpsertOne) AddTotal(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateTotal() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateTotal()
	})
}

// SetThreshold sets the "threshold" field.
func (u *ExamEventUpsertOne) SetThreshold(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetThreshold(v)
	})
}

// AddThreshold adds v to the "threshold" field.
func (u *ExamEventUpsertOne) AddThreshold(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddThreshold(v)
	})
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateThreshold() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateThreshold()
	})
}

// SetPassed sets the "passed" field.
func (u *ExamEventUpsertOne) SetPassed(v bool) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdatePassed() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdatePassed()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *ExamEventUpsertOne) SetDurationSecs(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *ExamEventUpsertOne) AddDurationSecs(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateDurationSecs() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *ExamEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExamEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExamEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExamEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExamEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExamEventCreateBulk is the builder for creating many ExamEvent entities in bulk.
type ExamEventCreateBulk struct {
	config
	err      error
	builders []*ExamEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ExamEvent entities in the database.
func (_c *ExamEventCreateBulk) Save(ctx context.Context) ([]*ExamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamEventMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ExamEventCreateBulk) SaveX(ctx context.Context) []*ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExamEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExamEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExamEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExamEventUpsertBulk {
	_c.conflict = opts
	return &ExamEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExamEventCreateBulk) OnConflictColumns(columns ...string) *ExamEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExamEventUpsertBulk{
		create: _c,
	}
}

// ExamEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ExamEvent nodes.
type ExamEventUpsertBulk struct {
	create *ExamEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExamEventUpsertBulk) UpdateNewValues() *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(examevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(examevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExamEventUpsertBulk) Ignore() *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExamEventUpsertBulk) DoNothing() *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExamEventCreateBulk.OnConflict
// documentation for more info.
func (u *ExamEventUpsertBulk) Update(set func(*ExamEventUpsert)) *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExamEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *ExamEventUpsertBulk) SetSessionID(v string) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateSessionID() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetCorrectCount sets the "correct_count" field.
func (u *ExamEventUpsertBulk) SetCorrectCount(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetCorrectCount(v)
	})
}

// AddCorrectCount adds v to the "correct_count" field.
func (u *ExamEventUpsertBulk) AddCorrectCount(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddCorrectCount(v)
	})
}

// UpdateCorrectCount sets the "correct_count" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateCorrectCount() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateCorrectCount()
	})
}

// SetTotal sets the "total" field.
func (u *ExamEventUpsertBulk) SetTotal(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *ExamEventUpsertBulk) AddTotal(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateTotal() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateTotal()
	})
}

// SetThreshold sets the "threshold" field.
func (u *ExamEventUpsertBulk) SetThreshold(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetThreshold(v)
	})
}

// AddThreshold adds v to the "threshold" field.
func (u *ExamEventUpsertBulk) AddThreshold(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddThreshold(v)
	})
}

// UpdateThreshold sets the "threshold" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateThreshold() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateThreshold()
	})
}

// SetPassed sets the "passed" field.
func (u *ExamEventUpsertBulk) SetPassed(v bool) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdatePassed() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdatePassed()
	})
}

// SetDurationSecs sets the "duration_secs" field.
func (u *ExamEventUpsertBulk) SetDurationSecs(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetDurationSecs(v)
	})
}

// AddDurationSecs adds v to the "duration_secs" field.
func (u *ExamEventUpsertBulk) AddDurationSecs(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddDurationSecs(v)
	})
}

// UpdateDurationSecs sets the "duration_secs" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateDurationSecs() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateDurationSecs()
	})
}

// Exec executes the query.
func (u *ExamEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExamEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExamEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExamEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
