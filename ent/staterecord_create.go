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
	"github.com/studydrill/drill/ent/staterecord"
)

// StateRecordCreate is the builder for creating a StateRecord entity.
type StateRecordCreate struct {
	config
	mutation *StateRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *StateRecordCreate) SetKey(v string) *StateRecordCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetData sets the "data" field.
func (_c *StateRecordCreate) SetData(v map[string]interface{}) *StateRecordCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StateRecordCreate) SetUpdatedAt(v time.Time) *StateRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StateRecordCreate) SetNillableUpdatedAt(v *time.Time) *StateRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StateRecordMutation object of the builder.
func (_c *StateRecordCreate) Mutation() *StateRecordMutation {
	return _c.mutation
}

// Save creates the StateRecord in the database.
func (_c *StateRecordCreate) Save(ctx context.Context) (*StateRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StateRecordCreate) SaveX(ctx context.Context) *StateRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StateRecordCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := staterecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StateRecordCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "StateRecord.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := staterecord.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "StateRecord.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "StateRecord.data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StateRecord.updated_at"`)}
	}
	return nil
}

func (_c *StateRecordCreate) sqlSave(ctx context.Context) (*StateRecord, error) {
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

func (_c *StateRecordCreate) createSpec() (*StateRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &StateRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(staterecord.Table, sqlgraph.NewFieldSpec(staterecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(staterecord.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(staterecord.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(staterecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StateRecord.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StateRecordUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *StateRecordCreate) OnConflict(opts ...sql.ConflictOption) *StateRecordUpsertOne {
	_c.conflict = opts
	return &StateRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StateRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StateRecordCreate) OnConflictColumns(columns ...string) *StateRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StateRecordUpsertOne{
		create: _c,
	}
}

type (
	// StateRecordUpsertOne is the builder for "upsert"-ing
	//  one StateRecord node.
	StateRecordUpsertOne struct {
		create *StateRecordCreate
	}

	// StateRecordUpsert is the "OnConflict" setter.
	StateRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *StateRecordUpsert) SetKey(v string) *StateRecordUpsert {
	u.Set(staterecord.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *StateRecordUpsert) UpdateKey() *StateRecordUpsert {
	u.SetExcluded(staterecord.FieldKey)
	return u
}

// SetData sets the "data" field.
func (u *StateRecordUpsert) SetData(v map[string]interface{}) *StateRecordUpsert {
	u.Set(staterecord.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *StateRecordUpsert) UpdateData() *StateRecordUpsert {
	u.SetExcluded(staterecord.FieldData)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateRecordUpsert) SetUpdatedAt(v time.Time) *StateRecordUpsert {
	u.Set(staterecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateRecordUpsert) UpdateUpdatedAt() *StateRecordUpsert {
	u.SetExcluded(staterecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StateRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StateRecordUpsertOne) UpdateNewValues() *StateRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StateRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StateRecordUpsertOne) Ignore() *StateRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StateRecordUpsertOne) DoNothing() *StateRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StateRecordCreate.OnConflict
// documentation for more info.
func (u *StateRecordUpsertOne) Update(set func(*StateRecordUpsert)) *StateRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StateRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *StateRecordUpsertOne) SetKey(v string) *StateRecordUpsertOne {
	return u.Update(func(s *StateRecordUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *StateRecordUpsertOne) UpdateKey() *StateRecordUpsertOne {
	return u.Update(func(s *StateRecordUpsert) {
		s.UpdateKey()
	})
}

// SetData sets the "data" field.
func (u *StateRecordUpsertOne) SetData(v map[string]interface{}) *StateRecordUpsertOne {
	return u.Update(func(s *StateRecordUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *StateRecordUpsertOne) UpdateData() *StateRecordUpsertOne {
	return u.Update(func(s *StateRecordUpsert) {
		s.UpdateData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateRecordUpsertOne) SetUpdatedAt(v time.Time) *StateRecordUpsertOne {
	return u.Update(func(s *StateRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateRecordUpsertOne) UpdateUpdatedAt() *StateRecordUpsertOne {
	return u.Update(func(s *StateRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StateRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StateRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StateRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StateRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StateRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StateRecordCreateBulk is the builder for creating many StateRecord entities in bulk.
type StateRecordCreateBulk struct {
	config
	err      error
	builders []*StateRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the StateRecord entities in the database.
func (_c *StateRecordCreateBulk) Save(ctx context.Context) ([]*StateRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StateRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateRecordMutation)
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
func (_c *StateRecordCreateBulk) SaveX(ctx context.Context) []*StateRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StateRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StateRecordUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *StateRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *StateRecordUpsertBulk {
	_c.conflict = opts
	return &StateRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StateRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StateRecordCreateBulk) OnConflictColumns(columns ...string) *StateRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StateRecordUpsertBulk{
		create: _c,
	}
}

// StateRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of StateRecord nodes.
type StateRecordUpsertBulk struct {
	create *StateRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StateRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StateRecordUpsertBulk) UpdateNewValues() *StateRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StateRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StateRecordUpsertBulk) Ignore() *StateRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StateRecordUpsertBulk) DoNothing() *StateRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StateRecordCreateBulk.OnConflict
// documentation for more info.
func (u *StateRecordUpsertBulk) Update(set func(*StateRecordUpsert)) *StateRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StateRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *StateRecordUpsertBulk) SetKey(v string) *StateRecordUpsertBulk {
	return u.Update(func(s *StateRecordUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *StateRecordUpsertBulk) UpdateKey() *StateRecordUpsertBulk {
	return u.Update(func(s *StateRecordUpsert) {
		s.UpdateKey()
	})
}

// SetData sets the "data" field.
func (u *StateRecordUpsertBulk) SetData(v map[string]interface{}) *StateRecordUpsertBulk {
	return u.Update(func(s *StateRecordUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *StateRecordUpsertBulk) UpdateData() *StateRecordUpsertBulk {
	return u.Update(func(s *StateRecordUpsert) {
		s.UpdateData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateRecordUpsertBulk) SetUpdatedAt(v time.Time) *StateRecordUpsertBulk {
	return u.Update(func(s *StateRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateRecordUpsertBulk) UpdateUpdatedAt() *StateRecordUpsertBulk {
	return u.Update(func(s *StateRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StateRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StateRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StateRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StateRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
