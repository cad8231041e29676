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
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
	"github.com/anzhiyu-c/arsip-app/ent/staff"
)

// StaffUpdate is the builder for updating Staff entities.
type StaffUpdate struct {
	config
	hooks    []Hook
	mutation *StaffMutation
}

// Where appends a list predicates to the StaffUpdate builder.
func (su *StaffUpdate) Where(ps ...predicate.Staff) *StaffUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetIsActive sets the "is_active" field.
func (su *StaffUpdate) SetIsActive(b bool) *StaffUpdate {
	su.mutation.SetIsActive(b)
	return su
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (su *StaffUpdate) SetNillableIsActive(b *bool) *StaffUpdate {
	if b != nil {
		su.SetIsActive(*b)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *StaffUpdate) SetUpdatedAt(t time.Time) *StaffUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// SetName sets the "name" field.
func (su *StaffUpdate) SetName(s string) *StaffUpdate {
	su.mutation.SetName(s)
	return su
}

// SetNillableName sets the "name" field if the given value is not nil.
func (su *StaffUpdate) SetNillableName(s *string) *StaffUpdate {
	if s != nil {
		su.SetName(*s)
	}
	return su
}

// SetPosition sets the "position" field.
func (su *StaffUpdate) SetPosition(s string) *StaffUpdate {
	su.mutation.SetPosition(s)
	return su
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (su *StaffUpdate) SetNillablePosition(s *string) *StaffUpdate {
	if s != nil {
		su.SetPosition(*s)
	}
	return su
}

// SetContact sets the "contact" field.
func (su *StaffUpdate) SetContact(s string) *StaffUpdate {
	su.mutation.SetContact(s)
	return su
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (su *StaffUpdate) SetNillableContact(s *string) *StaffUpdate {
	if s != nil {
		su.SetContact(*s)
	}
	return su
}

// ClearContact clears the value of the "contact" field.
func (su *StaffUpdate) ClearContact() *StaffUpdate {
	su.mutation.ClearContact()
	return su
}

// SetPeriod sets the "period" field.
func (su *StaffUpdate) SetPeriod(s string) *StaffUpdate {
	su.mutation.SetPeriod(s)
	return su
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (su *StaffUpdate) SetNillablePeriod(s *string) *StaffUpdate {
	if s != nil {
		su.SetPeriod(*s)
	}
	return su
}

// ClearPeriod clears the value of the "period" field.
func (su *StaffUpdate) ClearPeriod() *StaffUpdate {
	su.mutation.ClearPeriod()
	return su
}

// Mutation returns the StaffMutation object of the builder.
func (su *StaffUpdate) Mutation() *StaffMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *StaffUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *StaffUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *StaffUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *StaffUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *StaffUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := staff.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *StaffUpdate) check() error {
	if v, ok := su.mutation.Name(); ok {
		if err := staff.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Staff.name": %w`, err)}
		}
	}
	if v, ok := su.mutation.Position(); ok {
		if err := staff.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Staff.position": %w`, err)}
		}
	}
	return nil
}

func (su *StaffUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(staff.Table, staff.Columns, sqlgraph.NewFieldSpec(staff.FieldID, field.TypeUint))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.IsActive(); ok {
		_spec.SetField(staff.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(staff.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := su.mutation.Name(); ok {
		_spec.SetField(staff.FieldName, field.TypeString, value)
	}
	if value, ok := su.mutation.Position(); ok {
		_spec.SetField(staff.FieldPosition, field.TypeString, value)
	}
	if value, ok := su.mutation.Contact(); ok {
		_spec.SetField(staff.FieldContact, field.TypeString, value)
	}
	if su.mutation.ContactCleared() {
		_spec.ClearField(staff.FieldContact, field.TypeString)
	}
	if value, ok := su.mutation.Period(); ok {
		_spec.SetField(staff.FieldPeriod, field.TypeString, value)
	}
	if su.mutation.PeriodCleared() {
		_spec.ClearField(staff.FieldPeriod, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// StaffUpdateOne is the builder for updating a single Staff entity.
type StaffUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StaffMutation
}

// SetIsActive sets the "is_active" field.
func (suo *StaffUpdateOne) SetIsActive(b bool) *StaffUpdateOne {
	suo.mutation.SetIsActive(b)
	return suo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (suo *StaffUpdateOne) SetNillableIsActive(b *bool) *StaffUpdateOne {
	if b != nil {
		suo.SetIsActive(*b)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *StaffUpdateOne) SetUpdatedAt(t time.Time) *StaffUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// SetName sets the "name" field.
func (suo *StaffUpdateOne) SetName(s string) *StaffUpdateOne {
	suo.mutation.SetName(s)
	return suo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (suo *StaffUpdateOne) SetNillableName(s *string) *StaffUpdateOne {
	if s != nil {
		suo.SetName(*s)
	}
	return suo
}

// SetPosition sets the "position" field.
func (suo *StaffUpdateOne) SetPosition(s string) *StaffUpdateOne {
	suo.mutation.SetPosition(s)
	return suo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (suo *StaffUpdateOne) SetNillablePosition(s *string) *StaffUpdateOne {
	if s != nil {
		suo.SetPosition(*s)
	}
	return suo
}

// SetContact sets the "contact" field.
func (suo *StaffUpdateOne) SetContact(s string) *StaffUpdateOne {
	suo.mutation.SetContact(s)
	return suo
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (suo *StaffUpdateOne) SetNillableContact(s *string) *StaffUpdateOne {
	if s != nil {
		suo.SetContact(*s)
	}
	return suo
}

// ClearContact clears the value of the "contact" field.
func (suo *StaffUpdateOne) ClearContact() *StaffUpdateOne {
	suo.mutation.ClearContact()
	return suo
}

// SetPeriod sets the "period" field.
func (suo *StaffUpdateOne) SetPeriod(s string) *StaffUpdateOne {
	suo.mutation.SetPeriod(s)
	return suo
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (suo *StaffUpdateOne) SetNillablePeriod(s *string) *StaffUpdateOne {
	if s != nil {
		suo.SetPeriod(*s)
	}
	return suo
}

// ClearPeriod clears the value of the "period" field.
func (suo *StaffUpdateOne) ClearPeriod() *StaffUpdateOne {
	suo.mutation.ClearPeriod()
	return suo
}

// Mutation returns the StaffMutation object of the builder.
func (suo *StaffUpdateOne) Mutation() *StaffMutation {
	return suo.mutation
}

// Where appends a list predicates to the StaffUpdate builder.
func (suo *StaffUpdateOne) Where(ps ...predicate.Staff) *StaffUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *StaffUpdateOne) Select(field string, fields ...string) *StaffUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Staff entity.
func (suo *StaffUpdateOne) Save(ctx context.Context) (*Staff, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *StaffUpdateOne) SaveX(ctx context.Context) *Staff {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *StaffUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *StaffUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *StaffUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := staff.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *StaffUpdateOne) check() error {
	if v, ok := suo.mutation.Name(); ok {
		if err := staff.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Staff.name": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Position(); ok {
		if err := staff.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Staff.position": %w`, err)}
		}
	}
	return nil
}

func (suo *StaffUpdateOne) sqlSave(ctx context.Context) (_node *Staff, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(staff.Table, staff.Columns, sqlgraph.NewFieldSpec(staff.FieldID, field.TypeUint))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Staff.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, staff.FieldID)
		for _, f := range fields {
			if !staff.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != staff.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.IsActive(); ok {
		_spec.SetField(staff.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(staff.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := suo.mutation.Name(); ok {
		_spec.SetField(staff.FieldName, field.TypeString, value)
	}
	if value, ok := suo.mutation.Position(); ok {
		_spec.SetField(staff.FieldPosition, field.TypeString, value)
	}
	if value, ok := suo.mutation.Contact(); ok {
		_spec.SetField(staff.FieldContact, field.TypeString, value)
	}
	if suo.mutation.ContactCleared() {
		_spec.ClearField(staff.FieldContact, field.TypeString)
	}
	if value, ok := suo.mutation.Period(); ok {
		_spec.SetField(staff.FieldPeriod, field.TypeString, value)
	}
	if suo.mutation.PeriodCleared() {
		_spec.ClearField(staff.FieldPeriod, field.TypeString)
	}
	_node = &Staff{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{staff.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
