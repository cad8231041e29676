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
	"github.com/anzhiyu-c/arsip-app/ent/advisor"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// AdvisorUpdate is the builder for updating Advisor entities.
type AdvisorUpdate struct {
	config
	hooks    []Hook
	mutation *AdvisorMutation
}

// Where appends a list predicates to the AdvisorUpdate builder.
func (au *AdvisorUpdate) Where(ps ...predicate.Advisor) *AdvisorUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetIsActive sets the "is_active" field.
func (au *AdvisorUpdate) SetIsActive(b bool) *AdvisorUpdate {
	au.mutation.SetIsActive(b)
	return au
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (au *AdvisorUpdate) SetNillableIsActive(b *bool) *AdvisorUpdate {
	if b != nil {
		au.SetIsActive(*b)
	}
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *AdvisorUpdate) SetUpdatedAt(t time.Time) *AdvisorUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// SetName sets the "name" field.
func (au *AdvisorUpdate) SetName(s string) *AdvisorUpdate {
	au.mutation.SetName(s)
	return au
}

// SetNillableName sets the "name" field if the given value is not nil.
func (au *AdvisorUpdate) SetNillableName(s *string) *AdvisorUpdate {
	if s != nil {
		au.SetName(*s)
	}
	return au
}

// SetRole sets the "role" field.
func (au *AdvisorUpdate) SetRole(s string) *AdvisorUpdate {
	au.mutation.SetRole(s)
	return au
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (au *AdvisorUpdate) SetNillableRole(s *string) *AdvisorUpdate {
	if s != nil {
		au.SetRole(*s)
	}
	return au
}

// ClearRole clears the value of the "role" field.
func (au *AdvisorUpdate) ClearRole() *AdvisorUpdate {
	au.mutation.ClearRole()
	return au
}

// SetContact sets the "contact" field.
func (au *AdvisorUpdate) SetContact(s string) *AdvisorUpdate {
	au.mutation.SetContact(s)
	return au
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (au *AdvisorUpdate) SetNillableContact(s *string) *AdvisorUpdate {
	if s != nil {
		au.SetContact(*s)
	}
	return au
}

// ClearContact clears the value of the "contact" field.
func (au *AdvisorUpdate) ClearContact() *AdvisorUpdate {
	au.mutation.ClearContact()
	return au
}

// SetNote sets the "note" field.
func (au *AdvisorUpdate) SetNote(s string) *AdvisorUpdate {
	au.mutation.SetNote(s)
	return au
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (au *AdvisorUpdate) SetNillableNote(s *string) *AdvisorUpdate {
	if s != nil {
		au.SetNote(*s)
	}
	return au
}

// ClearNote clears the value of the "note" field.
func (au *AdvisorUpdate) ClearNote() *AdvisorUpdate {
	au.mutation.ClearNote()
	return au
}

// Mutation returns the AdvisorMutation object of the builder.
func (au *AdvisorUpdate) Mutation() *AdvisorMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AdvisorUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AdvisorUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AdvisorUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AdvisorUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *AdvisorUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := advisor.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AdvisorUpdate) check() error {
	if v, ok := au.mutation.Name(); ok {
		if err := advisor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Advisor.name": %w`, err)}
		}
	}
	return nil
}

func (au *AdvisorUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(advisor.Table, advisor.Columns, sqlgraph.NewFieldSpec(advisor.FieldID, field.TypeUint))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.IsActive(); ok {
		_spec.SetField(advisor.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(advisor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := au.mutation.Name(); ok {
		_spec.SetField(advisor.FieldName, field.TypeString, value)
	}
	if value, ok := au.mutation.Role(); ok {
		_spec.SetField(advisor.FieldRole, field.TypeString, value)
	}
	if au.mutation.RoleCleared() {
		_spec.ClearField(advisor.FieldRole, field.TypeString)
	}
	if value, ok := au.mutation.Contact(); ok {
		_spec.SetField(advisor.FieldContact, field.TypeString, value)
	}
	if au.mutation.ContactCleared() {
		_spec.ClearField(advisor.FieldContact, field.TypeString)
	}
	if value, ok := au.mutation.Note(); ok {
		_spec.SetField(advisor.FieldNote, field.TypeString, value)
	}
	if au.mutation.NoteCleared() {
		_spec.ClearField(advisor.FieldNote, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advisor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AdvisorUpdateOne is the builder for updating a single Advisor entity.
type AdvisorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AdvisorMutation
}

// SetIsActive sets the "is_active" field.
func (auo *AdvisorUpdateOne) SetIsActive(b bool) *AdvisorUpdateOne {
	auo.mutation.SetIsActive(b)
	return auo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (auo *AdvisorUpdateOne) SetNillableIsActive(b *bool) *AdvisorUpdateOne {
	if b != nil {
		auo.SetIsActive(*b)
	}
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *AdvisorUpdateOne) SetUpdatedAt(t time.Time) *AdvisorUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// SetName sets the "name" field.
func (auo *AdvisorUpdateOne) SetName(s string) *AdvisorUpdateOne {
	auo.mutation.SetName(s)
	return auo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (auo *AdvisorUpdateOne) SetNillableName(s *string) *AdvisorUpdateOne {
	if s != nil {
		auo.SetName(*s)
	}
	return auo
}

// SetRole sets the "role" field.
func (auo *AdvisorUpdateOne) SetRole(s string) *AdvisorUpdateOne {
	auo.mutation.SetRole(s)
	return auo
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (auo *AdvisorUpdateOne) SetNillableRole(s *string) *AdvisorUpdateOne {
	if s != nil {
		auo.SetRole(*s)
	}
	return auo
}

// ClearRole clears the value of the "role" field.
func (auo *AdvisorUpdateOne) ClearRole() *AdvisorUpdateOne {
	auo.mutation.ClearRole()
	return auo
}

// SetContact sets the "contact" field.
func (auo *AdvisorUpdateOne) SetContact(s string) *AdvisorUpdateOne {
	auo.mutation.SetContact(s)
	return auo
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (auo *AdvisorUpdateOne) SetNillableContact(s *string) *AdvisorUpdateOne {
	if s != nil {
		auo.SetContact(*s)
	}
	return auo
}

// ClearContact clears the value of the "contact" field.
func (auo *AdvisorUpdateOne) ClearContact() *AdvisorUpdateOne {
	auo.mutation.ClearContact()
	return auo
}

// SetNote sets the "note" field.
func (auo *AdvisorUpdateOne) SetNote(s string) *AdvisorUpdateOne {
	auo.mutation.SetNote(s)
	return auo
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (auo *AdvisorUpdateOne) SetNillableNote(s *string) *AdvisorUpdateOne {
	if s != nil {
		auo.SetNote(*s)
	}
	return auo
}

// ClearNote clears the value of the "note" field.
func (auo *AdvisorUpdateOne) ClearNote() *AdvisorUpdateOne {
	auo.mutation.ClearNote()
	return auo
}

// Mutation returns the AdvisorMutation object of the builder.
func (auo *AdvisorUpdateOne) Mutation() *AdvisorMutation {
	return auo.mutation
}

// Where appends a list predicates to the AdvisorUpdate builder.
func (auo *AdvisorUpdateOne) Where(ps ...predicate.Advisor) *AdvisorUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AdvisorUpdateOne) Select(field string, fields ...string) *AdvisorUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Advisor entity.
func (auo *AdvisorUpdateOne) Save(ctx context.Context) (*Advisor, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AdvisorUpdateOne) SaveX(ctx context.Context) *Advisor {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AdvisorUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AdvisorUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *AdvisorUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := advisor.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AdvisorUpdateOne) check() error {
	if v, ok := auo.mutation.Name(); ok {
		if err := advisor.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Advisor.name": %w`, err)}
		}
	}
	return nil
}

func (auo *AdvisorUpdateOne) sqlSave(ctx context.Context) (_node *Advisor, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(advisor.Table, advisor.Columns, sqlgraph.NewFieldSpec(advisor.FieldID, field.TypeUint))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Advisor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, advisor.FieldID)
		for _, f := range fields {
			if !advisor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != advisor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.IsActive(); ok {
		_spec.SetField(advisor.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(advisor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := auo.mutation.Name(); ok {
		_spec.SetField(advisor.FieldName, field.TypeString, value)
	}
	if value, ok := auo.mutation.Role(); ok {
		_spec.SetField(advisor.FieldRole, field.TypeString, value)
	}
	if auo.mutation.RoleCleared() {
		_spec.ClearField(advisor.FieldRole, field.TypeString)
	}
	if value, ok := auo.mutation.Contact(); ok {
		_spec.SetField(advisor.FieldContact, field.TypeString, value)
	}
	if auo.mutation.ContactCleared() {
		_spec.ClearField(advisor.FieldContact, field.TypeString)
	}
	if value, ok := auo.mutation.Note(); ok {
		_spec.SetField(advisor.FieldNote, field.TypeString, value)
	}
	if auo.mutation.NoteCleared() {
		_spec.ClearField(advisor.FieldNote, field.TypeString)
	}
	_node = &Advisor{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{advisor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
