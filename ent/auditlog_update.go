// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/auditlog"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// AuditLogUpdate is the builder for updating AuditLog entities.
type AuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogMutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (alu *AuditLogUpdate) Where(ps ...predicate.AuditLog) *AuditLogUpdate {
	alu.mutation.Where(ps...)
	return alu
}

// SetUserID sets the "user_id" field.
func (alu *AuditLogUpdate) SetUserID(s string) *AuditLogUpdate {
	alu.mutation.SetUserID(s)
	return alu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableUserID(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetUserID(*s)
	}
	return alu
}

// SetTableName sets the "table_name" field.
func (alu *AuditLogUpdate) SetTableName(s string) *AuditLogUpdate {
	alu.mutation.SetTableName(s)
	return alu
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableTableName(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetTableName(*s)
	}
	return alu
}

// SetAction sets the "action" field.
func (alu *AuditLogUpdate) SetAction(a auditlog.Action) *AuditLogUpdate {
	alu.mutation.SetAction(a)
	return alu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableAction(a *auditlog.Action) *AuditLogUpdate {
	if a != nil {
		alu.SetAction(*a)
	}
	return alu
}

// SetRecordID sets the "record_id" field.
func (alu *AuditLogUpdate) SetRecordID(s string) *AuditLogUpdate {
	alu.mutation.SetRecordID(s)
	return alu
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableRecordID(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetRecordID(*s)
	}
	return alu
}

// Mutation returns the AuditLogMutation object of the builder.
func (alu *AuditLogUpdate) Mutation() *AuditLogMutation {
	return alu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (alu *AuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, alu.sqlSave, alu.mutation, alu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (alu *AuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := alu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (alu *AuditLogUpdate) Exec(ctx context.Context) error {
	_, err := alu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alu *AuditLogUpdate) ExecX(ctx context.Context) {
	if err := alu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alu *AuditLogUpdate) check() error {
	if v, ok := alu.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	return nil
}

func (alu *AuditLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := alu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUint))
	if ps := alu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := alu.mutation.UserID(); ok {
		_spec.SetField(auditlog.FieldUserID, field.TypeString, value)
	}
	if value, ok := alu.mutation.TableName(); ok {
		_spec.SetField(auditlog.FieldTableName, field.TypeString, value)
	}
	if value, ok := alu.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := alu.mutation.RecordID(); ok {
		_spec.SetField(auditlog.FieldRecordID, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, alu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	alu.mutation.done = true
	return n, nil
}

// AuditLogUpdateOne is the builder for updating a single AuditLog entity.
type AuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogMutation
}

// SetUserID sets the "user_id" field.
func (aluo *AuditLogUpdateOne) SetUserID(s string) *AuditLogUpdateOne {
	aluo.mutation.SetUserID(s)
	return aluo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableUserID(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetUserID(*s)
	}
	return aluo
}

// SetTableName sets the "table_name" field.
func (aluo *AuditLogUpdateOne) SetTableName(s string) *AuditLogUpdateOne {
	aluo.mutation.SetTableName(s)
	return aluo
}

// SetNillableTableName sets the "table_name" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableTableName(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetTableName(*s)
	}
	return aluo
}

// SetAction sets the "action" field.
func (aluo *AuditLogUpdateOne) SetAction(a auditlog.Action) *AuditLogUpdateOne {
	aluo.mutation.SetAction(a)
	return aluo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableAction(a *auditlog.Action) *AuditLogUpdateOne {
	if a != nil {
		aluo.SetAction(*a)
	}
	return aluo
}

// SetRecordID sets the "record_id" field.
func (aluo *AuditLogUpdateOne) SetRecordID(s string) *AuditLogUpdateOne {
	aluo.mutation.SetRecordID(s)
	return aluo
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableRecordID(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetRecordID(*s)
	}
	return aluo
}

// Mutation returns the AuditLogMutation object of the builder.
func (aluo *AuditLogUpdateOne) Mutation() *AuditLogMutation {
	return aluo.mutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (aluo *AuditLogUpdateOne) Where(ps ...predicate.AuditLog) *AuditLogUpdateOne {
	aluo.mutation.Where(ps...)
	return aluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aluo *AuditLogUpdateOne) Select(field string, fields ...string) *AuditLogUpdateOne {
	aluo.fields = append([]string{field}, fields...)
	return aluo
}

// Save executes the query and returns the updated AuditLog entity.
func (aluo *AuditLogUpdateOne) Save(ctx context.Context) (*AuditLog, error) {
	return withHooks(ctx, aluo.sqlSave, aluo.mutation, aluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aluo *AuditLogUpdateOne) SaveX(ctx context.Context) *AuditLog {
	node, err := aluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aluo *AuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := aluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aluo *AuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := aluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aluo *AuditLogUpdateOne) check() error {
	if v, ok := aluo.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	return nil
}

func (aluo *AuditLogUpdateOne) sqlSave(ctx context.Context) (_node *AuditLog, err error) {
	if err := aluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeUint))
	id, ok := aluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlog.FieldID)
		for _, f := range fields {
			if !auditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aluo.mutation.UserID(); ok {
		_spec.SetField(auditlog.FieldUserID, field.TypeString, value)
	}
	if value, ok := aluo.mutation.TableName(); ok {
		_spec.SetField(auditlog.FieldTableName, field.TypeString, value)
	}
	if value, ok := aluo.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := aluo.mutation.RecordID(); ok {
		_spec.SetField(auditlog.FieldRecordID, field.TypeString, value)
	}
	_node = &AuditLog{config: aluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aluo.mutation.done = true
	return _node, nil
}
