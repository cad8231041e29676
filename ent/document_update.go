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
	"github.com/anzhiyu-c/arsip-app/ent/document"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (du *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	du.mutation.Where(ps...)
	return du
}

// SetIsActive sets the "is_active" field.
func (du *DocumentUpdate) SetIsActive(b bool) *DocumentUpdate {
	du.mutation.SetIsActive(b)
	return du
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableIsActive(b *bool) *DocumentUpdate {
	if b != nil {
		du.SetIsActive(*b)
	}
	return du
}

// SetUpdatedAt sets the "updated_at" field.
func (du *DocumentUpdate) SetUpdatedAt(t time.Time) *DocumentUpdate {
	du.mutation.SetUpdatedAt(t)
	return du
}

// SetTitle sets the "title" field.
func (du *DocumentUpdate) SetTitle(s string) *DocumentUpdate {
	du.mutation.SetTitle(s)
	return du
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableTitle(s *string) *DocumentUpdate {
	if s != nil {
		du.SetTitle(*s)
	}
	return du
}

// SetDocType sets the "doc_type" field.
func (du *DocumentUpdate) SetDocType(dt document.DocType) *DocumentUpdate {
	du.mutation.SetDocType(dt)
	return du
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableDocType(dt *document.DocType) *DocumentUpdate {
	if dt != nil {
		du.SetDocType(*dt)
	}
	return du
}

// SetDocDate sets the "doc_date" field.
func (du *DocumentUpdate) SetDocDate(t time.Time) *DocumentUpdate {
	du.mutation.SetDocDate(t)
	return du
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableDocDate(t *time.Time) *DocumentUpdate {
	if t != nil {
		du.SetDocDate(*t)
	}
	return du
}

// SetPartnerID sets the "partner_id" field.
func (du *DocumentUpdate) SetPartnerID(u uint) *DocumentUpdate {
	du.mutation.SetPartnerID(u)
	return du
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (du *DocumentUpdate) SetNillablePartnerID(u *uint) *DocumentUpdate {
	if u != nil {
		du.SetPartnerID(*u)
	}
	return du
}

// ClearPartnerID clears the value of the "partner_id" field.
func (du *DocumentUpdate) ClearPartnerID() *DocumentUpdate {
	du.mutation.ClearPartnerID()
	return du
}

// SetNote sets the "note" field.
func (du *DocumentUpdate) SetNote(s string) *DocumentUpdate {
	du.mutation.SetNote(s)
	return du
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableNote(s *string) *DocumentUpdate {
	if s != nil {
		du.SetNote(*s)
	}
	return du
}

// ClearNote clears the value of the "note" field.
func (du *DocumentUpdate) ClearNote() *DocumentUpdate {
	du.mutation.ClearNote()
	return du
}

// SetCreatedBy sets the "created_by" field.
func (du *DocumentUpdate) SetCreatedBy(s string) *DocumentUpdate {
	du.mutation.SetCreatedBy(s)
	return du
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableCreatedBy(s *string) *DocumentUpdate {
	if s != nil {
		du.SetCreatedBy(*s)
	}
	return du
}

// SetPartner sets the "partner" edge to the Partner entity.
func (du *DocumentUpdate) SetPartner(p *Partner) *DocumentUpdate {
	return du.SetPartnerID(p.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (du *DocumentUpdate) Mutation() *DocumentMutation {
	return du.mutation
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (du *DocumentUpdate) ClearPartner() *DocumentUpdate {
	du.mutation.ClearPartner()
	return du
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (du *DocumentUpdate) Save(ctx context.Context) (int, error) {
	du.defaults()
	return withHooks(ctx, du.sqlSave, du.mutation, du.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (du *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := du.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (du *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := du.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (du *DocumentUpdate) ExecX(ctx context.Context) {
	if err := du.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (du *DocumentUpdate) defaults() {
	if _, ok := du.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		du.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (du *DocumentUpdate) check() error {
	if v, ok := du.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := du.mutation.DocType(); ok {
		if err := document.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Document.doc_type": %w`, err)}
		}
	}
	return nil
}

func (du *DocumentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := du.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint))
	if ps := du.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := du.mutation.IsActive(); ok {
		_spec.SetField(document.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := du.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := du.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := du.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeEnum, value)
	}
	if value, ok := du.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeTime, value)
	}
	if value, ok := du.mutation.Note(); ok {
		_spec.SetField(document.FieldNote, field.TypeString, value)
	}
	if du.mutation.NoteCleared() {
		_spec.ClearField(document.FieldNote, field.TypeString)
	}
	if value, ok := du.mutation.CreatedBy(); ok {
		_spec.SetField(document.FieldCreatedBy, field.TypeString, value)
	}
	if du.mutation.PartnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.PartnerTable,
			Columns: []string{document.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.PartnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.PartnerTable,
			Columns: []string{document.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, du.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	du.mutation.done = true
	return n, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetIsActive sets the "is_active" field.
func (duo *DocumentUpdateOne) SetIsActive(b bool) *DocumentUpdateOne {
	duo.mutation.SetIsActive(b)
	return duo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableIsActive(b *bool) *DocumentUpdateOne {
	if b != nil {
		duo.SetIsActive(*b)
	}
	return duo
}

// SetUpdatedAt sets the "updated_at" field.
func (duo *DocumentUpdateOne) SetUpdatedAt(t time.Time) *DocumentUpdateOne {
	duo.mutation.SetUpdatedAt(t)
	return duo
}

// SetTitle sets the "title" field.
func (duo *DocumentUpdateOne) SetTitle(s string) *DocumentUpdateOne {
	duo.mutation.SetTitle(s)
	return duo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableTitle(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetTitle(*s)
	}
	return duo
}

// SetDocType sets the "doc_type" field.
func (duo *DocumentUpdateOne) SetDocType(dt document.DocType) *DocumentUpdateOne {
	duo.mutation.SetDocType(dt)
	return duo
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableDocType(dt *document.DocType) *DocumentUpdateOne {
	if dt != nil {
		duo.SetDocType(*dt)
	}
	return duo
}

// SetDocDate sets the "doc_date" field.
func (duo *DocumentUpdateOne) SetDocDate(t time.Time) *DocumentUpdateOne {
	duo.mutation.SetDocDate(t)
	return duo
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableDocDate(t *time.Time) *DocumentUpdateOne {
	if t != nil {
		duo.SetDocDate(*t)
	}
	return duo
}

// SetPartnerID sets the "partner_id" field.
func (duo *DocumentUpdateOne) SetPartnerID(u uint) *DocumentUpdateOne {
	duo.mutation.SetPartnerID(u)
	return duo
}

// SetNillablePartnerID sets the "partner_id" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillablePartnerID(u *uint) *DocumentUpdateOne {
	if u != nil {
		duo.SetPartnerID(*u)
	}
	return duo
}

// ClearPartnerID clears the value of the "partner_id" field.
func (duo *DocumentUpdateOne) ClearPartnerID() *DocumentUpdateOne {
	duo.mutation.ClearPartnerID()
	return duo
}

// SetNote sets the "note" field.
func (duo *DocumentUpdateOne) SetNote(s string) *DocumentUpdateOne {
	duo.mutation.SetNote(s)
	return duo
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableNote(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetNote(*s)
	}
	return duo
}

// ClearNote clears the value of the "note" field.
func (duo *DocumentUpdateOne) ClearNote() *DocumentUpdateOne {
	duo.mutation.ClearNote()
	return duo
}

// SetCreatedBy sets the "created_by" field.
func (duo *DocumentUpdateOne) SetCreatedBy(s string) *DocumentUpdateOne {
	duo.mutation.SetCreatedBy(s)
	return duo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableCreatedBy(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetCreatedBy(*s)
	}
	return duo
}

// SetPartner sets the "partner" edge to the Partner entity.
func (duo *DocumentUpdateOne) SetPartner(p *Partner) *DocumentUpdateOne {
	return duo.SetPartnerID(p.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (duo *DocumentUpdateOne) Mutation() *DocumentMutation {
	return duo.mutation
}

// ClearPartner clears the "partner" edge to the Partner entity.
func (duo *DocumentUpdateOne) ClearPartner() *DocumentUpdateOne {
	duo.mutation.ClearPartner()
	return duo
}

// Where appends a list predicates to the DocumentUpdate builder.
func (duo *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	duo.mutation.Where(ps...)
	return duo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (duo *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	duo.fields = append([]string{field}, fields...)
	return duo
}

// Save executes the query and returns the updated Document entity.
func (duo *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	duo.defaults()
	return withHooks(ctx, duo.sqlSave, duo.mutation, duo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duo *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := duo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (duo *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := duo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duo *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := duo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (duo *DocumentUpdateOne) defaults() {
	if _, ok := duo.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		duo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duo *DocumentUpdateOne) check() error {
	if v, ok := duo.mutation.Title(); ok {
		if err := document.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Document.title": %w`, err)}
		}
	}
	if v, ok := duo.mutation.DocType(); ok {
		if err := document.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Document.doc_type": %w`, err)}
		}
	}
	return nil
}

func (duo *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := duo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint))
	id, ok := duo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := duo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := duo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := duo.mutation.IsActive(); ok {
		_spec.SetField(document.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := duo.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := duo.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := duo.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeEnum, value)
	}
	if value, ok := duo.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeTime, value)
	}
	if value, ok := duo.mutation.Note(); ok {
		_spec.SetField(document.FieldNote, field.TypeString, value)
	}
	if duo.mutation.NoteCleared() {
		_spec.ClearField(document.FieldNote, field.TypeString)
	}
	if value, ok := duo.mutation.CreatedBy(); ok {
		_spec.SetField(document.FieldCreatedBy, field.TypeString, value)
	}
	if duo.mutation.PartnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.PartnerTable,
			Columns: []string{document.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.PartnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.PartnerTable,
			Columns: []string{document.PartnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: duo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, duo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	duo.mutation.done = true
	return _node, nil
}
