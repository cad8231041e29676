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
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/document"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// PartnerUpdate is the builder for updating Partner entities.
type PartnerUpdate struct {
	config
	hooks    []Hook
	mutation *PartnerMutation
}

// Where appends a list predicates to the PartnerUpdate builder.
func (pu *PartnerUpdate) Where(ps ...predicate.Partner) *PartnerUpdate {
	pu.mutation.Where(ps...)
	return pu
}

// SetIsActive sets the "is_active" field.
func (pu *PartnerUpdate) SetIsActive(b bool) *PartnerUpdate {
	pu.mutation.SetIsActive(b)
	return pu
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (pu *PartnerUpdate) SetNillableIsActive(b *bool) *PartnerUpdate {
	if b != nil {
		pu.SetIsActive(*b)
	}
	return pu
}

// SetUpdatedAt sets the "updated_at" field.
func (pu *PartnerUpdate) SetUpdatedAt(t time.Time) *PartnerUpdate {
	pu.mutation.SetUpdatedAt(t)
	return pu
}

// SetName sets the "name" field.
func (pu *PartnerUpdate) SetName(s string) *PartnerUpdate {
	pu.mutation.SetName(s)
	return pu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (pu *PartnerUpdate) SetNillableName(s *string) *PartnerUpdate {
	if s != nil {
		pu.SetName(*s)
	}
	return pu
}

// SetContact sets the "contact" field.
func (pu *PartnerUpdate) SetContact(s string) *PartnerUpdate {
	pu.mutation.SetContact(s)
	return pu
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (pu *PartnerUpdate) SetNillableContact(s *string) *PartnerUpdate {
	if s != nil {
		pu.SetContact(*s)
	}
	return pu
}

// ClearContact clears the value of the "contact" field.
func (pu *PartnerUpdate) ClearContact() *PartnerUpdate {
	pu.mutation.ClearContact()
	return pu
}

// SetNote sets the "note" field.
func (pu *PartnerUpdate) SetNote(s string) *PartnerUpdate {
	pu.mutation.SetNote(s)
	return pu
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (pu *PartnerUpdate) SetNillableNote(s *string) *PartnerUpdate {
	if s != nil {
		pu.SetNote(*s)
	}
	return pu
}

// ClearNote clears the value of the "note" field.
func (pu *PartnerUpdate) ClearNote() *PartnerUpdate {
	pu.mutation.ClearNote()
	return pu
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (pu *PartnerUpdate) AddDocumentIDs(ids ...uint) *PartnerUpdate {
	pu.mutation.AddDocumentIDs(ids...)
	return pu
}

// AddDocuments adds the "documents" edges to the Document entity.
func (pu *PartnerUpdate) AddDocuments(d ...*Document) *PartnerUpdate {
	ids := make([]uint, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return pu.AddDocumentIDs(ids...)
}

// AddAgendaIDs adds the "agendas" edge to the Agenda entity by IDs.
func (pu *PartnerUpdate) AddAgendaIDs(ids ...uint) *PartnerUpdate {
	pu.mutation.AddAgendaIDs(ids...)
	return pu
}

// AddAgendas adds the "agendas" edges to the Agenda entity.
func (pu *PartnerUpdate) AddAgendas(a ...*Agenda) *PartnerUpdate {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return pu.AddAgendaIDs(ids...)
}

// Mutation returns the PartnerMutation object of the builder.
func (pu *PartnerUpdate) Mutation() *PartnerMutation {
	return pu.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (pu *PartnerUpdate) ClearDocuments() *PartnerUpdate {
	pu.mutation.ClearDocuments()
	return pu
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (pu *PartnerUpdate) RemoveDocumentIDs(ids ...uint) *PartnerUpdate {
	pu.mutation.RemoveDocumentIDs(ids...)
	return pu
}

// RemoveDocuments removes "documents" edges to Document entities.
func (pu *PartnerUpdate) RemoveDocuments(d ...*Document) *PartnerUpdate {
	ids := make([]uint, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return pu.RemoveDocumentIDs(ids...)
}

// ClearAgendas clears all "agendas" edges to the Agenda entity.
func (pu *PartnerUpdate) ClearAgendas() *PartnerUpdate {
	pu.mutation.ClearAgendas()
	return pu
}

// RemoveAgendaIDs removes the "agendas" edge to Agenda entities by IDs.
func (pu *PartnerUpdate) RemoveAgendaIDs(ids ...uint) *PartnerUpdate {
	pu.mutation.RemoveAgendaIDs(ids...)
	return pu
}

// RemoveAgendas removes "agendas" edges to Agenda entities.
func (pu *PartnerUpdate) RemoveAgendas(a ...*Agenda) *PartnerUpdate {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return pu.RemoveAgendaIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pu *PartnerUpdate) Save(ctx context.Context) (int, error) {
	pu.defaults()
	return withHooks(ctx, pu.sqlSave, pu.mutation, pu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pu *PartnerUpdate) SaveX(ctx context.Context) int {
	affected, err := pu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pu *PartnerUpdate) Exec(ctx context.Context) error {
	_, err := pu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pu *PartnerUpdate) ExecX(ctx context.Context) {
	if err := pu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pu *PartnerUpdate) defaults() {
	if _, ok := pu.mutation.UpdatedAt(); !ok {
		v := partner.UpdateDefaultUpdatedAt()
		pu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pu *PartnerUpdate) check() error {
	if v, ok := pu.mutation.Name(); ok {
		if err := partner.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Partner.name": %w`, err)}
		}
	}
	return nil
}

func (pu *PartnerUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint))
	if ps := pu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pu.mutation.IsActive(); ok {
		_spec.SetField(partner.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := pu.mutation.UpdatedAt(); ok {
		_spec.SetField(partner.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := pu.mutation.Name(); ok {
		_spec.SetField(partner.FieldName, field.TypeString, value)
	}
	if value, ok := pu.mutation.Contact(); ok {
		_spec.SetField(partner.FieldContact, field.TypeString, value)
	}
	if pu.mutation.ContactCleared() {
		_spec.ClearField(partner.FieldContact, field.TypeString)
	}
	if value, ok := pu.mutation.Note(); ok {
		_spec.SetField(partner.FieldNote, field.TypeString, value)
	}
	if pu.mutation.NoteCleared() {
		_spec.ClearField(partner.FieldNote, field.TypeString)
	}
	if pu.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.DocumentsTable,
			Columns: []string{partner.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !pu.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.DocumentsTable,
			Columns: []string{partner.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.DocumentsTable,
			Columns: []string{partner.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if pu.mutation.AgendasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.AgendasTable,
			Columns: []string{partner.AgendasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.RemovedAgendasIDs(); len(nodes) > 0 && !pu.mutation.AgendasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.AgendasTable,
			Columns: []string{partner.AgendasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := pu.mutation.AgendasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.AgendasTable,
			Columns: []string{partner.AgendasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pu.mutation.done = true
	return n, nil
}

// PartnerUpdateOne is the builder for updating a single Partner entity.
type PartnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PartnerMutation
}

// SetIsActive sets the "is_active" field.
func (puo *PartnerUpdateOne) SetIsActive(b bool) *PartnerUpdateOne {
	puo.mutation.SetIsActive(b)
	return puo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (puo *PartnerUpdateOne) SetNillableIsActive(b *bool) *PartnerUpdateOne {
	if b != nil {
		puo.SetIsActive(*b)
	}
	return puo
}

// SetUpdatedAt sets the "updated_at" field.
func (puo *PartnerUpdateOne) SetUpdatedAt(t time.Time) *PartnerUpdateOne {
	puo.mutation.SetUpdatedAt(t)
	return puo
}

// SetName sets the "name" field.
func (puo *PartnerUpdateOne) SetName(s string) *PartnerUpdateOne {
	puo.mutation.SetName(s)
	return puo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (puo *PartnerUpdateOne) SetNillableName(s *string) *PartnerUpdateOne {
	if s != nil {
		puo.SetName(*s)
	}
	return puo
}

// SetContact sets the "contact" field.
func (puo *PartnerUpdateOne) SetContact(s string) *PartnerUpdateOne {
	puo.mutation.SetContact(s)
	return puo
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (puo *PartnerUpdateOne) SetNillableContact(s *string) *PartnerUpdateOne {
	if s != nil {
		puo.SetContact(*s)
	}
	return puo
}

// ClearContact clears the value of the "contact" field.
func (puo *PartnerUpdateOne) ClearContact() *PartnerUpdateOne {
	puo.mutation.ClearContact()
	return puo
}

// SetNote sets the "note" field.
func (puo *PartnerUpdateOne) SetNote(s string) *PartnerUpdateOne {
	puo.mutation.SetNote(s)
	return puo
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (puo *PartnerUpdateOne) SetNillableNote(s *string) *PartnerUpdateOne {
	if s != nil {
		puo.SetNote(*s)
	}
	return puo
}

// ClearNote clears the value of the "note" field.
func (puo *PartnerUpdateOne) ClearNote() *PartnerUpdateOne {
	puo.mutation.ClearNote()
	return puo
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (puo *PartnerUpdateOne) AddDocumentIDs(ids ...uint) *PartnerUpdateOne {
	puo.mutation.AddDocumentIDs(ids...)
	return puo
}

// AddDocuments adds the "documents" edges to the Document entity.
func (puo *PartnerUpdateOne) AddDocuments(d ...*Document) *PartnerUpdateOne {
	ids := make([]uint, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return puo.AddDocumentIDs(ids...)
}

// AddAgendaIDs adds the "agendas" edge to the Agenda entity by IDs.
func (puo *PartnerUpdateOne) AddAgendaIDs(ids ...uint) *PartnerUpdateOne {
	puo.mutation.AddAgendaIDs(ids...)
	return puo
}

// AddAgendas adds the "agendas" edges to the Agenda entity.
func (puo *PartnerUpdateOne) AddAgendas(a ...*Agenda) *PartnerUpdateOne {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return puo.AddAgendaIDs(ids...)
}

// Mutation returns the PartnerMutation object of the builder.
func (puo *PartnerUpdateOne) Mutation() *PartnerMutation {
	return puo.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (puo *PartnerUpdateOne) ClearDocuments() *PartnerUpdateOne {
	puo.mutation.ClearDocuments()
	return puo
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (puo *PartnerUpdateOne) RemoveDocumentIDs(ids ...uint) *PartnerUpdateOne {
	puo.mutation.RemoveDocumentIDs(ids...)
	return puo
}

// RemoveDocuments removes "documents" edges to Document entities.
func (puo *PartnerUpdateOne) RemoveDocuments(d ...*Document) *PartnerUpdateOne {
	ids := make([]uint, len(d))
	for i := range d {
		ids[i] = d[i].ID
	}
	return puo.RemoveDocumentIDs(ids...)
}

// ClearAgendas clears all "agendas" edges to the Agenda entity.
func (puo *PartnerUpdateOne) ClearAgendas() *PartnerUpdateOne {
	puo.mutation.ClearAgendas()
	return puo
}

// RemoveAgendaIDs removes the "agendas" edge to Agenda entities by IDs.
func (puo *PartnerUpdateOne) RemoveAgendaIDs(ids ...uint) *PartnerUpdateOne {
	puo.mutation.RemoveAgendaIDs(ids...)
	return puo
}

// RemoveAgendas removes "agendas" edges to Agenda entities.
func (puo *PartnerUpdateOne) RemoveAgendas(a ...*Agenda) *PartnerUpdateOne {
	ids := make([]uint, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return puo.RemoveAgendaIDs(ids...)
}

// Where appends a list predicates to the PartnerUpdate builder.
func (puo *PartnerUpdateOne) Where(ps ...predicate.Partner) *PartnerUpdateOne {
	puo.mutation.Where(ps...)
	return puo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (puo *PartnerUpdateOne) Select(field string, fields ...string) *PartnerUpdateOne {
	puo.fields = append([]string{field}, fields...)
	return puo
}

// Save executes the query and returns the updated Partner entity.
func (puo *PartnerUpdateOne) Save(ctx context.Context) (*Partner, error) {
	puo.defaults()
	return withHooks(ctx, puo.sqlSave, puo.mutation, puo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (puo *PartnerUpdateOne) SaveX(ctx context.Context) *Partner {
	node, err := puo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (puo *PartnerUpdateOne) Exec(ctx context.Context) error {
	_, err := puo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (puo *PartnerUpdateOne) ExecX(ctx context.Context) {
	if err := puo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (puo *PartnerUpdateOne) defaults() {
	if _, ok := puo.mutation.UpdatedAt(); !ok {
		v := partner.UpdateDefaultUpdatedAt()
		puo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (puo *PartnerUpdateOne) check() error {
	if v, ok := puo.mutation.Name(); ok {
		if err := partner.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Partner.name": %w`, err)}
		}
	}
	return nil
}

func (puo *PartnerUpdateOne) sqlSave(ctx context.Context) (_node *Partner, err error) {
	if err := puo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint))
	id, ok := puo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Partner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := puo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partner.FieldID)
		for _, f := range fields {
			if !partner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != partner.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := puo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := puo.mutation.IsActive(); ok {
		_spec.SetField(partner.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := puo.mutation.UpdatedAt(); ok {
		_spec.SetField(partner.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := puo.mutation.Name(); ok {
		_spec.SetField(partner.FieldName, field.TypeString, value)
	}
	if value, ok := puo.mutation.Contact(); ok {
		_spec.SetField(partner.FieldContact, field.TypeString, value)
	}
	if puo.mutation.ContactCleared() {
		_spec.ClearField(partner.FieldContact, field.TypeString)
	}
	if value, ok := puo.mutation.Note(); ok {
		_spec.SetField(partner.FieldNote, field.TypeString, value)
	}
	if puo.mutation.NoteCleared() {
		_spec.ClearField(partner.FieldNote, field.TypeString)
	}
	if puo.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.DocumentsTable,
			Columns: []string{partner.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !puo.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.DocumentsTable,
			Columns: []string{partner.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.DocumentsTable,
			Columns: []string{partner.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if puo.mutation.AgendasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.AgendasTable,
			Columns: []string{partner.AgendasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.RemovedAgendasIDs(); len(nodes) > 0 && !puo.mutation.AgendasCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.AgendasTable,
			Columns: []string{partner.AgendasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := puo.mutation.AgendasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   partner.AgendasTable,
			Columns: []string{partner.AgendasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Partner{config: puo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, puo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{partner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	puo.mutation.done = true
	return _node, nil
}
