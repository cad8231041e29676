// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// AgendaQuery is the builder for querying Agenda entities.
type AgendaQuery struct {
	config
	ctx         *QueryContext
	order       []agenda.OrderOption
	inters      []Interceptor
	predicates  []predicate.Agenda
	withPartner *PartnerQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AgendaQuery builder.
func (aq *AgendaQuery) Where(ps ...predicate.Agenda) *AgendaQuery {
	aq.predicates = append(aq.predicates, ps...)
	return aq
}

// Limit the number of records to be returned by this query.
func (aq *AgendaQuery) Limit(limit int) *AgendaQuery {
	aq.ctx.Limit = &limit
	return aq
}

// Offset to start from.
func (aq *AgendaQuery) Offset(offset int) *AgendaQuery {
	aq.ctx.Offset = &offset
	return aq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (aq *AgendaQuery) Unique(unique bool) *AgendaQuery {
	aq.ctx.Unique = &unique
	return aq
}

// Order specifies how the records should be ordered.
func (aq *AgendaQuery) Order(o ...agenda.OrderOption) *AgendaQuery {
	aq.order = append(aq.order, o...)
	return aq
}

// QueryPartner chains the current query on the "partner" edge.
func (aq *AgendaQuery) QueryPartner() *PartnerQuery {
	query := (&PartnerClient{config: aq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := aq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := aq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(agenda.Table, agenda.FieldID, selector),
			sqlgraph.To(partner.Table, partner.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenda.PartnerTable, agenda.PartnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(aq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Agenda entity from the query.
// Returns a *NotFoundError when no Agenda was found.
func (aq *AgendaQuery) First(ctx context.Context) (*Agenda, error) {
	nodes, err := aq.Limit(1).All(setContextOp(ctx, aq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{agenda.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (aq *AgendaQuery) FirstX(ctx context.Context) *Agenda {
	node, err := aq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Agenda ID from the query.
// Returns a *NotFoundError when no Agenda ID was found.
func (aq *AgendaQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = aq.Limit(1).IDs(setContextOp(ctx, aq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{agenda.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (aq *AgendaQuery) FirstIDX(ctx context.Context) uint {
	id, err := aq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Agenda entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Agenda entity is found.
// Returns a *NotFoundError when no Agenda entities are found.
func (aq *AgendaQuery) Only(ctx context.Context) (*Agenda, error) {
	nodes, err := aq.Limit(2).All(setContextOp(ctx, aq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{agenda.Label}
	default:
		return nil, &NotSingularError{agenda.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (aq *AgendaQuery) OnlyX(ctx context.Context) *Agenda {
	node, err := aq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Agenda ID in the query.
// Returns a *NotSingularError when more than one Agenda ID is found.
// Returns a *NotFoundError when no entities are found.
func (aq *AgendaQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = aq.Limit(2).IDs(setContextOp(ctx, aq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{agenda.Label}
	default:
		err = &NotSingularError{agenda.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (aq *AgendaQuery) OnlyIDX(ctx context.Context) uint {
	id, err := aq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Agendas.
func (aq *AgendaQuery) All(ctx context.Context) ([]*Agenda, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryAll)
	if err := aq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Agenda, *AgendaQuery]()
	return withInterceptors[[]*Agenda](ctx, aq, qr, aq.inters)
}

// AllX is like All, but panics if an error occurs.
func (aq *AgendaQuery) AllX(ctx context.Context) []*Agenda {
	nodes, err := aq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Agenda IDs.
func (aq *AgendaQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if aq.ctx.Unique == nil && aq.path != nil {
		aq.Unique(true)
	}
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryIDs)
	if err = aq.Select(agenda.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (aq *AgendaQuery) IDsX(ctx context.Context) []uint {
	ids, err := aq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (aq *AgendaQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryCount)
	if err := aq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, aq, querierCount[*AgendaQuery](), aq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (aq *AgendaQuery) CountX(ctx context.Context) int {
	count, err := aq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (aq *AgendaQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, aq.ctx, ent.OpQueryExist)
	switch _, err := aq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (aq *AgendaQuery) ExistX(ctx context.Context) bool {
	exist, err := aq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AgendaQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (aq *AgendaQuery) Clone() *AgendaQuery {
	if aq == nil {
		return nil
	}
	return &AgendaQuery{
		config:      aq.config,
		ctx:         aq.ctx.Clone(),
		order:       append([]agenda.OrderOption{}, aq.order...),
		inters:      append([]Interceptor{}, aq.inters...),
		predicates:  append([]predicate.Agenda{}, aq.predicates...),
		withPartner: aq.withPartner.Clone(),
		// clone intermediate query.
		sql:  aq.sql.Clone(),
		path: aq.path,
	}
}

// WithPartner tells the query-builder to eager-load the nodes that are connected to
// the "partner" edge. The optional arguments are used to configure the query builder of the edge.
func (aq *AgendaQuery) WithPartner(opts ...func(*PartnerQuery)) *AgendaQuery {
	query := (&PartnerClient{config: aq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	aq.withPartner = query
	return aq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		IsActive bool `json:"is_active,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Agenda.Query().
//		GroupBy(agenda.FieldIsActive).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (aq *AgendaQuery) GroupBy(field string, fields ...string) *AgendaGroupBy {
	aq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AgendaGroupBy{build: aq}
	grbuild.flds = &aq.ctx.Fields
	grbuild.label = agenda.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		IsActive bool `json:"is_active,omitempty"`
//	}
//
//	client.Agenda.Query().
//		Select(agenda.FieldIsActive).
//		Scan(ctx, &v)
func (aq *AgendaQuery) Select(fields ...string) *AgendaSelect {
	aq.ctx.Fields = append(aq.ctx.Fields, fields...)
	sbuild := &AgendaSelect{AgendaQuery: aq}
	sbuild.label = agenda.Label
	sbuild.flds, sbuild.scan = &aq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AgendaSelect configured with the given aggregations.
func (aq *AgendaQuery) Aggregate(fns ...AggregateFunc) *AgendaSelect {
	return aq.Select().Aggregate(fns...)
}

func (aq *AgendaQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range aq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, aq); err != nil {
				return err
			}
		}
	}
	for _, f := range aq.ctx.Fields {
		if !agenda.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if aq.path != nil {
		prev, err := aq.path(ctx)
		if err != nil {
			return err
		}
		aq.sql = prev
	}
	return nil
}

func (aq *AgendaQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Agenda, error) {
	var (
		nodes       = []*Agenda{}
		_spec       = aq.querySpec()
		loadedTypes = [1]bool{
			aq.withPartner != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Agenda).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Agenda{config: aq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, aq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := aq.withPartner; query != nil {
		if err := aq.loadPartner(ctx, query, nodes, nil,
			func(n *Agenda, e *Partner) { n.Edges.Partner = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (aq *AgendaQuery) loadPartner(ctx context.Context, query *PartnerQuery, nodes []*Agenda, init func(*Agenda), assign func(*Agenda, *Partner)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*Agenda)
	for i := range nodes {
		if nodes[i].PartnerID == nil {
			continue
		}
		fk := *nodes[i].PartnerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(partner.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "partner_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (aq *AgendaQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := aq.querySpec()
	_spec.Node.Columns = aq.ctx.Fields
	if len(aq.ctx.Fields) > 0 {
		_spec.Unique = aq.ctx.Unique != nil && *aq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, aq.driver, _spec)
}

func (aq *AgendaQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(agenda.Table, agenda.Columns, sqlgraph.NewFieldSpec(agenda.FieldID, field.TypeUint))
	_spec.From = aq.sql
	if unique := aq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if aq.path != nil {
		_spec.Unique = true
	}
	if fields := aq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenda.FieldID)
		for i := range fields {
			if fields[i] != agenda.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if aq.withPartner != nil {
			_spec.Node.AddColumnOnce(agenda.FieldPartnerID)
		}
	}
	if ps := aq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := aq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := aq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := aq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (aq *AgendaQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(aq.driver.Dialect())
	t1 := builder.Table(agenda.Table)
	columns := aq.ctx.Fields
	if len(columns) == 0 {
		columns = agenda.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if aq.sql != nil {
		selector = aq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if aq.ctx.Unique != nil && *aq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range aq.predicates {
		p(selector)
	}
	for _, p := range aq.order {
		p(selector)
	}
	if offset := aq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := aq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AgendaGroupBy is the group-by builder for Agenda entities.
type AgendaGroupBy struct {
	selector
	build *AgendaQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (agb *AgendaGroupBy) Aggregate(fns ...AggregateFunc) *AgendaGroupBy {
	agb.fns = append(agb.fns, fns...)
	return agb
}

// Scan applies the selector query and scans the result into the given value.
func (agb *AgendaGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, agb.build.ctx, ent.OpQueryGroupBy)
	if err := agb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgendaQuery, *AgendaGroupBy](ctx, agb.build, agb, agb.build.inters, v)
}

func (agb *AgendaGroupBy) sqlScan(ctx context.Context, root *AgendaQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(agb.fns))
	for _, fn := range agb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*agb.flds)+len(agb.fns))
		for _, f := range *agb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*agb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := agb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AgendaSelect is the builder for selecting fields of Agenda entities.
type AgendaSelect struct {
	*AgendaQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (as *AgendaSelect) Aggregate(fns ...AggregateFunc) *AgendaSelect {
	as.fns = append(as.fns, fns...)
	return as
}

// Scan applies the selector query and scans the result into the given value.
func (as *AgendaSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, as.ctx, ent.OpQuerySelect)
	if err := as.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AgendaQuery, *AgendaSelect](ctx, as.AgendaQuery, as, as.inters, v)
}

func (as *AgendaSelect) sqlScan(ctx context.Context, root *AgendaQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(as.fns))
	for _, fn := range as.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*as.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := as.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
