// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/document"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
	"github.com/anzhiyu-c/arsip-app/ent/predicate"
)

// PartnerQuery is the builder for querying Partner entities.
type PartnerQuery struct {
	config
	ctx           *QueryContext
	order         []partner.OrderOption
	inters        []Interceptor
	predicates    []predicate.Partner
	withDocuments *DocumentQuery
	withAgendas   *AgendaQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PartnerQuery builder.
func (pq *PartnerQuery) Where(ps ...predicate.Partner) *PartnerQuery {
	pq.predicates = append(pq.predicates, ps...)
	return pq
}

// Limit the number of records to be returned by this query.
func (pq *PartnerQuery) Limit(limit int) *PartnerQuery {
	pq.ctx.Limit = &limit
	return pq
}

// Offset to start from.
func (pq *PartnerQuery) Offset(offset int) *PartnerQuery {
	pq.ctx.Offset = &offset
	return pq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (pq *PartnerQuery) Unique(unique bool) *PartnerQuery {
	pq.ctx.Unique = &unique
	return pq
}

// Order specifies how the records should be ordered.
func (pq *PartnerQuery) Order(o ...partner.OrderOption) *PartnerQuery {
	pq.order = append(pq.order, o...)
	return pq
}

// QueryDocuments chains the current query on the "documents" edge.
func (pq *PartnerQuery) QueryDocuments() *DocumentQuery {
	query := (&DocumentClient{config: pq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(partner.Table, partner.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, partner.DocumentsTable, partner.DocumentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(pq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgendas chains the current query on the "agendas" edge.
func (pq *PartnerQuery) QueryAgendas() *AgendaQuery {
	query := (&AgendaClient{config: pq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := pq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := pq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(partner.Table, partner.FieldID, selector),
			sqlgraph.To(agenda.Table, agenda.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, partner.AgendasTable, partner.AgendasColumn),
		)
		fromU = sqlgraph.SetNeighbors(pq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Partner entity from the query.
// Returns a *NotFoundError when no Partner was found.
func (pq *PartnerQuery) First(ctx context.Context) (*Partner, error) {
	nodes, err := pq.Limit(1).All(setContextOp(ctx, pq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{partner.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (pq *PartnerQuery) FirstX(ctx context.Context) *Partner {
	node, err := pq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Partner ID from the query.
// Returns a *NotFoundError when no Partner ID was found.
func (pq *PartnerQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = pq.Limit(1).IDs(setContextOp(ctx, pq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{partner.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (pq *PartnerQuery) FirstIDX(ctx context.Context) uint {
	id, err := pq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Partner entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Partner entity is found.
// Returns a *NotFoundError when no Partner entities are found.
func (pq *PartnerQuery) Only(ctx context.Context) (*Partner, error) {
	nodes, err := pq.Limit(2).All(setContextOp(ctx, pq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{partner.Label}
	default:
		return nil, &NotSingularError{partner.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (pq *PartnerQuery) OnlyX(ctx context.Context) *Partner {
	node, err := pq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Partner ID in the query.
// Returns a *NotSingularError when more than one Partner ID is found.
// Returns a *NotFoundError when no entities are found.
func (pq *PartnerQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = pq.Limit(2).IDs(setContextOp(ctx, pq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{partner.Label}
	default:
		err = &NotSingularError{partner.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (pq *PartnerQuery) OnlyIDX(ctx context.Context) uint {
	id, err := pq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Partners.
func (pq *PartnerQuery) All(ctx context.Context) ([]*Partner, error) {
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryAll)
	if err := pq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Partner, *PartnerQuery]()
	return withInterceptors[[]*Partner](ctx, pq, qr, pq.inters)
}

// AllX is like All, but panics if an error occurs.
func (pq *PartnerQuery) AllX(ctx context.Context) []*Partner {
	nodes, err := pq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Partner IDs.
func (pq *PartnerQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if pq.ctx.Unique == nil && pq.path != nil {
		pq.Unique(true)
	}
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryIDs)
	if err = pq.Select(partner.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (pq *PartnerQuery) IDsX(ctx context.Context) []uint {
	ids, err := pq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (pq *PartnerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryCount)
	if err := pq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, pq, querierCount[*PartnerQuery](), pq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (pq *PartnerQuery) CountX(ctx context.Context) int {
	count, err := pq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (pq *PartnerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, pq.ctx, ent.OpQueryExist)
	switch _, err := pq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (pq *PartnerQuery) ExistX(ctx context.Context) bool {
	exist, err := pq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PartnerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (pq *PartnerQuery) Clone() *PartnerQuery {
	if pq == nil {
		return nil
	}
	return &PartnerQuery{
		config:        pq.config,
		ctx:           pq.ctx.Clone(),
		order:         append([]partner.OrderOption{}, pq.order...),
		inters:        append([]Interceptor{}, pq.inters...),
		predicates:    append([]predicate.Partner{}, pq.predicates...),
		withDocuments: pq.withDocuments.Clone(),
		withAgendas:   pq.withAgendas.Clone(),
		// clone intermediate query.
		sql:  pq.sql.Clone(),
		path: pq.path,
	}
}

// WithDocuments tells the query-builder to eager-load the nodes that are connected to
// the "documents" edge. The optional arguments are used to configure the query builder of the edge.
func (pq *PartnerQuery) WithDocuments(opts ...func(*DocumentQuery)) *PartnerQuery {
	query := (&DocumentClient{config: pq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pq.withDocuments = query
	return pq
}

// WithAgendas tells the query-builder to eager-load the nodes that are connected to
// the "agendas" edge. The optional arguments are used to configure the query builder of the edge.
func (pq *PartnerQuery) WithAgendas(opts ...func(*AgendaQuery)) *PartnerQuery {
	query := (&AgendaClient{config: pq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	pq.withAgendas = query
	return pq
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
//	client.Partner.Query().
//		GroupBy(partner.FieldIsActive).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (pq *PartnerQuery) GroupBy(field string, fields ...string) *PartnerGroupBy {
	pq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PartnerGroupBy{build: pq}
	grbuild.flds = &pq.ctx.Fields
	grbuild.label = partner.Label
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
//	client.Partner.Query().
//		Select(partner.FieldIsActive).
//		Scan(ctx, &v)
func (pq *PartnerQuery) Select(fields ...string) *PartnerSelect {
	pq.ctx.Fields = append(pq.ctx.Fields, fields...)
	sbuild := &PartnerSelect{PartnerQuery: pq}
	sbuild.label = partner.Label
	sbuild.flds, sbuild.scan = &pq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PartnerSelect configured with the given aggregations.
func (pq *PartnerQuery) Aggregate(fns ...AggregateFunc) *PartnerSelect {
	return pq.Select().Aggregate(fns...)
}

func (pq *PartnerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range pq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, pq); err != nil {
				return err
			}
		}
	}
	for _, f := range pq.ctx.Fields {
		if !partner.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if pq.path != nil {
		prev, err := pq.path(ctx)
		if err != nil {
			return err
		}
		pq.sql = prev
	}
	return nil
}

func (pq *PartnerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Partner, error) {
	var (
		nodes       = []*Partner{}
		_spec       = pq.querySpec()
		loadedTypes = [2]bool{
			pq.withDocuments != nil,
			pq.withAgendas != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Partner).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Partner{config: pq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, pq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := pq.withDocuments; query != nil {
		if err := pq.loadDocuments(ctx, query, nodes,
			func(n *Partner) { n.Edges.Documents = []*Document{} },
			func(n *Partner, e *Document) { n.Edges.Documents = append(n.Edges.Documents, e) }); err != nil {
			return nil, err
		}
	}
	if query := pq.withAgendas; query != nil {
		if err := pq.loadAgendas(ctx, query, nodes,
			func(n *Partner) { n.Edges.Agendas = []*Agenda{} },
			func(n *Partner, e *Agenda) { n.Edges.Agendas = append(n.Edges.Agendas, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (pq *PartnerQuery) loadDocuments(ctx context.Context, query *DocumentQuery, nodes []*Partner, init func(*Partner), assign func(*Partner, *Document)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*Partner)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(document.FieldPartnerID)
	}
	query.Where(predicate.Document(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(partner.DocumentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PartnerID
		if fk == nil {
			return fmt.Errorf(`foreign-key "partner_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "partner_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (pq *PartnerQuery) loadAgendas(ctx context.Context, query *AgendaQuery, nodes []*Partner, init func(*Partner), assign func(*Partner, *Agenda)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*Partner)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agenda.FieldPartnerID)
	}
	query.Where(predicate.Agenda(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(partner.AgendasColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.PartnerID
		if fk == nil {
			return fmt.Errorf(`foreign-key "partner_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "partner_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (pq *PartnerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := pq.querySpec()
	_spec.Node.Columns = pq.ctx.Fields
	if len(pq.ctx.Fields) > 0 {
		_spec.Unique = pq.ctx.Unique != nil && *pq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, pq.driver, _spec)
}

func (pq *PartnerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(partner.Table, partner.Columns, sqlgraph.NewFieldSpec(partner.FieldID, field.TypeUint))
	_spec.From = pq.sql
	if unique := pq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if pq.path != nil {
		_spec.Unique = true
	}
	if fields := pq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, partner.FieldID)
		for i := range fields {
			if fields[i] != partner.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := pq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := pq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := pq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := pq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (pq *PartnerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(pq.driver.Dialect())
	t1 := builder.Table(partner.Table)
	columns := pq.ctx.Fields
	if len(columns) == 0 {
		columns = partner.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if pq.sql != nil {
		selector = pq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if pq.ctx.Unique != nil && *pq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range pq.predicates {
		p(selector)
	}
	for _, p := range pq.order {
		p(selector)
	}
	if offset := pq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := pq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PartnerGroupBy is the group-by builder for Partner entities.
type PartnerGroupBy struct {
	selector
	build *PartnerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pgb *PartnerGroupBy) Aggregate(fns ...AggregateFunc) *PartnerGroupBy {
	pgb.fns = append(pgb.fns, fns...)
	return pgb
}

// Scan applies the selector query and scans the result into the given value.
func (pgb *PartnerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pgb.build.ctx, ent.OpQueryGroupBy)
	if err := pgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PartnerQuery, *PartnerGroupBy](ctx, pgb.build, pgb, pgb.build.inters, v)
}

func (pgb *PartnerGroupBy) sqlScan(ctx context.Context, root *PartnerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pgb.fns))
	for _, fn := range pgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pgb.flds)+len(pgb.fns))
		for _, f := range *pgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PartnerSelect is the builder for selecting fields of Partner entities.
type PartnerSelect struct {
	*PartnerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ps *PartnerSelect) Aggregate(fns ...AggregateFunc) *PartnerSelect {
	ps.fns = append(ps.fns, fns...)
	return ps
}

// Scan applies the selector query and scans the result into the given value.
func (ps *PartnerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ps.ctx, ent.OpQuerySelect)
	if err := ps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PartnerQuery, *PartnerSelect](ctx, ps.PartnerQuery, ps, ps.inters, v)
}

func (ps *PartnerSelect) sqlScan(ctx context.Context, root *PartnerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ps.fns))
	for _, fn := range ps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
