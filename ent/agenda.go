// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
)

// 部门活动表
type Agenda struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// 是否活跃，false 表示已停用
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// 活动名称
	Name string `json:"name,omitempty"`
	// 活动日期
	Date time.Time `json:"date,omitempty"`
	// 活动类型
	Kind agenda.Kind `json:"kind,omitempty"`
	// 活动状态
	Status agenda.Status `json:"status,omitempty"`
	// 关联的合作方 ID
	PartnerID *uint `json:"partner_id,omitempty"`
	// 活动结果记录
	ResultNote string `json:"result_note,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgendaQuery when eager-loading is set.
	Edges        AgendaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgendaEdges holds the relations/edges for other nodes in the graph.
type AgendaEdges struct {
	// Partner holds the value of the partner edge.
	Partner *Partner `json:"partner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PartnerOrErr returns the Partner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgendaEdges) PartnerOrErr() (*Partner, error) {
	if e.Partner != nil {
		return e.Partner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: partner.Label}
	}
	return nil, &NotLoadedError{edge: "partner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agenda) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenda.FieldIsActive:
			values[i] = new(sql.NullBool)
		case agenda.FieldID, agenda.FieldPartnerID:
			values[i] = new(sql.NullInt64)
		case agenda.FieldName, agenda.FieldKind, agenda.FieldStatus, agenda.FieldResultNote:
			values[i] = new(sql.NullString)
		case agenda.FieldCreatedAt, agenda.FieldUpdatedAt, agenda.FieldDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agenda fields.
func (a *Agenda) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenda.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			a.ID = uint(value.Int64)
		case agenda.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				a.IsActive = value.Bool
			}
		case agenda.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case agenda.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		case agenda.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				a.Name = value.String
			}
		case agenda.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				a.Date = value.Time
			}
		case agenda.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				a.Kind = agenda.Kind(value.String)
			}
		case agenda.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				a.Status = agenda.Status(value.String)
			}
		case agenda.FieldPartnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field partner_id", values[i])
			} else if value.Valid {
				a.PartnerID = new(uint)
				*a.PartnerID = uint(value.Int64)
			}
		case agenda.FieldResultNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_note", values[i])
			} else if value.Valid {
				a.ResultNote = value.String
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Agenda.
// This includes values selected through modifiers, order, etc.
func (a *Agenda) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryPartner queries the "partner" edge of the Agenda entity.
func (a *Agenda) QueryPartner() *PartnerQuery {
	return NewAgendaClient(a.config).QueryPartner(a)
}

// Update returns a builder for updating this Agenda.
// Note that you need to call Agenda.Unwrap() before calling this method if this Agenda
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Agenda) Update() *AgendaUpdateOne {
	return NewAgendaClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Agenda entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Agenda) Unwrap() *Agenda {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agenda is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Agenda) String() string {
	var builder strings.Builder
	builder.WriteString("Agenda(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", a.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(a.Name)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(a.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", a.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", a.Status))
	builder.WriteString(", ")
	if v := a.PartnerID; v != nil {
		builder.WriteString("partner_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("result_note=")
	builder.WriteString(a.ResultNote)
	builder.WriteByte(')')
	return builder.String()
}

// Agendas is a parsable slice of Agenda.
type Agendas []*Agenda
