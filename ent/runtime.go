// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/anzhiyu-c/arsip-app/ent/advisor"
	"github.com/anzhiyu-c/arsip-app/ent/agenda"
	"github.com/anzhiyu-c/arsip-app/ent/auditlog"
	"github.com/anzhiyu-c/arsip-app/ent/document"
	"github.com/anzhiyu-c/arsip-app/ent/partner"
	"github.com/anzhiyu-c/arsip-app/ent/schema"
	"github.com/anzhiyu-c/arsip-app/ent/staff"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	advisorMixin := schema.Advisor{}.Mixin()
	advisorMixinFields0 := advisorMixin[0].Fields()
	_ = advisorMixinFields0
	advisorFields := schema.Advisor{}.Fields()
	_ = advisorFields
	// advisorDescIsActive is the schema descriptor for is_active field.
	advisorDescIsActive := advisorMixinFields0[0].Descriptor()
	// advisor.DefaultIsActive holds the default value on creation for the is_active field.
	advisor.DefaultIsActive = advisorDescIsActive.Default.(bool)
	// advisorDescCreatedAt is the schema descriptor for created_at field.
	advisorDescCreatedAt := advisorFields[1].Descriptor()
	// advisor.DefaultCreatedAt holds the default value on creation for the created_at field.
	advisor.DefaultCreatedAt = advisorDescCreatedAt.Default.(func() time.Time)
	// advisorDescUpdatedAt is the schema descriptor for updated_at field.
	advisorDescUpdatedAt := advisorFields[2].Descriptor()
	// advisor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	advisor.DefaultUpdatedAt = advisorDescUpdatedAt.Default.(func() time.Time)
	// advisor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	advisor.UpdateDefaultUpdatedAt = advisorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// advisorDescName is the schema descriptor for name field.
	advisorDescName := advisorFields[3].Descriptor()
	// advisor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	advisor.NameValidator = advisorDescName.Validators[0].(func(string) error)
	agendaMixin := schema.Agenda{}.Mixin()
	agendaMixinFields0 := agendaMixin[0].Fields()
	_ = agendaMixinFields0
	agendaFields := schema.Agenda{}.Fields()
	_ = agendaFields
	// agendaDescIsActive is the schema descriptor for is_active field.
	agendaDescIsActive := agendaMixinFields0[0].Descriptor()
	// agenda.DefaultIsActive holds the default value on creation for the is_active field.
	agenda.DefaultIsActive = agendaDescIsActive.Default.(bool)
	// agendaDescCreatedAt is the schema descriptor for created_at field.
	agendaDescCreatedAt := agendaFields[1].Descriptor()
	// agenda.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenda.DefaultCreatedAt = agendaDescCreatedAt.Default.(func() time.Time)
	// agendaDescUpdatedAt is the schema descriptor for updated_at field.
	agendaDescUpdatedAt := agendaFields[2].Descriptor()
	// agenda.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agenda.DefaultUpdatedAt = agendaDescUpdatedAt.Default.(func() time.Time)
	// agenda.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agenda.UpdateDefaultUpdatedAt = agendaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agendaDescName is the schema descriptor for name field.
	agendaDescName := agendaFields[3].Descriptor()
	// agenda.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agenda.NameValidator = agendaDescName.Validators[0].(func(string) error)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[1].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	documentMixin := schema.Document{}.Mixin()
	documentMixinFields0 := documentMixin[0].Fields()
	_ = documentMixinFields0
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescIsActive is the schema descriptor for is_active field.
	documentDescIsActive := documentMixinFields0[0].Descriptor()
	// document.DefaultIsActive holds the default value on creation for the is_active field.
	document.DefaultIsActive = documentDescIsActive.Default.(bool)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[1].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[2].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescTitle is the schema descriptor for title field.
	documentDescTitle := documentFields[3].Descriptor()
	// document.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	document.TitleValidator = documentDescTitle.Validators[0].(func(string) error)
	partnerMixin := schema.Partner{}.Mixin()
	partnerMixinFields0 := partnerMixin[0].Fields()
	_ = partnerMixinFields0
	partnerFields := schema.Partner{}.Fields()
	_ = partnerFields
	// partnerDescIsActive is the schema descriptor for is_active field.
	partnerDescIsActive := partnerMixinFields0[0].Descriptor()
	// partner.DefaultIsActive holds the default value on creation for the is_active field.
	partner.DefaultIsActive = partnerDescIsActive.Default.(bool)
	// partnerDescCreatedAt is the schema descriptor for created_at field.
	partnerDescCreatedAt := partnerFields[1].Descriptor()
	// partner.DefaultCreatedAt holds the default value on creation for the created_at field.
	partner.DefaultCreatedAt = partnerDescCreatedAt.Default.(func() time.Time)
	// partnerDescUpdatedAt is the schema descriptor for updated_at field.
	partnerDescUpdatedAt := partnerFields[2].Descriptor()
	// partner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	partner.DefaultUpdatedAt = partnerDescUpdatedAt.Default.(func() time.Time)
	// partner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	partner.UpdateDefaultUpdatedAt = partnerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partnerDescName is the schema descriptor for name field.
	partnerDescName := partnerFields[3].Descriptor()
	// partner.NameValidator is a validator for the "name" field. It is called by the builders before save.
	partner.NameValidator = partnerDescName.Validators[0].(func(string) error)
	staffMixin := schema.Staff{}.Mixin()
	staffMixinFields0 := staffMixin[0].Fields()
	_ = staffMixinFields0
	staffFields := schema.Staff{}.Fields()
	_ = staffFields
	// staffDescIsActive is the schema descriptor for is_active field.
	staffDescIsActive := staffMixinFields0[0].Descriptor()
	// staff.DefaultIsActive holds the default value on creation for the is_active field.
	staff.DefaultIsActive = staffDescIsActive.Default.(bool)
	// staffDescCreatedAt is the schema descriptor for created_at field.
	staffDescCreatedAt := staffFields[1].Descriptor()
	// staff.DefaultCreatedAt holds the default value on creation for the created_at field.
	staff.DefaultCreatedAt = staffDescCreatedAt.Default.(func() time.Time)
	// staffDescUpdatedAt is the schema descriptor for updated_at field.
	staffDescUpdatedAt := staffFields[2].Descriptor()
	// staff.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	staff.DefaultUpdatedAt = staffDescUpdatedAt.Default.(func() time.Time)
	// staff.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	staff.UpdateDefaultUpdatedAt = staffDescUpdatedAt.UpdateDefault.(func() time.Time)
	// staffDescName is the schema descriptor for name field.
	staffDescName := staffFields[3].Descriptor()
	// staff.NameValidator is a validator for the "name" field. It is called by the builders before save.
	staff.NameValidator = staffDescName.Validators[0].(func(string) error)
	// staffDescPosition is the schema descriptor for position field.
	staffDescPosition := staffFields[4].Descriptor()
	// staff.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	staff.PositionValidator = staffDescPosition.Validators[0].(func(string) error)
}
