// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdvisorsColumns holds the columns for the "advisors" table.
	AdvisorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "is_active", Type: field.TypeBool, Comment: "是否活跃，false 表示已停用", Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Comment: "姓名"},
		{Name: "role", Type: field.TypeString, Nullable: true, Comment: "担任角色"},
		{Name: "contact", Type: field.TypeString, Nullable: true, Comment: "联系方式"},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "备注"},
	}
	// AdvisorsTable holds the schema information for the "advisors" table.
	AdvisorsTable = &schema.Table{
		Name:       "advisors",
		Comment:    "指导老师表",
		Columns:    AdvisorsColumns,
		PrimaryKey: []*schema.Column{AdvisorsColumns[0]},
	}
	// AgendasColumns holds the columns for the "agendas" table.
	AgendasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "is_active", Type: field.TypeBool, Comment: "是否活跃，false 表示已停用", Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Comment: "活动名称"},
		{Name: "date", Type: field.TypeTime, Comment: "活动日期"},
		{Name: "kind", Type: field.TypeEnum, Comment: "活动类型", Enums: []string{"internal", "eksternal"}},
		{Name: "status", Type: field.TypeEnum, Comment: "活动状态", Enums: []string{"rencana", "selesai", "batal"}, Default: "rencana"},
		{Name: "result_note", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "活动结果记录"},
		{Name: "partner_id", Type: field.TypeUint, Nullable: true, Comment: "关联的合作方 ID"},
	}
	// AgendasTable holds the schema information for the "agendas" table.
	AgendasTable = &schema.Table{
		Name:       "agendas",
		Comment:    "部门活动表",
		Columns:    AgendasColumns,
		PrimaryKey: []*schema.Column{AgendasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agendas_partners_agendas",
				Columns:    []*schema.Column{AgendasColumns[9]},
				RefColumns: []*schema.Column{PartnersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenda_date",
				Unique:  false,
				Columns: []*schema.Column{AgendasColumns[5]},
			},
			{
				Name:    "agenda_status",
				Unique:  false,
				Columns: []*schema.Column{AgendasColumns[7]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Comment: "操作人的用户公共 ID"},
		{Name: "table_name", Type: field.TypeString, Comment: "被操作的逻辑表名"},
		{Name: "action", Type: field.TypeEnum, Comment: "操作类型", Enums: []string{"CREATE", "UPDATE", "DEACTIVATE"}},
		{Name: "record_id", Type: field.TypeString, Comment: "被操作记录的公共 ID"},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Comment:    "操作审计流水表，只追加",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_table_name",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3]},
			},
			{
				Name:    "auditlog_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "is_active", Type: field.TypeBool, Comment: "是否活跃，false 表示已停用", Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Comment: "文书标题"},
		{Name: "doc_type", Type: field.TypeEnum, Comment: "文书类型", Enums: []string{"undangan", "balasan", "proposal", "mou"}},
		{Name: "doc_date", Type: field.TypeTime, Comment: "文书日期"},
		{Name: "storage_key", Type: field.TypeString, Unique: true, Comment: "对象存储键，一经写入不可变"},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "备注"},
		{Name: "created_by", Type: field.TypeString, Comment: "上传者的用户公共 ID"},
		{Name: "partner_id", Type: field.TypeUint, Nullable: true, Comment: "关联的合作方 ID"},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Comment:    "归档文书表",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_partners_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{PartnersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_doc_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
			{
				Name:    "document_doc_date",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// PartnersColumns holds the columns for the "partners" table.
	PartnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "is_active", Type: field.TypeBool, Comment: "是否活跃，false 表示已停用", Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Comment: "单位名称"},
		{Name: "contact", Type: field.TypeString, Nullable: true, Comment: "联系方式"},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647, Comment: "备注"},
	}
	// PartnersTable holds the schema information for the "partners" table.
	PartnersTable = &schema.Table{
		Name:       "partners",
		Comment:    "合作单位表",
		Columns:    PartnersColumns,
		PrimaryKey: []*schema.Column{PartnersColumns[0]},
	}
	// StaffsColumns holds the columns for the "staffs" table.
	StaffsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "is_active", Type: field.TypeBool, Comment: "是否活跃，false 表示已停用", Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Comment: "姓名"},
		{Name: "position", Type: field.TypeString, Comment: "职务"},
		{Name: "contact", Type: field.TypeString, Nullable: true, Comment: "联系方式"},
		{Name: "period", Type: field.TypeString, Nullable: true, Comment: "任期"},
	}
	// StaffsTable holds the schema information for the "staffs" table.
	StaffsTable = &schema.Table{
		Name:       "staffs",
		Comment:    "部门成员表",
		Columns:    StaffsColumns,
		PrimaryKey: []*schema.Column{StaffsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdvisorsTable,
		AgendasTable,
		AuditLogsTable,
		DocumentsTable,
		PartnersTable,
		StaffsTable,
	}
)

func init() {
	AgendasTable.ForeignKeys[0].RefTable = PartnersTable
	DocumentsTable.ForeignKeys[0].RefTable = PartnersTable
}
