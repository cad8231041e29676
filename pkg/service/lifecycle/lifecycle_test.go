package lifecycle

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/model"
	"github.com/anzhiyu-c/arsip-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeLifecycleRepo 在内存中记录各表记录的 is_active 状态。
type fakeLifecycleRepo struct {
	state       map[string]map[uint]bool // table -> id -> active
	isActiveN   int
	setActiveN  int
	lastTable   string
	lastID      uint
	lastSetTo   bool
	setActiveOK bool
}

func newFakeLifecycleRepo() *fakeLifecycleRepo {
	return &fakeLifecycleRepo{state: map[string]map[uint]bool{}, setActiveOK: true}
}

func (r *fakeLifecycleRepo) put(table string, id uint, active bool) {
	if r.state[table] == nil {
		r.state[table] = map[uint]bool{}
	}
	r.state[table][id] = active
}

func (r *fakeLifecycleRepo) IsActive(ctx context.Context, table string, id uint) (bool, error) {
	r.isActiveN++
	active, ok := r.state[table][id]
	if !ok {
		return false, constant.ErrNotFound
	}
	return active, nil
}

func (r *fakeLifecycleRepo) SetActive(ctx context.Context, table string, id uint, active bool) error {
	r.setActiveN++
	r.lastTable, r.lastID, r.lastSetTo = table, id, active
	r.put(table, id, active)
	return nil
}

type recordedAudit struct {
	tableName string
	action    string
	recordID  string
}

type fakeRecorder struct {
	records []recordedAudit
}

func (f *fakeRecorder) Record(actor model.Actor, tableName, action, recordID string) {
	f.records = append(f.records, recordedAudit{tableName, action, recordID})
}

type fakePublisher struct {
	tables []string
}

func (f *fakePublisher) Publish(ctx context.Context, table string) error {
	f.tables = append(f.tables, table)
	return nil
}

func manager() model.Actor {
	return model.Actor{UserID: "u1", Role: constant.RoleSekretaris}
}

func documentPublicID(t *testing.T, id uint) string {
	t.Helper()
	publicID, err := idgen.GeneratePublicID(id, idgen.EntityTypeDocument)
	if err != nil {
		t.Fatal(err)
	}
	return publicID
}

func TestDeactivate(t *testing.T) {
	repo := newFakeLifecycleRepo()
	repo.put(constant.TableDocument, 3, true)
	rec := &fakeRecorder{}
	pub := &fakePublisher{}
	svc := NewLifecycleService(repo, rec, pub)

	publicID := documentPublicID(t, 3)
	if err := svc.Deactivate(context.Background(), manager(), constant.TableDocument, publicID); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}

	if active := repo.state[constant.TableDocument][3]; active {
		t.Error("停用后记录应为非活跃")
	}
	if len(rec.records) != 1 || rec.records[0].action != constant.AuditActionDeactivate {
		t.Errorf("应记录一条 DEACTIVATE 审计, 实际 %+v", rec.records)
	}
	if rec.records[0].recordID != publicID {
		t.Errorf("审计应使用公共 ID %q, 实际 %q", publicID, rec.records[0].recordID)
	}
	if len(pub.tables) != 1 || pub.tables[0] != constant.TableDocument {
		t.Errorf("应发布 %s 的变更通知, 实际 %v", constant.TableDocument, pub.tables)
	}
}

func TestRestoreAuditsAsUpdate(t *testing.T) {
	repo := newFakeLifecycleRepo()
	repo.put(constant.TableDocument, 3, false)
	rec := &fakeRecorder{}
	svc := NewLifecycleService(repo, rec, &fakePublisher{})

	publicID := documentPublicID(t, 3)
	if err := svc.Restore(context.Background(), manager(), constant.TableDocument, publicID); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if active := repo.state[constant.TableDocument][3]; !active {
		t.Error("恢复后记录应为活跃")
	}
	// 恢复不引入新的审计动作，记为 UPDATE
	if len(rec.records) != 1 || rec.records[0].action != constant.AuditActionUpdate {
		t.Errorf("恢复应记录一条 UPDATE 审计, 实际 %+v", rec.records)
	}
}

func TestTransitionRejections(t *testing.T) {
	tests := []struct {
		name         string
		actor        model.Actor
		table        string
		activeBefore *bool // nil 表示记录不存在
		deactivate   bool  // true 走 Deactivate, false 走 Restore
		wantErr      error
	}{
		{
			name:       "无管理权限的角色被拒绝",
			actor:      model.Actor{UserID: "s1", Role: constant.RoleStaff},
			table:      constant.TableDocument,
			deactivate: true,
			wantErr:    constant.ErrPermission,
		},
		{
			name:       "不受管理的表被拒绝",
			actor:      manager(),
			table:      constant.TableAuditLog,
			deactivate: true,
			wantErr:    constant.ErrValidation,
		},
		{
			name:         "重复停用是非法迁移",
			actor:        manager(),
			table:        constant.TableDocument,
			activeBefore: boolPtr(false),
			deactivate:   true,
			wantErr:      constant.ErrInvalidTransition,
		},
		{
			name:         "恢复活跃记录是非法迁移",
			actor:        manager(),
			table:        constant.TableDocument,
			activeBefore: boolPtr(true),
			deactivate:   false,
			wantErr:      constant.ErrInvalidTransition,
		},
		{
			name:       "记录不存在",
			actor:      manager(),
			table:      constant.TableDocument,
			deactivate: true,
			wantErr:    constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeLifecycleRepo()
			if tt.activeBefore != nil {
				repo.put(tt.table, 3, *tt.activeBefore)
			}
			rec := &fakeRecorder{}
			pub := &fakePublisher{}
			svc := NewLifecycleService(repo, rec, pub)

			// 公共 ID 的实体类型要与目标表匹配，否则测的是解码而不是迁移
			entityType, err := idgen.EntityTypeForTable(tt.table)
			if err != nil {
				entityType = idgen.EntityTypeDocument
			}
			publicID, err := idgen.GeneratePublicID(3, entityType)
			if err != nil {
				t.Fatal(err)
			}

			if tt.deactivate {
				err = svc.Deactivate(context.Background(), tt.actor, tt.table, publicID)
			} else {
				err = svc.Restore(context.Background(), tt.actor, tt.table, publicID)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}

			if repo.setActiveN != 0 {
				t.Error("迁移被拒绝时不应写库")
			}
			if len(rec.records) != 0 {
				t.Error("迁移被拒绝时不应产生审计")
			}
			if len(pub.tables) != 0 {
				t.Error("迁移被拒绝时不应发布变更通知")
			}
		})
	}
}

func TestPermissionCheckedBeforeStore(t *testing.T) {
	repo := newFakeLifecycleRepo()
	svc := NewLifecycleService(repo, &fakeRecorder{}, &fakePublisher{})

	actor := model.Actor{UserID: "s1", Role: constant.RoleStaff}
	err := svc.Deactivate(context.Background(), actor, constant.TableDocument, documentPublicID(t, 3))
	if !errors.Is(err, constant.ErrPermission) {
		t.Fatalf("error = %v, want %v", err, constant.ErrPermission)
	}
	if repo.isActiveN != 0 {
		t.Error("权限检查应先于任何仓储访问")
	}
}

func boolPtr(b bool) *bool { return &b }
