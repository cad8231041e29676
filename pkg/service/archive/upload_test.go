package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/arsip-app/internal/infra/storage"
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

// --- 测试替身 ---

// fakeProvider 在内存中模拟对象存储，遵守 overwrite=false 冲突语义。
type fakeProvider struct {
	objects    map[string][]byte
	putCalls   []string
	deleted    []string
	putErr     error // 非冲突类的写入错误
	deleteErr  error
	signedBase string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{objects: map[string][]byte{}, signedBase: "https://example.test/"}
}

func (f *fakeProvider) Put(ctx context.Context, key string, file io.Reader, contentType string, overwrite bool) error {
	f.putCalls = append(f.putCalls, key)
	if f.putErr != nil {
		return f.putErr
	}
	if _, ok := f.objects[key]; ok && !overwrite {
		return constant.ErrConflict
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeProvider) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeProvider) SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return f.signedBase + key, nil
}

func (f *fakeProvider) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeProvider) List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	return nil, nil
}

// fakeDocRepo 在内存中模拟文书仓储。
type fakeDocRepo struct {
	docs      []*model.Document
	nextID    uint
	createErr error
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{nextID: 1}
}

func (r *fakeDocRepo) Create(ctx context.Context, doc *model.Document) error {
	if r.createErr != nil {
		return r.createErr
	}
	doc.ID = r.nextID
	r.nextID++
	doc.IsActive = true
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeDocRepo) GetByID(ctx context.Context, id uint) (*model.Document, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, constant.ErrNotFound
}

func (r *fakeDocRepo) UpdateMetadata(ctx context.Context, doc *model.Document) error {
	return nil
}

func (r *fakeDocRepo) ListActive(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.Document, int, error) {
	var out []*model.Document
	for _, d := range r.docs {
		if d.IsActive {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) ListTrash(ctx context.Context, req *model.ListDocumentsRequest) ([]*model.Document, int, error) {
	var out []*model.Document
	for _, d := range r.docs {
		if !d.IsActive {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) CountTrash(ctx context.Context) (int, error) {
	n := 0
	for _, d := range r.docs {
		if !d.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeDocRepo) ExistsByStorageKey(ctx context.Context, key string) (bool, error) {
	for _, d := range r.docs {
		if d.StorageKey == key {
			return true, nil
		}
	}
	return false, nil
}

// fakePartnerRepo 在内存中模拟合作方仓储。
type fakePartnerRepo struct {
	partners map[uint]*model.Partner
}

func (r *fakePartnerRepo) Create(ctx context.Context, p *model.Partner) error { return nil }

func (r *fakePartnerRepo) GetByID(ctx context.Context, id uint) (*model.Partner, error) {
	if p, ok := r.partners[id]; ok {
		return p, nil
	}
	return nil, constant.ErrNotFound
}

func (r *fakePartnerRepo) Update(ctx context.Context, p *model.Partner) error { return nil }

func (r *fakePartnerRepo) ListActive(ctx context.Context) ([]*model.Partner, error) {
	return nil, nil
}

// recordedAudit 捕获一次审计调用。
type recordedAudit struct {
	actor     model.Actor
	tableName string
	action    string
	recordID  string
}

type fakeRecorder struct {
	records []recordedAudit
}

func (f *fakeRecorder) Record(actor model.Actor, tableName, action, recordID string) {
	f.records = append(f.records, recordedAudit{actor, tableName, action, recordID})
}

type fakePublisher struct {
	tables []string
}

func (f *fakePublisher) Publish(ctx context.Context, table string) error {
	f.tables = append(f.tables, table)
	return nil
}

// --- 测试 ---

func uploadRequest() *model.UploadDocumentRequest {
	return &model.UploadDocumentRequest{
		Title:   "Kerjasama Sekolah A",
		DocType: "mou",
		DocDate: "2025-04-12",
	}
}

// pdfFile 构造一个合法的测试上传文件。
func pdfFile(content []byte) UploadFile {
	return UploadFile{
		Name:        "surat.pdf",
		ContentType: constant.DocumentContentType,
		Size:        int64(len(content)),
		Reader:      bytes.NewReader(content),
	}
}

func newTestService(repo *fakeDocRepo, provider *fakeProvider, rec *fakeRecorder, pub *fakePublisher) Service {
	partners := &fakePartnerRepo{partners: map[uint]*model.Partner{}}
	return NewArchiveService(repo, partners, provider, rec, pub, constant.DefaultMaxUploadBytes)
}

func TestUploadValidation(t *testing.T) {
	uploader := model.Actor{UserID: "u1", Role: constant.RoleStaff}

	tests := []struct {
		name       string
		actor      model.Actor
		mutate     func(*model.UploadDocumentRequest)
		mutateFile func(*UploadFile)
		wantErr    error
	}{
		{
			name:    "无上传权限的角色被拒绝",
			actor:   model.Actor{UserID: "x", Role: "anggota_biasa"},
			wantErr: constant.ErrPermission,
		},
		{
			name:    "标题为空",
			actor:   uploader,
			mutate:  func(r *model.UploadDocumentRequest) { r.Title = "" },
			wantErr: constant.ErrValidation,
		},
		{
			name:    "未知文书类型",
			actor:   uploader,
			mutate:  func(r *model.UploadDocumentRequest) { r.DocType = "memo" },
			wantErr: constant.ErrValidation,
		},
		{
			name:  "扩展名与类型都不是PDF",
			actor: uploader,
			mutateFile: func(f *UploadFile) {
				f.Name = "foto.png"
				f.ContentType = "image/png"
			},
			wantErr: constant.ErrValidation,
		},
		{
			name:       "空文件",
			actor:      uploader,
			mutateFile: func(f *UploadFile) { f.Size = 0 },
			wantErr:    constant.ErrValidation,
		},
		{
			name:       "超出大小上限",
			actor:      uploader,
			mutateFile: func(f *UploadFile) { f.Size = constant.DefaultMaxUploadBytes + 1 },
			wantErr:    constant.ErrValidation,
		},
		{
			name:    "日期格式错误",
			actor:   uploader,
			mutate:  func(r *model.UploadDocumentRequest) { r.DocDate = "12/04/2025" },
			wantErr: constant.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newFakeProvider()
			repo := newFakeDocRepo()
			svc := newTestService(repo, provider, &fakeRecorder{}, &fakePublisher{})

			req := uploadRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}
			file := pdfFile([]byte("pdf"))
			if tt.mutateFile != nil {
				tt.mutateFile(&file)
			}

			_, err := svc.Upload(context.Background(), tt.actor, req, file)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Upload() error = %v, want %v", err, tt.wantErr)
			}
			// 校验失败不应触及存储
			if len(provider.putCalls) != 0 {
				t.Errorf("校验失败后不应写入存储, 实际调用 %d 次", len(provider.putCalls))
			}
			if len(repo.docs) != 0 {
				t.Errorf("校验失败后不应落库, 实际 %d 条", len(repo.docs))
			}
		})
	}
}

func TestUploadSuccess(t *testing.T) {
	provider := newFakeProvider()
	repo := newFakeDocRepo()
	rec := &fakeRecorder{}
	pub := &fakePublisher{}
	svc := newTestService(repo, provider, rec, pub)

	actor := model.Actor{UserID: "u1", Role: constant.RoleStaff}
	content := []byte("%PDF-1.7 fake")

	dto, err := svc.Upload(context.Background(), actor, uploadRequest(), pdfFile(content))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	wantKey := "2025/surat-mou-kerjasama-sekolah-a.pdf"
	if got, ok := provider.objects[wantKey]; !ok || !bytes.Equal(got, content) {
		t.Errorf("对象存储中应有 %q 且内容一致", wantKey)
	}
	if len(repo.docs) != 1 || repo.docs[0].StorageKey != wantKey {
		t.Fatalf("落库记录的存储键 = %q, want %q", repo.docs[0].StorageKey, wantKey)
	}
	if dto.ID == "" {
		t.Error("返回的 DTO 应带有公共 ID")
	}

	if len(rec.records) != 1 {
		t.Fatalf("应记录 1 条审计, 实际 %d 条", len(rec.records))
	}
	if rec.records[0].action != constant.AuditActionCreate || rec.records[0].tableName != constant.TableDocument {
		t.Errorf("审计记录 = %+v, want CREATE on %s", rec.records[0], constant.TableDocument)
	}
	if len(pub.tables) != 1 || pub.tables[0] != constant.TableDocument {
		t.Errorf("应发布 %s 的变更通知, 实际 %v", constant.TableDocument, pub.tables)
	}
}

func TestUploadConflictRetry(t *testing.T) {
	provider := newFakeProvider()
	repo := newFakeDocRepo()
	svc := newTestService(repo, provider, &fakeRecorder{}, &fakePublisher{})

	actor := model.Actor{UserID: "u1", Role: constant.RoleStaff}
	firstKey := "2025/surat-mou-kerjasama-sekolah-a.pdf"
	// 预先占用首选键，制造冲突
	provider.objects[firstKey] = []byte("existing")

	content := []byte("second upload")
	dto, err := svc.Upload(context.Background(), actor, uploadRequest(), pdfFile(content))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if len(provider.putCalls) != 2 {
		t.Fatalf("冲突后应重试 1 次, 实际 Put 调用 %d 次", len(provider.putCalls))
	}
	retryKey := provider.putCalls[1]
	if !strings.HasPrefix(retryKey, "2025/surat-mou-kerjasama-sekolah-a-") || !strings.HasSuffix(retryKey, ".pdf") {
		t.Errorf("重试键 %q 应在扩展名前追加时间戳", retryKey)
	}
	if !bytes.Equal(provider.objects[retryKey], content) {
		t.Error("重试写入的内容应与上传内容一致")
	}
	// 首选键的既有内容不能被覆盖
	if !bytes.Equal(provider.objects[firstKey], []byte("existing")) {
		t.Error("冲突时不应覆盖已存在的对象")
	}
	if repo.docs[0].StorageKey != retryKey {
		t.Errorf("落库记录应使用重试键 %q, 实际 %q", retryKey, repo.docs[0].StorageKey)
	}
	if dto == nil {
		t.Fatal("成功上传应返回 DTO")
	}
}

// conflictAlwaysProvider 无论什么键都报冲突，用来模拟重试仍失败。
type conflictAlwaysProvider struct {
	fakeProvider
}

func (p *conflictAlwaysProvider) Put(ctx context.Context, key string, file io.Reader, contentType string, overwrite bool) error {
	p.putCalls = append(p.putCalls, key)
	return constant.ErrConflict
}

func TestUploadSecondConflictFails(t *testing.T) {
	provider := &conflictAlwaysProvider{fakeProvider: *newFakeProvider()}
	repo := newFakeDocRepo()
	partners := &fakePartnerRepo{partners: map[uint]*model.Partner{}}
	svc := NewArchiveService(repo, partners, provider, &fakeRecorder{}, &fakePublisher{}, constant.DefaultMaxUploadBytes)

	actor := model.Actor{UserID: "u1", Role: constant.RoleStaff}
	_, err := svc.Upload(context.Background(), actor, uploadRequest(), pdfFile([]byte("pdf")))
	if !errors.Is(err, constant.ErrConflict) {
		t.Fatalf("Upload() error = %v, want %v", err, constant.ErrConflict)
	}
	if len(provider.putCalls) != 2 {
		t.Errorf("第二次冲突后不应继续重试, 实际 Put 调用 %d 次", len(provider.putCalls))
	}
	if len(repo.docs) != 0 {
		t.Error("写入失败后不应落库")
	}
}

func TestUploadCompensatesOnPersistenceFailure(t *testing.T) {
	provider := newFakeProvider()
	repo := newFakeDocRepo()
	repo.createErr = fmt.Errorf("connection reset")
	rec := &fakeRecorder{}
	svc := newTestService(repo, provider, rec, &fakePublisher{})

	actor := model.Actor{UserID: "u1", Role: constant.RoleStaff}
	_, err := svc.Upload(context.Background(), actor, uploadRequest(), pdfFile([]byte("pdf")))
	if !errors.Is(err, constant.ErrPersistence) {
		t.Fatalf("Upload() error = %v, want %v", err, constant.ErrPersistence)
	}

	wantKey := "2025/surat-mou-kerjasama-sekolah-a.pdf"
	if len(provider.deleted) != 1 || provider.deleted[0] != wantKey {
		t.Errorf("落库失败后应补偿删除 %q, 实际删除 %v", wantKey, provider.deleted)
	}
	if len(rec.records) != 0 {
		t.Error("失败的上传不应产生审计记录")
	}
}

func TestUploadCompensationFailureIsSwallowed(t *testing.T) {
	provider := newFakeProvider()
	provider.deleteErr = fmt.Errorf("backend unreachable")
	repo := newFakeDocRepo()
	repo.createErr = fmt.Errorf("deadlock")
	svc := newTestService(repo, provider, &fakeRecorder{}, &fakePublisher{})

	actor := model.Actor{UserID: "u1", Role: constant.RoleStaff}
	_, err := svc.Upload(context.Background(), actor, uploadRequest(), pdfFile([]byte("pdf")))
	// 补偿删除失败不改变返回的错误类别
	if !errors.Is(err, constant.ErrPersistence) {
		t.Fatalf("Upload() error = %v, want %v", err, constant.ErrPersistence)
	}
}

func TestUploadRejectsInactivePartner(t *testing.T) {
	provider := newFakeProvider()
	repo := newFakeDocRepo()
	partners := &fakePartnerRepo{partners: map[uint]*model.Partner{
		7: {ID: 7, Name: "Sekolah A", IsActive: false},
	}}
	svc := NewArchiveService(repo, partners, provider, &fakeRecorder{}, &fakePublisher{}, constant.DefaultMaxUploadBytes)

	partnerPublicID, err := idgen.GeneratePublicID(7, idgen.EntityTypePartner)
	if err != nil {
		t.Fatal(err)
	}

	req := uploadRequest()
	req.PartnerPublicID = partnerPublicID

	actor := model.Actor{UserID: "u1", Role: constant.RoleStaff}
	_, err = svc.Upload(context.Background(), actor, req, pdfFile([]byte("pdf")))
	if !errors.Is(err, constant.ErrValidation) {
		t.Fatalf("Upload() error = %v, want %v", err, constant.ErrValidation)
	}
	if len(provider.putCalls) != 0 {
		t.Error("合作方校验失败后不应写入存储")
	}
}
