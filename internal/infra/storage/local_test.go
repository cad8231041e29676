package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
)

func newTestProvider(t *testing.T) *LocalProvider {
	t.Helper()
	return NewLocalProvider(t.TempDir(), "test-secret").(*LocalProvider)
}

func TestLocalPutAndExists(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	content := []byte("%PDF-1.7 fake")
	key := "2025/surat-mou-kerjasama.pdf"

	if err := p.Put(ctx, key, bytes.NewReader(content), constant.DocumentContentType, false); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	exists, err := p.Exists(ctx, key)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("写入后对象应存在")
	}

	rc, err := p.Open(key)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(rc); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), content) {
		t.Error("读出的内容应与写入一致")
	}
}

func TestLocalPutConflict(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()
	key := "2025/surat-mou-kerjasama.pdf"

	if err := p.Put(ctx, key, strings.NewReader("first"), constant.DocumentContentType, false); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	err := p.Put(ctx, key, strings.NewReader("second"), constant.DocumentContentType, false)
	if !errors.Is(err, constant.ErrConflict) {
		t.Fatalf("重复写入同一键 error = %v, want %v", err, constant.ErrConflict)
	}

	// 冲突时既有内容不能被破坏
	rc, err := p.Open(key)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	buf := new(bytes.Buffer)
	buf.ReadFrom(rc)
	if buf.String() != "first" {
		t.Errorf("冲突后既有内容 = %q, want %q", buf.String(), "first")
	}

	// overwrite=true 时允许覆盖
	if err := p.Put(ctx, key, strings.NewReader("third"), constant.DocumentContentType, true); err != nil {
		t.Errorf("覆盖写入 error = %v", err)
	}
}

func TestLocalKeyTraversalRejected(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{name: "上跳目录", key: "../outside.pdf"},
		{name: "中间上跳", key: "2025/../../outside.pdf"},
		{name: "绝对路径", key: "/etc/passwd"},
		{name: "空键", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Put(ctx, tt.key, strings.NewReader("x"), constant.DocumentContentType, false)
			if !errors.Is(err, constant.ErrValidation) {
				t.Errorf("Put(%q) error = %v, want %v", tt.key, err, constant.ErrValidation)
			}
		})
	}
}

func TestLocalDeleteMissingIsNoop(t *testing.T) {
	p := newTestProvider(t)
	if err := p.Delete(context.Background(), "2025/not-there.pdf"); err != nil {
		t.Errorf("删除不存在的对象 error = %v, want nil", err)
	}
}

func TestLocalSignedURLRoundTrip(t *testing.T) {
	p := newTestProvider(t)
	key := "2025/surat-mou-kerjasama.pdf"

	rawURL, err := p.SignedURL(context.Background(), key, constant.DownloadURLTTL)
	if err != nil {
		t.Fatalf("SignedURL() error = %v", err)
	}
	if !strings.HasPrefix(rawURL, "/api/download/local/") {
		t.Errorf("下载链接 %q 应指向本地下载接口", rawURL)
	}

	expires := time.Now().Add(constant.DownloadURLTTL).Unix()
	sign := p.Sign(key, expires)
	if !p.VerifySign(key, expires, sign) {
		t.Error("签名应能通过校验")
	}
	if p.VerifySign("2025/other.pdf", expires, sign) {
		t.Error("换一个键的签名不应通过校验")
	}
	if p.VerifySign(key, time.Now().Add(-time.Minute).Unix(), p.Sign(key, time.Now().Add(-time.Minute).Unix())) {
		t.Error("过期的签名不应通过校验")
	}
}

func TestLocalSignedURLRequiresSecret(t *testing.T) {
	p := NewLocalProvider(t.TempDir(), "")
	if _, err := p.SignedURL(context.Background(), "a.pdf", time.Minute); err == nil {
		t.Error("无签名密钥时应返回错误")
	}
}

func TestLocalList(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	files := map[string]string{
		"2024/surat-mou-lama.pdf":       "a",
		"2025/surat-mou-baru.pdf":       "bb",
		"2025/surat-undangan-acara.pdf": "ccc",
	}
	for key, content := range files {
		if err := p.Put(ctx, key, strings.NewReader(content), constant.DocumentContentType, false); err != nil {
			t.Fatal(err)
		}
	}

	all, err := p.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("List(\"\") 返回 %d 个对象, want 3", len(all))
	}

	year2025, err := p.List(ctx, "2025/")
	if err != nil {
		t.Fatal(err)
	}
	if len(year2025) != 2 {
		t.Errorf("List(\"2025/\") 返回 %d 个对象, want 2", len(year2025))
	}
	for _, obj := range year2025 {
		if !strings.HasPrefix(obj.Key, "2025/") {
			t.Errorf("返回的键 %q 不匹配前缀", obj.Key)
		}
		if obj.Size != int64(len(files[obj.Key])) {
			t.Errorf("对象 %q 的大小 = %d, want %d", obj.Key, obj.Size, len(files[obj.Key]))
		}
	}
}

func TestLocalListEmptyRoot(t *testing.T) {
	p := NewLocalProvider(filepath.Join(t.TempDir(), "belum-ada"), "s").(*LocalProvider)
	objs, err := p.List(context.Background(), "")
	if err != nil {
		t.Fatalf("根目录不存在时 List() error = %v", err)
	}
	if len(objs) != 0 {
		t.Errorf("根目录不存在时应返回空列表, 实际 %d 个", len(objs))
	}
}
