package idgen

import (
	"errors"
	"os"
	"testing"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
)

func TestMain(m *testing.M) {
	if err := InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestPublicIDRoundTrip(t *testing.T) {
	publicID, err := GeneratePublicID(42, EntityTypeDocument)
	if err != nil {
		t.Fatalf("GeneratePublicID() error = %v", err)
	}

	dbID, entityType, err := DecodePublicID(publicID)
	if err != nil {
		t.Fatalf("DecodePublicID() error = %v", err)
	}
	if dbID != 42 || entityType != EntityTypeDocument {
		t.Errorf("解码结果 = (%d, %d), want (42, %d)", dbID, entityType, EntityTypeDocument)
	}
}

func TestDecodePublicIDForTableRejectsMismatch(t *testing.T) {
	// 用合作方实体类型生成的 ID 不能被当作文书 ID 使用
	publicID, err := GeneratePublicID(7, EntityTypePartner)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := DecodePublicIDForTable(publicID, constant.TablePartner); err != nil {
		t.Errorf("匹配的表应解码成功, error = %v", err)
	}
	if _, err := DecodePublicIDForTable(publicID, constant.TableDocument); !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("实体类型与表不匹配时 error = %v, want %v", err, constant.ErrInvalidPublicID)
	}
}

func TestDecodeMalformedPublicID(t *testing.T) {
	// 随意字符串解码不出 (dbID, entityType) 二元组
	if _, _, err := DecodePublicID("!!"); !errors.Is(err, constant.ErrInvalidPublicID) {
		t.Errorf("畸形公共ID error = %v, want %v", err, constant.ErrInvalidPublicID)
	}
}

func TestDecodePublicIDForTableUnknownTable(t *testing.T) {
	publicID, err := GeneratePublicID(1, EntityTypeDocument)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodePublicIDForTable(publicID, "tabel_misterius"); err == nil {
		t.Error("未知表名应返回错误")
	}
}
