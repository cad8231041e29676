package config

import (
	"testing"

	"github.com/go-ini/ini"
)

func TestNewConfigGeneratesAndPersistsSecrets(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	jwtSecret := cfg.GetString(KeyJWTSecret)
	signingSecret := cfg.GetString(KeyStorageSigningSecret)
	if jwtSecret == "" {
		t.Fatal("首次启动应为空缺的 JWTSecret 生成随机密钥")
	}
	if signingSecret == "" {
		t.Fatal("首次启动应为空缺的 SigningSecret 生成随机密钥")
	}
	if jwtSecret == signingSecret {
		t.Error("两个密钥应各自独立生成")
	}

	// 生成的密钥必须写回配置文件，重启后保持不变
	iniCfg, err := ini.Load("data/conf.ini")
	if err != nil {
		t.Fatalf("加载写回后的配置文件失败: %v", err)
	}
	if got := iniCfg.Section("Auth").Key("JWTSecret").String(); got != jwtSecret {
		t.Errorf("写回文件的 JWTSecret = %q, want %q", got, jwtSecret)
	}

	cfg2, err := NewConfig()
	if err != nil {
		t.Fatalf("第二次 NewConfig() error = %v", err)
	}
	if got := cfg2.GetString(KeyJWTSecret); got != jwtSecret {
		t.Errorf("重启后 JWTSecret = %q, 应与首次生成的一致", got)
	}
}

func TestNewConfigEnvSecretSkipsGeneration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ARSIP_AUTH_JWTSECRET", "from-env")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}
	if got := cfg.GetString(KeyJWTSecret); got != "from-env" {
		t.Errorf("环境变量提供的密钥不应被覆盖, got %q", got)
	}

	// 环境变量提供时不写回文件
	iniCfg, err := ini.Load("data/conf.ini")
	if err != nil {
		t.Fatalf("加载配置文件失败: %v", err)
	}
	if got := iniCfg.Section("Auth").Key("JWTSecret").String(); got == "from-env" {
		t.Error("来自环境变量的密钥不应写入配置文件")
	}
}
