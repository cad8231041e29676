/*
 * @Description: 统一配置管理 (手动加载，ini + 环境变量覆盖)
 * @Author: 安知鱼
 * @Date: 2025-11-02 00:21:55
 * @LastEditTime: 2026-02-14 13:00:20
 * @LastEditors: 安知鱼
 */
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyJWTSecret,
	KeyStorageDriver, KeyStorageBucket, KeyStorageBasePath, KeyStorageSigningSecret,
	KeyStorageMaxUploadSize,
	KeyS3Server, KeyS3AccessKey, KeyS3SecretKey,
}

const (
	KeyServerPort    = "System.Port"
	KeyServerDebug   = "System.Debug"
	KeyDBType        = "Database.Type"
	KeyDBHost        = "Database.Host"
	KeyDBPort        = "Database.Port"
	KeyDBUser        = "Database.User"
	KeyDBPassword    = "Database.Password"
	KeyDBName        = "Database.Name"
	KeyDBDebug       = "Database.Debug"
	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"
	KeyJWTSecret     = "Auth.JWTSecret"

	// 对象存储配置。Driver 为 local 或 s3；Bucket 只在 s3 驱动下生效，
	// local 驱动以 BasePath 为根目录存放对象。
	KeyStorageDriver        = "Storage.Driver"
	KeyStorageBucket        = "Storage.Bucket"
	KeyStorageBasePath      = "Storage.BasePath"
	KeyStorageSigningSecret = "Storage.SigningSecret"
	KeyStorageMaxUploadSize = "Storage.MaxUploadSize"
	KeyS3Server             = "Storage.S3Server"
	KeyS3AccessKey          = "Storage.S3AccessKey"
	KeyS3SecretKey          = "Storage.S3SecretKey"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 是最终的构造函数，手动加载配置，确保可靠性
func NewConfig() (*Config, error) {
	vp := viper.New()
	filePath := "data/conf.ini"

	// --- 步骤 1: 使用 go-ini 从文件加载配置 (作为默认值) ---
	iniCfg, err := ini.Load(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
			// 自动创建默认配置文件
			if err := createDefaultConfigFile(filePath); err != nil {
				log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
			} else {
				log.Printf("✅ 已创建默认配置文件: %s", filePath)
				// 重新加载配置文件
				iniCfg, err = ini.Load(filePath)
				if err != nil {
					log.Printf("警告: 重新加载配置文件失败: %v", err)
				}
			}
		} else {
			// 如果文件存在但格式错误
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
	}

	// 如果文件成功加载，则将其中的值全部设置到 Viper 中
	if iniCfg != nil {
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				// 构建 Viper 使用的 key，例如 "Database.Host"
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				// 特殊处理默认分区 "DEFAULT"
				if section.Name() == "DEFAULT" {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Println("从 data/conf.ini 文件加载了默认配置。")
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	envPrefix := "ARSIP"

	for _, key := range allKeys {
		// 构建环境变量名，例如 ARSIP_DATABASE_HOST
		envVarName := fmt.Sprintf("%s_%s", envPrefix, envReplacer.Replace(strings.ToUpper(key)))

		// 检查环境变量是否存在
		if value, found := os.LookupEnv(envVarName); found {
			// 如果存在，就用环境变量的值覆盖 Viper 中的值
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	// --- 步骤 3: 引导生成缺失的密钥并写回配置文件 ---
	if err := ensureSecrets(vp, iniCfg, filePath); err != nil {
		return nil, err
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

// ensureSecrets 为空缺的密钥生成随机值并写回配置文件，
// 保证全新部署开箱即可签发 Token 与签名下载链接。
// 环境变量提供的密钥优先，此时不做生成也不写回。
func ensureSecrets(vp *viper.Viper, iniCfg *ini.File, filePath string) error {
	secretKeys := []string{KeyJWTSecret, KeyStorageSigningSecret}

	changed := false
	for _, key := range secretKeys {
		if vp.GetString(key) != "" {
			continue
		}
		secret, err := randomSecret(32)
		if err != nil {
			return fmt.Errorf("生成 '%s' 随机密钥失败: %w", key, err)
		}
		vp.Set(key, secret)
		log.Printf("✅ 配置 '%s' 为空，已生成随机密钥。", key)

		if iniCfg != nil {
			parts := strings.SplitN(key, ".", 2)
			iniCfg.Section(parts[0]).Key(parts[1]).SetValue(secret)
			changed = true
		}
	}

	if changed {
		if err := iniCfg.SaveTo(filePath); err != nil {
			log.Printf("警告: 密钥写回 %s 失败: %v，下次启动将重新生成。", filePath, err)
		}
	}
	return nil
}

// randomSecret 生成 n 字节熵的十六进制密钥。
func randomSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetInt64(key string) int64 {
	return c.vp.GetInt64(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	// 确保目录存在
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	// 默认配置内容（使用 SQLite 作为默认数据库、本地磁盘作为默认对象存储）
	defaultConfig := `[System]
Port = 8092
Debug = false

[Database]
Type = sqlite
Name = arsip_app.db
Debug = false

# Redis 用于跨客户端的表变更通知（changefeed）
[Redis]
Addr = 127.0.0.1:6379
Password =
DB = 0

[Auth]
# 留空时启动引导会生成随机密钥并写回本文件
JWTSecret =

[Storage]
# Driver: local 或 s3。Bucket 只在 s3 驱动下生效
Driver = local
Bucket = arsip-dokumen
BasePath = ./data/storage
# 留空时启动引导会生成随机密钥并写回本文件
SigningSecret =
# 上传大小上限（字节），留空使用内置默认值 5MB
MaxUploadSize =
# 以下仅在 Driver = s3 时需要
S3Server =
S3AccessKey =
S3SecretKey =
`

	// 写入文件
	if err := os.WriteFile(filePath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}
