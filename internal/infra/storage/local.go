// internal/infra/storage/local.go
package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
)

// LocalProvider 实现了 IStorageProvider 接口，用于处理与本机磁盘文件系统的所有交互。
type LocalProvider struct {
	basePath      string
	signingSecret string
}

// NewLocalProvider 是 LocalProvider 的构造函数。
// basePath 是对象存储在磁盘上的根目录，secret 用于下载链接签名。
func NewLocalProvider(basePath, secret string) IStorageProvider {
	return &LocalProvider{
		basePath:      basePath,
		signingSecret: secret,
	}
}

// fullPath 把对象键映射为磁盘路径，并拒绝越出根目录的键。
func (p *LocalProvider) fullPath(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("非法的对象键 '%s': %w", key, constant.ErrValidation)
	}
	return filepath.Join(p.basePath, cleaned), nil
}

func (p *LocalProvider) Put(ctx context.Context, key string, file io.Reader, contentType string, overwrite bool) error {
	finalPath, err := p.fullPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(finalPath), os.ModePerm); err != nil {
		return fmt.Errorf("无法创建存储子目录 '%s': %w", filepath.Dir(finalPath), err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		// O_EXCL 保证"不存在才创建"在文件系统层面是原子的
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	dest, err := os.OpenFile(finalPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("对象 '%s' 已存在: %w", key, constant.ErrConflict)
		}
		return fmt.Errorf("创建目标文件 '%s' 失败: %w", finalPath, err)
	}

	if _, err := io.Copy(dest, file); err != nil {
		dest.Close()
		os.Remove(finalPath)
		return fmt.Errorf("写入文件内容失败: %w", err)
	}
	if err := dest.Sync(); err != nil {
		dest.Close()
		return fmt.Errorf("同步文件到磁盘失败: %w", err)
	}
	return dest.Close()
}

func (p *LocalProvider) Delete(ctx context.Context, key string) error {
	finalPath, err := p.fullPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(finalPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("删除文件 '%s' 失败: %w", finalPath, err)
	}
	return nil
}

// SignedURL 生成带 HMAC 签名的本地下载链接，由下载接口校验。
func (p *LocalProvider) SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if p.signingSecret == "" {
		return "", errors.New("签名密钥未提供给 LocalProvider")
	}
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}
	expires := time.Now().Add(expiresIn).Unix()
	signature := p.Sign(key, expires)
	downloadURL := fmt.Sprintf(
		"/api/download/local/%s?expires=%d&sign=%s",
		url.PathEscape(key),
		expires,
		url.QueryEscape(signature),
	)
	return downloadURL, nil
}

// Sign 计算对象键与过期时间的 HMAC 签名，供生成与校验两侧共用。
func (p *LocalProvider) Sign(key string, expires int64) string {
	stringToSign := fmt.Sprintf("%s:%d", key, expires)
	mac := hmac.New(sha256.New, []byte(p.signingSecret))
	mac.Write([]byte(stringToSign))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifySign 校验下载链接的签名与有效期。
func (p *LocalProvider) VerifySign(key string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := p.Sign(key, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Open 返回对象的可读文件流，供本地下载接口使用。
func (p *LocalProvider) Open(key string) (io.ReadCloser, error) {
	finalPath, err := p.fullPath(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(finalPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("打开文件 '%s' 失败: %w", finalPath, err)
	}
	return f, nil
}

func (p *LocalProvider) Exists(ctx context.Context, key string) (bool, error) {
	finalPath, err := p.fullPath(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(finalPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("检查文件 '%s' 失败: %w", finalPath, err)
	}
	return true, nil
}

func (p *LocalProvider) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var result []ObjectInfo
	root := p.basePath
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		result = append(result, ObjectInfo{
			Key:     key,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("遍历本地存储目录失败: %w", err)
	}
	return result, nil
}
