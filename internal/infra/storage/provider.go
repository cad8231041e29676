/*
 * @Description: 定义了所有存储驱动需要遵守的接口和公共结构
 * @Author: 安知鱼
 * @Date: 2025-09-03 09:40:12
 * @LastEditTime: 2025-09-12 15:08:26
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo 封装了 List 操作返回的单个对象的信息。
// 统一本地和云端存储的列表返回结构，让上层服务可以透明处理。
type ObjectInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// IStorageProvider 定义了所有存储提供者必须实现的接口。
// key 是相对于存储桶根的对象键，如 "2025/surat-mou-kerjasama.pdf"。
type IStorageProvider interface {
	// Put 将文件流写入指定对象键。
	// overwrite 为 false 时，若对象已存在则返回 constant.ErrConflict 且不覆盖。
	Put(ctx context.Context, key string, file io.Reader, contentType string, overwrite bool) error
	// Delete 删除一个物理对象，对象不存在不视为错误。
	Delete(ctx context.Context, key string) error
	// SignedURL 为对象生成一个限时可访问的下载链接。
	SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)
	// Exists 检查对象键是否存在。
	Exists(ctx context.Context, key string) (bool, error)
	// List 列出指定前缀下的所有对象。
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
