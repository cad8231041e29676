/*
 * @Description: 归档文件存储路径的生成规则
 * @Author: 安知鱼
 * @Date: 2025-09-03 16:20:40
 * @LastEditTime: 2025-09-09 11:42:18
 * @LastEditors: 安知鱼
 */
package archive

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"
)

var (
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify 把文书标题转换为适合做文件名的 slug。
// 全部小写，非字母数字折叠为连字符，首尾连字符去除。
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = multipleHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// BuildStorageKey 根据文书日期、类型和标题生成对象存储键。
// 格式为 <年份>/surat-<类型>-<slug>.pdf，例如
// "2025/surat-mou-kerjasama-sekolah-a.pdf"。
// 标题 slug 以 "<类型>-" 开头时去掉该前缀，避免出现 surat-mou-mou-xxx；
// 只有 slug 为空时才回退为 "dokumen"。
func BuildStorageKey(docDate time.Time, docType, title string) string {
	year := docDate.Year()
	if year <= 1900 {
		// 零值或明显不合理的日期退回当前年份
		year = time.Now().Year()
	}
	slug := Slugify(title)
	slug = strings.TrimPrefix(slug, docType+"-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "dokumen"
	}
	return fmt.Sprintf("%d/surat-%s-%s%s", year, docType, slug, constant.DocumentExt)
}

// RetryStorageKey 在存储键冲突时生成一次性的重试键，
// 在扩展名前追加毫秒时间戳以保证唯一。
func RetryStorageKey(key string, now time.Time) string {
	base := strings.TrimSuffix(key, constant.DocumentExt)
	return fmt.Sprintf("%s-%d%s", base, now.UnixMilli(), constant.DocumentExt)
}
