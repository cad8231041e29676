/*
 * @Description: 公共 ID 生成和解码服务
 * @Author: 安知鱼
 * @Date: 2025-11-03 20:38:15
 * @LastEditTime: 2026-01-22 22:05:59
 * @LastEditors: 安知鱼
 */
package idgen

import (
	"fmt"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"

	"github.com/sqids/sqids-go"
)

// sqidsEncoder 是用于生成和解码短 ID 的 Sqids 编码器实例。
var sqidsEncoder *sqids.Sqids

// DefaultAlphabet 是默认的字母表
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// EntityType 定义了不同实体在生成公共 ID 时的类型标识。
const (
	EntityTypeUser     uint64 = 1 // 用户实体的类型标识
	EntityTypeDocument uint64 = 2 // 归档文档实体的类型标识
	EntityTypePartner  uint64 = 3 // 合作伙伴实体的类型标识
	EntityTypeStaff    uint64 = 4 // 干事实体的类型标识
	EntityTypeAdvisor  uint64 = 5 // 指导老师实体的类型标识
	EntityTypeAgenda   uint64 = 6 // 议程实体的类型标识
	EntityTypeAuditLog uint64 = 7 // 审计记录实体的类型标识
)

// tableEntityTypes 把受管理表名映射到实体类型标识，供通用生命周期单元使用
var tableEntityTypes = map[string]uint64{
	constant.TableDocument: EntityTypeDocument,
	constant.TablePartner:  EntityTypePartner,
	constant.TableStaff:    EntityTypeStaff,
	constant.TableAdvisor:  EntityTypeAdvisor,
	constant.TableAgenda:   EntityTypeAgenda,
}

// EntityTypeForTable 返回表名对应的实体类型标识
func EntityTypeForTable(table string) (uint64, error) {
	et, ok := tableEntityTypes[table]
	if !ok {
		return 0, fmt.Errorf("表 '%s' 没有对应的实体类型", table)
	}
	return et, nil
}

// InitSqidsEncoder 初始化 Sqids 编码器
func InitSqidsEncoder() error {
	s, err := sqids.New(
		sqids.Options{
			MinLength: 4,
			Alphabet:  DefaultAlphabet,
		},
	)
	if err != nil {
		return fmt.Errorf("初始化 Sqids 编码器失败: %w", err)
	}
	sqidsEncoder = s
	return nil
}

// GeneratePublicID 把数据库自增ID编码为带实体类型的公共 ID。
func GeneratePublicID(dbID uint, entityType uint64) (string, error) {
	if sqidsEncoder == nil {
		return "", fmt.Errorf("Sqids 编码器未初始化")
	}

	numbersToEncode := []uint64{uint64(dbID), entityType}

	id, err := sqidsEncoder.Encode(numbersToEncode)
	if err != nil {
		return "", fmt.Errorf("编码公共ID失败: %w", err)
	}

	return id, nil
}

// DecodePublicID 解码公共 ID
func DecodePublicID(publicID string) (dbID uint, entityType uint64, err error) {
	if sqidsEncoder == nil {
		return 0, 0, fmt.Errorf("Sqids 编码器未初始化")
	}

	numbers := sqidsEncoder.Decode(publicID)

	if len(numbers) != 2 {
		return 0, 0, fmt.Errorf("无法从公共ID解码出预期数量的数字(期望2个，得到%d个): %w",
			len(numbers), constant.ErrInvalidPublicID)
	}

	return uint(numbers[0]), numbers[1], nil
}

// DecodePublicIDForTable 解码公共 ID，并校验其实体类型与目标表一致。
// 通用生命周期单元用它防止把一张表的 ID 误用到另一张表上。
func DecodePublicIDForTable(publicID, table string) (uint, error) {
	expected, err := EntityTypeForTable(table)
	if err != nil {
		return 0, err
	}
	dbID, entityType, err := DecodePublicID(publicID)
	if err != nil {
		return 0, err
	}
	if entityType != expected {
		return 0, fmt.Errorf("公共ID '%s' 的实体类型与表 '%s' 不匹配: %w",
			publicID, table, constant.ErrInvalidPublicID)
	}
	return dbID, nil
}
