/*
 * @Description: 跨表软删除仓储接口
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:38:40
 * @LastEditTime: 2025-09-06 17:20:33
 * @LastEditors: 安知鱼
 */
package repository

import "context"

// LifecycleRepository 以统一的方式操作各业务表的 is_active 标记。
// table 取值见 constant 包中的逻辑表名。
type LifecycleRepository interface {
	IsActive(ctx context.Context, table string, id uint) (bool, error)
	SetActive(ctx context.Context, table string, id uint, active bool) error
}
