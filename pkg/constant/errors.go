/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-11-03 10:12:44
 * @LastEditTime: 2026-01-08 16:40:21
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrValidation 表示输入校验失败，此时尚未发生任何存储交互，可以由 Handler 转换为 400
	ErrValidation = errors.New("输入校验失败")

	// ErrConflict 表示存储键冲突（目标位置已被占用），可以由 Handler 转换为 409
	ErrConflict = errors.New("存储键冲突")

	// ErrStorage 表示对象存储后端失败，可以由 Handler 转换为 502
	ErrStorage = errors.New("对象存储操作失败")

	// ErrPersistence 表示数据库写入失败，可以由 Handler 转换为 500
	ErrPersistence = errors.New("数据库操作失败")

	// ErrPermission 表示调用者角色不具备所需权限层级，在任何存储调用之前被拒绝，
	// 可以由 Handler 转换为 403
	ErrPermission = errors.New("当前角色无权执行此操作")

	// ErrInvalidTransition 表示生命周期状态迁移非法（例如对已在回收站中的记录再次执行
	// 移入回收站），这是调用方错误而非静默幂等，可以由 Handler 转换为 409
	ErrInvalidTransition = errors.New("非法的生命周期状态迁移")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")
)
