/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-06 10:02:18
 * @LastEditTime: 2025-09-06 10:02:25
 * @LastEditors: 安知鱼
 */
// internal/app/task/jobs.go
package task

// Job 是后台任务的统一接口，与 cron.Job 接口兼容。
type Job interface {
	Run()
	Name() string
}
