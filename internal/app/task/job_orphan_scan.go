/*
 * @Description: 扫描对象存储中没有对应文书记录的孤儿对象
 * @Author: 安知鱼
 * @Date: 2025-09-06 11:12:30
 * @LastEditTime: 2025-09-14 22:08:47
 * @LastEditors: 安知鱼
 */
package task

import (
	"context"
	"log"

	"github.com/anzhiyu-c/arsip-app/internal/infra/storage"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"
)

// OrphanScanJob 遍历对象存储，找出数据库中没有文书记录引用的对象。
// 孤儿对象通常来自"存储写入成功但落库失败、补偿删除又失败"的上传。
// 任务只记录不删除，处置由管理员人工决定。
type OrphanScanJob struct {
	provider storage.IStorageProvider
	docRepo  repository.DocumentRepository
}

// NewOrphanScanJob 是任务的构造函数。
func NewOrphanScanJob(provider storage.IStorageProvider, docRepo repository.DocumentRepository) *OrphanScanJob {
	return &OrphanScanJob{
		provider: provider,
		docRepo:  docRepo,
	}
}

func (j *OrphanScanJob) Name() string {
	return "OrphanScanJob"
}

// Run 是 Job 接口要求实现的方法。
func (j *OrphanScanJob) Run() {
	ctx := context.Background()

	objects, err := j.provider.List(ctx, "")
	if err != nil {
		log.Printf("错误: 任务 '%s' 列出存储对象失败: %v", j.Name(), err)
		return
	}

	var orphans int
	for _, obj := range objects {
		exists, err := j.docRepo.ExistsByStorageKey(ctx, obj.Key)
		if err != nil {
			log.Printf("错误: 任务 '%s' 查询存储键 '%s' 失败: %v", j.Name(), obj.Key, err)
			continue
		}
		if !exists {
			orphans++
			log.Printf("任务 '%s' 发现孤儿对象: %s (%d 字节)", j.Name(), obj.Key, obj.Size)
		}
	}

	if orphans > 0 {
		log.Printf("任务 '%s' 执行完毕，共发现 %d 个孤儿对象，请人工处置。", j.Name(), orphans)
	} else {
		log.Printf("任务 '%s' 执行完毕，未发现孤儿对象。", j.Name())
	}
}
