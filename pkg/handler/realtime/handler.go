/*
 * @Description: 数据变更的 SSE 推送端点
 * @Author: 安知鱼
 * @Date: 2025-09-05 14:22:08
 * @LastEditTime: 2026-02-11 10:05:36
 * @LastEditors: 安知鱼
 */
package realtime

import (
	"io"
	"log"
	"net/http"

	"github.com/anzhiyu-c/arsip-app/internal/pkg/changefeed"
	"github.com/anzhiyu-c/arsip-app/pkg/constant"
	"github.com/anzhiyu-c/arsip-app/pkg/response"
	"github.com/anzhiyu-c/arsip-app/pkg/service/refresh"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler 把 Redis 变更通知桥接为面向浏览器的 SSE 事件流。
// 每条连接持有自己的收敛器，突发变更在服务端合并后再下发。
type Handler struct {
	feed *changefeed.Feed
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(feed *changefeed.Feed) *Handler {
	return &Handler{feed: feed}
}

// sseEvent 是推送给前端的一条事件。
type sseEvent struct {
	name  string
	table string
}

// Stream 处理 SSE 订阅请求。
// 客户端通过 tables 查询参数指定关心的表，缺省订阅全部受管理表。
// 事件类型有两种: reload 表示该表数据需要重新拉取，notice 建议向用户展示"数据有变更"提示。
// @Summary      订阅数据变更事件流
// @Tags         实时推送
// @Produce      text/event-stream
// @Param        tables  query  []string  false  "要订阅的逻辑表名"  collectionFormat(multi)
// @Success      200  {string}  string  "SSE 事件流"
// @Router       /realtime/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	tables := c.QueryArray("tables")
	if len(tables) == 0 {
		tables = constant.ManagedTables
	}
	for _, t := range tables {
		if !constant.IsManagedTable(t) {
			response.Fail(c, http.StatusBadRequest, "不支持订阅的表: "+t)
			return
		}
	}

	subscriberID := uuid.New().String()

	sub, err := h.feed.Subscribe(c.Request.Context(), tables...)
	if err != nil {
		log.Printf("[Realtime] 订阅者 %s 建立变更订阅失败: %v", subscriberID, err)
		response.Fail(c, http.StatusInternalServerError, "建立变更订阅失败")
		return
	}
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	// 事件先进通道，由连接 goroutine 统一写出，避免并发写 ResponseWriter
	out := make(chan sseEvent, 16)
	push := func(ev sseEvent) {
		select {
		case out <- ev:
		default:
			log.Printf("[Realtime] 订阅者 %s 消费过慢，丢弃 %s 事件", subscriberID, ev.name)
		}
	}

	// 每张表独立收敛，互不影响去抖窗口
	coalescers := make(map[string]*refresh.Coalescer, len(tables))
	for _, t := range tables {
		table := t
		coalescers[table] = refresh.NewCoalescer(
			func() { push(sseEvent{name: "reload", table: table}) },
			func() { push(sseEvent{name: "notice", table: table}) },
		)
	}
	defer func() {
		for _, co := range coalescers {
			co.Stop()
		}
	}()

	log.Printf("[Realtime] 订阅者 %s 已连接, 订阅表: %v", subscriberID, tables)

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			log.Printf("[Realtime] 订阅者 %s 已断开", subscriberID)
			return false
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			if co := coalescers[ev.Table]; co != nil {
				co.Notify()
			}
			return true
		case ev := <-out:
			c.SSEvent(ev.name, gin.H{"table": ev.table})
			return true
		}
	})
}
