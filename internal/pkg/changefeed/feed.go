/*
 * @Description: 基于 Redis 发布订阅的数据变更通知
 * @Author: 安知鱼
 * @Date: 2025-09-03 15:10:22
 * @LastEditTime: 2025-09-11 09:35:14
 * @LastEditors: 安知鱼
 */
package changefeed

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// channelPrefix 是变更通知频道的前缀，频道名为 changefeed:<表名>。
const channelPrefix = "changefeed:"

// Event 是一条表级变更通知。
type Event struct {
	Table string
}

// Feed 封装了对 Redis 发布订阅的读写。
// 写侧在数据变更落库后调用 Publish，读侧（如 SSE 连接）通过 Subscribe 收取通知。
type Feed struct {
	rdb *redis.Client
}

// NewFeed 是 Feed 的构造函数。
func NewFeed(rdb *redis.Client) *Feed {
	return &Feed{rdb: rdb}
}

// Publish 发布一条表级变更通知。
// 通知只携带表名，订阅方收到后自行重新拉取数据。
func (f *Feed) Publish(ctx context.Context, table string) error {
	channel := channelPrefix + table
	if err := f.rdb.Publish(ctx, channel, table).Err(); err != nil {
		return fmt.Errorf("发布变更通知到 %s 失败: %w", channel, err)
	}
	return nil
}

// Subscription 是一个活跃的变更订阅。
type Subscription struct {
	pubsub *redis.PubSub
	events chan Event
}

// Events 返回只读的通知通道，订阅关闭后通道也会关闭。
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close 取消订阅并释放资源。
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// Subscribe 订阅一张或多张表的变更通知。
func (f *Feed) Subscribe(ctx context.Context, tables ...string) (*Subscription, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("订阅的表列表不能为空")
	}

	channels := make([]string, len(tables))
	for i, t := range tables {
		channels[i] = channelPrefix + t
	}

	pubsub := f.rdb.Subscribe(ctx, channels...)
	// 等待订阅确认，避免丢失紧随其后的通知
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("订阅变更通知失败: %w", err)
	}

	sub := &Subscription{
		pubsub: pubsub,
		events: make(chan Event, 16),
	}

	go func() {
		defer close(sub.events)
		for msg := range pubsub.Channel() {
			select {
			case sub.events <- Event{Table: msg.Payload}:
			default:
				// 订阅方消费不及时则丢弃，通知本身是幂等的
				log.Printf("[Changefeed] 订阅方处理过慢，丢弃 %s 的变更通知", msg.Payload)
			}
		}
	}()

	return sub, nil
}
