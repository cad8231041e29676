/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:22:40
 * @LastEditTime: 2025-09-02 15:40:11
 * @LastEditors: 安知鱼
 */
package database

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/anzhiyu-c/arsip-app/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 接收配置并返回 Redis 客户端。
// 变更通知依赖 Redis 的发布订阅，因此连接失败视为启动错误而不降级。
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	redisAddr := cfg.GetString(config.KeyRedisAddr)
	redisPassword := cfg.GetString(config.KeyRedisPassword)

	if redisAddr == "" {
		return nil, fmt.Errorf("Redis 地址未配置 (Redis.Addr)")
	}

	redisDB := 0
	if dbStr := cfg.GetString(config.KeyRedisDB); dbStr != "" {
		var err error
		redisDB, err = strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("无效的 Redis.DB 值 '%s': %w", dbStr, err)
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("连接 Redis (%s, DB %d) 失败: %w", redisAddr, redisDB, err)
	}

	log.Printf("✅ 成功连接到 Redis (%s, DB %d)", redisAddr, redisDB)
	return rdb, nil
}
