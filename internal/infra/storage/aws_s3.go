/*
 * @Description: AWS S3存储提供者实现（使用aws-sdk-go-v2）
 * @Author: 安知鱼
 * @Date: 2025-09-03 10:22:40
 * @LastEditTime: 2025-09-18 20:05:12
 * @LastEditors: 安知鱼
 */
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/anzhiyu-c/arsip-app/pkg/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config 是创建 S3 客户端所需的配置。
type S3Config struct {
	// Server 可以是区域名称（如 "ap-southeast-1"）或完整的自定义 endpoint URL。
	Server    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// AWSS3Provider 实现了 IStorageProvider 接口，用于处理与 AWS S3 的所有交互。
// 也兼容 MinIO、Ceph RGW 等 S3 协议的对象存储。
type AWSS3Provider struct {
	client *s3.Client
	bucket string
}

// NewAWSS3Provider 是 AWSS3Provider 的构造函数。
func NewAWSS3Provider(ctx context.Context, s3cfg S3Config) (IStorageProvider, error) {
	if s3cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 配置缺少存储桶名称")
	}
	if s3cfg.AccessKey == "" || s3cfg.SecretKey == "" {
		return nil, fmt.Errorf("S3 配置缺少 AccessKey 或 SecretKey")
	}

	// Server 格式可能是 "us-west-2" 或 "https://s3.us-west-2.amazonaws.com" 或自定义 endpoint
	region := "us-east-1"
	var customEndpoint *string

	if s3cfg.Server != "" {
		if strings.HasPrefix(s3cfg.Server, "http") {
			parsedURL, err := url.Parse(s3cfg.Server)
			if err == nil {
				customEndpoint = &s3cfg.Server
				if strings.Contains(parsedURL.Host, "amazonaws.com") {
					parts := strings.Split(parsedURL.Host, ".")
					if len(parts) >= 4 && strings.HasPrefix(parts[0], "s3") {
						region = parts[1] // s3.us-west-2.amazonaws.com
					}
				}
			}
		} else {
			region = s3cfg.Server
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s3cfg.AccessKey,
			s3cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建 AWS S3 配置失败: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if customEndpoint != nil {
			o.BaseEndpoint = aws.String(*customEndpoint)
			o.UsePathStyle = true // 自定义 endpoint 通常需要 path-style
		}
	})

	log.Printf("[AWS S3] 成功创建客户端 - 区域: %s, 存储桶: %s", region, s3cfg.Bucket)
	return &AWSS3Provider{client: client, bucket: s3cfg.Bucket}, nil
}

func (p *AWSS3Provider) Put(ctx context.Context, key string, file io.Reader, contentType string, overwrite bool) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	}
	if !overwrite {
		// 条件写入由 S3 侧原子判定，跨客户端并发上传同一个键也只会有一个成功
		input.IfNoneMatch = aws.String("*")
	}

	_, err := p.client.PutObject(ctx, input)
	if err != nil {
		if isConditionalConflict(err) {
			return fmt.Errorf("对象 '%s' 已存在: %w", key, constant.ErrConflict)
		}
		return fmt.Errorf("上传对象 '%s' 到 S3 失败: %w", key, err)
	}
	return nil
}

// isConditionalConflict 判断 S3 错误是否来自条件写入失败。
// PreconditionFailed: 键已被占用；ConditionalRequestConflict: 并发条件写争用。
func isConditionalConflict(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "PreconditionFailed", "ConditionalRequestConflict":
		return true
	}
	return false
}

func (p *AWSS3Provider) Delete(ctx context.Context, key string) error {
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("删除 S3 对象 '%s' 失败: %w", key, err)
	}
	return nil
}

func (p *AWSS3Provider) SignedURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	presignClient := s3.NewPresignClient(p.client)
	presignResult, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiresIn
	})
	if err != nil {
		return "", fmt.Errorf("生成 S3 预签名 URL 失败: %w", err)
	}
	return presignResult.URL, nil
}

func (p *AWSS3Provider) Exists(ctx context.Context, key string) (bool, error) {
	_, err := p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("检查 S3 对象 '%s' 失败: %w", key, err)
	}
	return true, nil
}

func (p *AWSS3Provider) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var result []ObjectInfo

	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("列出 S3 对象失败 (前缀: %s): %w", prefix, err)
		}
		for _, obj := range page.Contents {
			info := ObjectInfo{
				Key: aws.ToString(obj.Key),
			}
			if obj.Size != nil {
				info.Size = *obj.Size
			}
			if obj.LastModified != nil {
				info.ModTime = *obj.LastModified
			}
			result = append(result, info)
		}
	}
	return result, nil
}
