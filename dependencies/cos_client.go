package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// COSClientInterface 定义了对象存储客户端需要实现的方法
type COSClientInterface interface {
	// UploadFile 从 io.Reader 上传文件，并返回其公开可访问的 URL。
	// 调用方负责生成合适的 objectKey。
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)

	// DeleteObject 从 COS 删除一个对象
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosClient struct {
	client    *cos.Client
	bucketURL *url.URL
	logger    *core.ZapLogger
}

// InitCOS 初始化腾讯云 COS 客户端
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (COSClientInterface, error) {
	if cfg == nil || cfg.BucketURL == "" || cfg.SecretID == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (BucketURL, SecretID, SecretKey)")
	}

	bucketURL, err := url.Parse(cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", cfg.BucketURL, err)
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	logger.Info("COS 客户端初始化成功", zap.String("bucketURL", bucketURL.String()))

	return &cosClient{
		client:    client,
		bucketURL: bucketURL,
		logger:    logger,
	}, nil
}

// buildPublicObjectURL 构建对象的完整公共访问 URL
func (c *cosClient) buildPublicObjectURL(objectKey string) string {
	finalURL := *c.bucketURL
	finalURL.Path = "/" + strings.TrimPrefix(objectKey, "/")
	return finalURL.String()
}

func (c *cosClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}

	resp, err := c.client.Object.Put(ctx, objectKey, reader, opts)
	if err != nil {
		c.logger.Error("COS 文件上传 API 调用失败", zap.String("objectKey", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传文件 '%s' 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errMsgBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 文件上传返回非200状态码",
			zap.String("objectKey", objectKey),
			zap.Int("statusCode", resp.StatusCode),
		)
		return "", fmt.Errorf("COS 文件上传失败，状态码: %d, 响应: %s", resp.StatusCode, string(errMsgBytes))
	}

	publicURL := c.buildPublicObjectURL(objectKey)
	c.logger.Info("COS 文件上传成功", zap.String("objectKey", objectKey), zap.String("url", publicURL))
	return publicURL, nil
}

func (c *cosClient) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		c.logger.Error("COS 对象删除 API 调用失败", zap.String("objectKey", objectKey), zap.Error(err))
		return fmt.Errorf("从 COS 删除对象 '%s' 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("COS 对象删除失败，状态码: %d", resp.StatusCode)
	}
	return nil
}
