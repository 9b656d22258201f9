// Package limiter provides token bucket based rate limiting.
// Package limiter 提供基于令牌桶的限流能力
package limiter

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face limiter interface
// Face 限流器接口
type Face interface {
	// Key extracts the bucket key from the request // 从请求中提取桶的键
	Key(c *gin.Context) string
	// GetBucket returns the bucket for the key // 返回键对应的令牌桶
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets registers bucket rules // 注册限流规则
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule a single token bucket rule
// BucketRule 单条令牌桶规则
type BucketRule struct {
	Key          string        // Bucket key, usually a URI prefix // 桶的键，通常是 URI 前缀
	FillInterval time.Duration // Token fill interval // 放入令牌的间隔
	Capacity     int64         // Bucket capacity // 桶的容量
	Quantum      int64         // Tokens added per interval // 每次放入的令牌数
}
