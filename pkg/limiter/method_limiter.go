package limiter

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// MethodLimiter rate limiter keyed by request URI prefix
// MethodLimiter 按请求 URI 前缀限流的限流器
type MethodLimiter struct {
	buckets map[string]*ratelimit.Bucket
}

// NewMethodLimiter creates a MethodLimiter
// NewMethodLimiter 创建 MethodLimiter 实例
func NewMethodLimiter() Face {
	return &MethodLimiter{
		buckets: make(map[string]*ratelimit.Bucket),
	}
}

// Key strips the query string from the request URI
// Key 去掉请求 URI 中的查询串
func (l *MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	index := strings.Index(uri, "?")
	if index == -1 {
		return uri
	}
	return uri[:index]
}

func (l *MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for prefix, bucket := range l.buckets {
		if strings.HasPrefix(key, prefix) {
			return bucket, true
		}
	}
	return nil, false
}

func (l *MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.buckets[rule.Key]; !ok {
			l.buckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
