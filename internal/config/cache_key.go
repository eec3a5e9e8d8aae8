package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminTokenKey returns the cache key holding the bearer token of a browser admin session
func (r *CacheKeyStruct) AdminTokenKey(sessionID string) string {
	return fmt.Sprintf("admin:session:%s:token", sessionID)
}

var CacheKey = NewCacheKeyStruct()
