package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// RenderKeyOpts are the render settings that change the output bytes.
type RenderKeyOpts struct {
	Format  string  `json:"format"`
	Path    []int   `json:"path,omitempty"`
	Marked  []int   `json:"marked,omitempty"`
	Labels  bool    `json:"labels,omitempty"`
	Animate bool    `json:"animate,omitempty"`
	Scale   float64 `json:"scale,omitempty"`
}

// RenderKey returns the cache key for rendering scene generation gen with opts.
func RenderKey(gen uint64, opts RenderKeyOpts) string {
	return hashKey(fmt.Sprintf("render:%d", gen), opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
