package handler

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// DebugEnv は接続設定の確認用に環境変数を返します。
// PASSWORD / SECRET / TOKEN を含むキーは値をマスクします。
func DebugEnv(c *gin.Context) {
	env := gin.H{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if isSensitiveKey(k) {
			v = "***"
		}
		env[k] = v
	}
	c.JSON(200, env)
}

func isSensitiveKey(k string) bool {
	k = strings.ToUpper(k)
	return strings.Contains(k, "PASSWORD") ||
		strings.Contains(k, "SECRET") ||
		strings.Contains(k, "TOKEN")
}
