package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderFunctionKey は関数キーを受け取るヘッダー名です。
	HeaderFunctionKey = "x-functions-key"
	// QueryFunctionKey は関数キーを受け取るクエリパラメータ名です。
	QueryFunctionKey = "code"
)

// FunctionKey は関数キーを要求するミドルウェアを返します。
// キーはヘッダーまたはクエリパラメータから読み取り、定数時間で比較します。
// keyが空の場合は検証を行いません。
func FunctionKey(key string) gin.HandlerFunc {
	want := []byte(key)
	return func(c *gin.Context) {
		if len(want) == 0 {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderFunctionKey)
		if got == "" {
			got = c.Query(QueryFunctionKey)
		}
		if got == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing function key"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid function key"})
			return
		}

		c.Next()
	}
}
