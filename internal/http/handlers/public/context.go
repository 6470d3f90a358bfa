package public

import (
	"fmt"
	"strings"

	handlershared "github.com/xihu-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "user_id")
}

// cartOwner 解析购物车归属者：登录用户优先，否则取匿名会话头
// 两者都缺失时返回 false，由调用方拒绝请求
func cartOwner(c *gin.Context) (string, bool) {
	if value, ok := c.Get("user_id"); ok {
		if id, ok := value.(uint); ok && id > 0 {
			return fmt.Sprintf("u:%d", id), true
		}
	}
	session := strings.TrimSpace(c.GetHeader("X-Cart-Session"))
	if session != "" {
		return "s:" + session, true
	}
	return "", false
}
