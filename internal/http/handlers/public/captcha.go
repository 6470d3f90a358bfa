package public

import (
	"errors"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCaptcha 获取登录图片验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if errors.Is(err, service.ErrCaptchaUnavailable) {
			response.Success(c, gin.H{"enabled": false})
			return
		}
		respondError(c, response.CodeInternal, "验证码生成失败", err)
		return
	}
	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
