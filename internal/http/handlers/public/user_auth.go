package public

import (
	"errors"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/service"

	"github.com/gin-gonic/gin"
)

// registerRequest 注册请求
type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	user, err := h.UserAuthService.Register(service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Phone:    req.Phone,
		Email:    req.Email,
		Nickname: req.Nickname,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameExists):
			respondError(c, response.CodeConflict, "用户名已存在", nil)
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeBadRequest, "用户名或密码不符合要求", nil)
		default:
			respondError(c, response.CodeInternal, "注册失败", err)
		}
		return
	}
	response.Success(c, user)
}

// loginRequest 登录请求
type loginRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	if err := h.CaptchaService.Verify(service.CaptchaVerifyPayload{
		CaptchaID:   req.CaptchaID,
		CaptchaCode: req.CaptchaCode,
	}); err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaRequired):
			respondError(c, response.CodeBadRequest, "需要验证码", nil)
		default:
			respondError(c, response.CodeBadRequest, "验证码错误", nil)
		}
		return
	}

	result, err := h.UserAuthService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "用户名或密码错误", nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeForbidden, "用户已被禁用", nil)
		default:
			respondError(c, response.CodeInternal, "登录失败", err)
		}
		return
	}
	response.Success(c, result)
}

// Logout 退出登录并清空购物车槽位
func (h *Handler) Logout(c *gin.Context) {
	if owner, ok := cartOwner(c); ok {
		if _, err := h.CartService.Clear(c.Request.Context(), owner); err != nil {
			respondError(c, response.CodeInternal, "退出登录失败", err)
			return
		}
	}
	response.SuccessWithMsg(c, "已退出登录", nil)
}

// Session 返回当前会话登录态，未登录时 user 为空
func (h *Handler) Session(c *gin.Context) {
	if value, ok := c.Get("user_id"); ok {
		if userID, ok := value.(uint); ok && userID > 0 {
			user, err := h.UserAuthService.GetProfile(userID)
			if err == nil {
				response.Success(c, gin.H{"logged_in": true, "user": user})
				return
			}
		}
	}
	response.Success(c, gin.H{"logged_in": false, "user": nil})
}

// GetProfile 获取当前用户资料
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(userID)
	if err != nil {
		respondError(c, response.CodeNotFound, "用户不存在", err)
		return
	}
	response.Success(c, user)
}
