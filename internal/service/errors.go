package service

import "errors"

// 业务错误哨兵，controller 层用 errors.Is 映射 HTTP 状态码
var (
	// ErrValidation 参数校验失败 -> 400
	ErrValidation = errors.New("参数校验失败")
	// ErrNotFound 资源不存在 -> 404
	ErrNotFound = errors.New("资源不存在")
	// ErrForbidden 店铺归属校验失败 -> 403
	ErrForbidden = errors.New("无权操作该店铺")
	// ErrConflict 引用完整性冲突 -> 409
	ErrConflict = errors.New("资源被引用")

	// 认证相关
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserDisabled       = errors.New("账号已停用")
	ErrInvalidToken       = errors.New("Token 无效")
)
