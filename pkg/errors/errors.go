package errors

import "errors"

// ErrRecordNotFound 存储中不存在该记录（会话过期或 ID 无效）
var ErrRecordNotFound = errors.New("记录不存在")

// ErrInvalidScale 评分体系只能是 4.0 或 5.0
var ErrInvalidScale = errors.New("无效的评分体系")
