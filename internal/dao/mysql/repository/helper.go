package repository

import (
	"context"
	"errors"

	"kama_community_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 同 wrapDBError，支持格式化消息
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== 通用读写 ====================

// findOne 按条件读取单行，记录不存在时返回 (nil, nil)
func findOne[T any](ctx context.Context, db *gorm.DB, desc string, query string, args ...any) (*T, error) {
	var row T
	err := db.WithContext(ctx).Where(query, args...).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBErrorf(err, "查询%s", desc)
	}
	return &row, nil
}

// updateByID 按主键做部分字段更新后重新读取
// 更新后行已不存在时返回 "<entity> not found"
func updateByID[T any](ctx context.Context, db *gorm.DB, entity string, id string, updates map[string]any) (*T, error) {
	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, wrapDBErrorf(err, "更新%s id=%s", entity, id)
		}
	}
	row, err := findOne[T](ctx, db, entity, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errorx.Newf(errorx.CodeNotFound, "%s not found", entity)
	}
	return row, nil
}

// deleteWhere 按条件删除，不检查行是否存在
func deleteWhere[T any](ctx context.Context, db *gorm.DB, desc string, query string, args ...any) error {
	if err := db.WithContext(ctx).Where(query, args...).Delete(new(T)).Error; err != nil {
		return wrapDBErrorf(err, "删除%s", desc)
	}
	return nil
}
