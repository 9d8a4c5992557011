package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Xushengqwer/content_service/myErrors"
)

// slug 唯一性策略。
// 帖子与分类各自维护独立的 slug 命名空间，创建和改名都要先经过这里的查重。
// 应用层查重与存储层唯一索引构成双重防线：并发竞态下绕过查重的写入
// 会撞上唯一索引，由仓库层映射为同样的 ErrConflict。

// SlugIndex 抽象了某一命名空间内的 slug 占用探测。
// excludeID 非零时排除该记录自身，供更新场景使用。
type SlugIndex interface {
	ExistsBySlug(ctx context.Context, slug string, excludeID uint64) (bool, error)
}

// Slugify 将标题或名称派生为 slug：小写化，非字母数字的连续片段折叠为单个连字符。
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen && b.Len() > 0 {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// EnsureUniqueSlug 在给定命名空间内查重，被占用时返回携带 slug 的 ErrConflict。
// entityName 进入错误消息，如 "post" / "category"。
func EnsureUniqueSlug(ctx context.Context, index SlugIndex, entityName, slug string, excludeID uint64) error {
	taken, err := index.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return fmt.Errorf("checking slug '%s': %w", slug, err)
	}
	if taken {
		return fmt.Errorf("%s with slug '%s' already exists: %w", entityName, slug, myErrors.ErrConflict)
	}
	return nil
}
