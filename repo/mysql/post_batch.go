package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/pkg/core"
)

// PostViewRow 帖子 ID 与权威浏览量的投影，供排行榜重建任务消费
type PostViewRow struct {
	ID         uint64
	ViewsCount int64
}

// PostBatchRepository 定义了面向后台任务的批量查询接口。
// 主要为热门帖子缓存与排行榜重建提供数据源，通过批量查询降低数据库负载。
type PostBatchRepository interface {
	// GetPostsByIDs 根据 ID 列表批量检索帖子，使用 "WHERE id IN (...)"。
	// 结果顺序不保证与入参一致，调用方需要时自行排序。
	GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error)

	// GetTopPostsByViews 返回已发布帖子中浏览量最高的前 limit 条。
	GetTopPostsByViews(ctx context.Context, limit int) ([]*entities.Post, error)

	// ScanViewCounts 按主键分批遍历全部帖子的 (id, views_count)。
	// - afterID 为上一批最后一条的 ID，首批传 0。
	// - 返回行数小于 batchSize 时表示遍历完毕。
	ScanViewCounts(ctx context.Context, afterID uint64, batchSize int) ([]PostViewRow, error)
}

type postBatchRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostBatchRepository 是 postBatchRepository 的构造函数。
func NewPostBatchRepository(db *gorm.DB, logger *core.ZapLogger) PostBatchRepository {
	return &postBatchRepository{db: db, logger: logger}
}

func (r *postBatchRepository) GetPostsByIDs(ctx context.Context, ids []uint64) ([]*entities.Post, error) {
	if len(ids) == 0 {
		return []*entities.Post{}, nil
	}
	var posts []*entities.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postBatchRepository) GetTopPostsByViews(ctx context.Context, limit int) ([]*entities.Post, error) {
	var posts []*entities.Post
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("views_count DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postBatchRepository) ScanViewCounts(ctx context.Context, afterID uint64, batchSize int) ([]PostViewRow, error) {
	var rows []PostViewRow
	err := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Select("id", "views_count").
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(batchSize).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
