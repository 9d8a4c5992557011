package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/service"
)

// SeedServices 汇总填充数据需要的服务
type SeedServices struct {
	Users      service.UserService
	Categories service.CategoryService
	Posts      service.PostService
	Comments   service.CommentService
	Likes      service.LikeService
}

// Seed 通过服务层填充测试数据：先串行建用户和分类，再并发建帖子，
// 每个帖子随机挂若干评论和点赞。
func Seed(ctx context.Context, svcs *SeedServices, logger *core.ZapLogger, numUsers, numCategories, numPosts int) {
	logger.Info("开始填充测试数据 (通过服务层)...")

	// --- 用户 ---
	userIDs := make([]uint64, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		req := &dto.RegisterRequest{
			Username: fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("%d_%s", i, gofakeit.Email()),
			Password: gofakeit.Password(true, true, true, false, false, 12),
		}
		user, err := svcs.Users.Register(ctx, req)
		if err != nil {
			logger.Error("创建用户失败", zap.Error(err), zap.String("username", req.Username))
			continue
		}
		userIDs = append(userIDs, user.ID)
	}
	logger.Info("用户填充完毕", zap.Int("成功数量", len(userIDs)))
	if len(userIDs) == 0 {
		logger.Error("没有可用用户，中止填充")
		return
	}

	// --- 分类 ---
	categoryIDs := make([]uint64, 0, numCategories)
	for i := 0; i < numCategories; i++ {
		req := &dto.CreateCategoryRequest{
			Name: fmt.Sprintf("%s %d", gofakeit.BuzzWord(), i),
		}
		category, err := svcs.Categories.CreateCategory(ctx, req)
		if err != nil {
			logger.Error("创建分类失败", zap.Error(err), zap.String("name", req.Name))
			continue
		}
		categoryIDs = append(categoryIDs, category.ID)
	}
	logger.Info("分类填充完毕", zap.Int("成功数量", len(categoryIDs)))

	// --- 帖子（并发） ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
			createReq := &dto.CreatePostRequest{
				Title:   fmt.Sprintf("%s #%d", gofakeit.Sentence(gofakeit.Number(3, 8)), itemIndex),
				Content: gofakeit.Paragraph(3, 5, 20, "\n\n"),
			}
			if len(categoryIDs) > 0 && gofakeit.Bool() {
				categoryID := categoryIDs[gofakeit.Number(0, len(categoryIDs)-1)]
				createReq.CategoryID = &categoryID
			}

			post, err := svcs.Posts.CreatePost(ctx, authorID, createReq)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.Uint64("author_id", authorID))
				return
			}
			logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
				zap.Uint64("post_id", post.ID),
				zap.String("title", post.Title))

			// 随机评论
			for j := 0; j < gofakeit.Number(0, 3); j++ {
				commenterID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
				_, err := svcs.Comments.CreateComment(ctx, commenterID, enums.RoleUser, &dto.CreateCommentRequest{
					PostID:      post.ID,
					CommentText: gofakeit.Sentence(gofakeit.Number(5, 15)),
				})
				if err != nil {
					logger.Warn("创建评论失败", zap.Error(err), zap.Uint64("post_id", post.ID))
				}
			}

			// 随机点赞（同一用户重复点赞会被服务层拒绝，忽略冲突即可）
			for j := 0; j < gofakeit.Number(0, 5); j++ {
				likerID := userIDs[gofakeit.Number(0, len(userIDs)-1)]
				if _, err := svcs.Likes.CreateLike(ctx, likerID, &dto.CreateLikeRequest{PostID: post.ID}); err != nil {
					logger.Debug("创建点赞被跳过", zap.Error(err), zap.Uint64("post_id", post.ID))
				}
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
