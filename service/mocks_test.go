package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// 内存版仓库实现，模拟 MySQL 仓库的契约：
// 唯一约束冲突返回 ErrConflict，缺失记录返回 ErrNotFound。

// --- users ---

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("username or email already exists: %w", myErrors.ErrConflict)
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user '%s' not found: %w", username, myErrors.ErrNotFound)
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// --- categories ---

type fakeCategoryRepo struct {
	mu         sync.Mutex
	nextID     uint64
	categories map[uint64]*entities.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uint64]*entities.Category)}
}

func (r *fakeCategoryRepo) CreateCategory(_ context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("category with slug '%s' already exists: %w", category.Slug, myErrors.ErrConflict)
		}
	}
	r.nextID++
	category.ID = r.nextID
	cp := *category
	r.categories[category.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetCategoryByID(_ context.Context, id uint64) (*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetCategoryBySlug(_ context.Context, slug string) (*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("category with slug '%s' not found: %w", slug, myErrors.ErrNotFound)
}

func (r *fakeCategoryRepo) ListCategories(_ context.Context) ([]*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategoryRepo) ExistsBySlug(_ context.Context, slug string, excludeID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) UpdateCategory(_ context.Context, id uint64, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return fmt.Errorf("category with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	if v, ok := updates["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := updates["slug"]; ok {
		c.Slug = v.(string)
	}
	return nil
}

func (r *fakeCategoryRepo) DeleteCategory(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return fmt.Errorf("category with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	delete(r.categories, id)
	return nil
}

// --- posts ---

type fakePostRepo struct {
	mu     sync.Mutex
	nextID uint64
	posts  map[uint64]*entities.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*entities.Post)}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *entities.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return fmt.Errorf("post with slug '%s' already exists: %w", post.Slug, myErrors.ErrConflict)
		}
	}
	r.nextID++
	post.ID = r.nextID
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id uint64) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostRepo) GetPostBySlug(_ context.Context, slug string) (*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("post with slug '%s' not found: %w", slug, myErrors.ErrNotFound)
}

func (r *fakePostRepo) ListPosts(_ context.Context, onlyPublished bool) ([]*entities.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if onlyPublished && !p.IsPublished {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePostRepo) ExistsBySlug(_ context.Context, slug string, excludeID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, postID uint64, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return fmt.Errorf("post with id %d not found: %w", postID, myErrors.ErrNotFound)
	}
	if v, ok := updates["title"]; ok {
		p.Title = v.(string)
	}
	if v, ok := updates["slug"]; ok {
		p.Slug = v.(string)
	}
	if v, ok := updates["content"]; ok {
		p.Content = v.(string)
	}
	if v, ok := updates["thumbnail"]; ok {
		p.Thumbnail = v.(string)
	}
	if v, ok := updates["category_id"]; ok {
		id := v.(uint64)
		p.CategoryID = &id
	}
	if v, ok := updates["is_published"]; ok {
		p.IsPublished = v.(bool)
	}
	return nil
}

func (r *fakePostRepo) IncrementViews(_ context.Context, postID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[postID]
	if !ok {
		return fmt.Errorf("post with id %d not found: %w", postID, myErrors.ErrNotFound)
	}
	p.ViewsCount++
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

// --- comments ---

type fakeCommentRepo struct {
	mu       sync.Mutex
	nextID   uint64
	comments map[uint64]*entities.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*entities.Comment)}
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *entities.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	comment.ID = r.nextID
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id uint64) (*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) listWhere(keep func(*entities.Comment) bool) []*entities.Comment {
	out := make([]*entities.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	// 最新优先
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeCommentRepo) ListComments(_ context.Context) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(*entities.Comment) bool { return true }), nil
}

func (r *fakeCommentRepo) ListApprovedByPostID(_ context.Context, postID uint64) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(c *entities.Comment) bool { return c.PostID == postID && c.IsApproved }), nil
}

func (r *fakeCommentRepo) ListPending(_ context.Context) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(c *entities.Comment) bool { return !c.IsApproved }), nil
}

func (r *fakeCommentRepo) UpdateComment(_ context.Context, id uint64, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return fmt.Errorf("comment with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	if v, ok := updates["comment_text"]; ok {
		c.CommentText = v.(string)
	}
	if v, ok := updates["is_approved"]; ok {
		c.IsApproved = v.(bool)
	}
	return nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}

// --- likes ---

type fakeLikeRepo struct {
	mu     sync.Mutex
	nextID uint64
	likes  map[uint64]*entities.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[uint64]*entities.Like)}
}

func (r *fakeLikeRepo) CreateLike(_ context.Context, like *entities.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.likes {
		if l.UserID == like.UserID && l.PostID == like.PostID {
			return fmt.Errorf("user has already liked this post: %w", myErrors.ErrConflict)
		}
	}
	r.nextID++
	like.ID = r.nextID
	cp := *like
	r.likes[like.ID] = &cp
	return nil
}

func (r *fakeLikeRepo) GetLikeByID(_ context.Context, id uint64) (*entities.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.likes[id]
	if !ok {
		return nil, fmt.Errorf("like with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLikeRepo) GetLikeByUserAndPost(_ context.Context, userID, postID uint64) (*entities.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			cp := *l
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("like not found: %w", myErrors.ErrNotFound)
}

func (r *fakeLikeRepo) listWhere(keep func(*entities.Like) bool) []*entities.Like {
	out := make([]*entities.Like, 0, len(r.likes))
	for _, l := range r.likes {
		if keep(l) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeLikeRepo) ListLikes(_ context.Context) ([]*entities.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(*entities.Like) bool { return true }), nil
}

func (r *fakeLikeRepo) ListLikesByPostID(_ context.Context, postID uint64) ([]*entities.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(l *entities.Like) bool { return l.PostID == postID }), nil
}

func (r *fakeLikeRepo) ListLikesByUserID(_ context.Context, userID uint64) ([]*entities.Like, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(l *entities.Like) bool { return l.UserID == userID }), nil
}

func (r *fakeLikeRepo) CountLikesByPostID(_ context.Context, postID uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, l := range r.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (r *fakeLikeRepo) DeleteLike(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.likes[id]; !ok {
		return fmt.Errorf("like with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	delete(r.likes, id)
	return nil
}

func (r *fakeLikeRepo) DeleteLikeByUserAndPost(_ context.Context, userID, postID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.likes {
		if l.UserID == userID && l.PostID == postID {
			delete(r.likes, id)
			return nil
		}
	}
	return fmt.Errorf("like not found: %w", myErrors.ErrNotFound)
}

// --- subscriptions ---

type fakeSubscriptionRepo struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]*entities.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: make(map[uint64]*entities.Subscription)}
}

func (r *fakeSubscriptionRepo) CreateSubscription(_ context.Context, sub *entities.Subscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	sub.ID = r.nextID
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) GetSubscriptionByID(_ context.Context, id uint64) (*entities.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return nil, fmt.Errorf("subscription with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubscriptionRepo) ExistsMatching(_ context.Context, subscriberID uint64, authorID, categoryID *uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.SubscriberID != subscriberID {
			continue
		}
		// 只按提供的字段匹配
		if authorID != nil && (s.AuthorID == nil || *s.AuthorID != *authorID) {
			continue
		}
		if categoryID != nil && (s.CategoryID == nil || *s.CategoryID != *categoryID) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *fakeSubscriptionRepo) ListSubscriptions(_ context.Context, filter mysql.SubscriptionFilter) ([]*entities.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Subscription, 0, len(r.subs))
	for _, s := range r.subs {
		if filter.SubscriberID != nil && s.SubscriberID != *filter.SubscriberID {
			continue
		}
		if filter.AuthorID != nil && (s.AuthorID == nil || *s.AuthorID != *filter.AuthorID) {
			continue
		}
		if filter.CategoryID != nil && (s.CategoryID == nil || *s.CategoryID != *filter.CategoryID) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubscriptionRepo) UpdateSubscription(_ context.Context, id uint64, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[id]
	if !ok {
		return fmt.Errorf("subscription with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	if v, ok := updates["subscriber_id"]; ok {
		s.SubscriberID = v.(uint64)
	}
	if v, ok := updates["author_id"]; ok {
		s.AuthorID, _ = v.(*uint64)
	}
	if v, ok := updates["category_id"]; ok {
		s.CategoryID, _ = v.(*uint64)
	}
	return nil
}

func (r *fakeSubscriptionRepo) DeleteSubscription(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[id]; !ok {
		return fmt.Errorf("subscription with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	delete(r.subs, id)
	return nil
}

// --- notifications ---

type fakeNotificationRepo struct {
	mu            sync.Mutex
	nextID        uint64
	notifications map[uint64]*entities.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[uint64]*entities.Notification)}
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, n *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	n.ID = r.nextID
	cp := *n
	r.notifications[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) GetNotificationByID(_ context.Context, id uint64) (*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return nil, fmt.Errorf("notification with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) listWhere(keep func(*entities.Notification) bool) []*entities.Notification {
	out := make([]*entities.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		if keep(n) {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeNotificationRepo) ListNotifications(_ context.Context) ([]*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(*entities.Notification) bool { return true }), nil
}

func (r *fakeNotificationRepo) ListNotificationsByUserID(_ context.Context, userID uint64) ([]*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(n *entities.Notification) bool { return n.UserID == userID }), nil
}

func (r *fakeNotificationRepo) ListUnreadByUserID(_ context.Context, userID uint64) ([]*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listWhere(func(n *entities.Notification) bool { return n.UserID == userID && !n.IsRead }), nil
}

func (r *fakeNotificationRepo) UpdateNotification(_ context.Context, id uint64, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return fmt.Errorf("notification with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	if v, ok := updates["message"]; ok {
		n.Message = v.(string)
	}
	if v, ok := updates["is_read"]; ok {
		n.IsRead = v.(bool)
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uint64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var updated int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			updated++
		}
	}
	return updated, nil
}

func (r *fakeNotificationRepo) DeleteNotification(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return fmt.Errorf("notification with id %d not found: %w", id, myErrors.ErrNotFound)
	}
	delete(r.notifications, id)
	return nil
}

// --- post batch reads ---

type fakePostBatchRepo struct {
	posts *fakePostRepo
}

func (r *fakePostBatchRepo) GetPostsByIDs(_ context.Context, ids []uint64) ([]*entities.Post, error) {
	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()
	out := make([]*entities.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.posts.posts[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePostBatchRepo) GetTopPostsByViews(_ context.Context, limit int) ([]*entities.Post, error) {
	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()
	out := make([]*entities.Post, 0, len(r.posts.posts))
	for _, p := range r.posts.posts {
		if !p.IsPublished {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ViewsCount > out[j].ViewsCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostBatchRepo) ScanViewCounts(_ context.Context, afterID uint64, batchSize int) ([]mysql.PostViewRow, error) {
	r.posts.mu.Lock()
	defer r.posts.mu.Unlock()
	rows := make([]mysql.PostViewRow, 0, len(r.posts.posts))
	for _, p := range r.posts.posts {
		if p.ID > afterID {
			rows = append(rows, mysql.PostViewRow{ID: p.ID, ViewsCount: p.ViewsCount})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	if len(rows) > batchSize {
		rows = rows[:batchSize]
	}
	return rows, nil
}

// --- redis fakes ---

type fakeRankRepo struct {
	mu     sync.Mutex
	scores map[uint64]int64
}

func newFakeRankRepo() *fakeRankRepo {
	return &fakeRankRepo{scores: make(map[uint64]int64)}
}

func (r *fakeRankRepo) IncrRank(_ context.Context, postID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[postID]++
	return nil
}

func (r *fakeRankRepo) TopN(_ context.Context, n int64) ([]uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uint64, 0, len(r.scores))
	for id := range r.scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return r.scores[ids[i]] > r.scores[ids[j]] })
	if int64(len(ids)) > n {
		ids = ids[:n]
	}
	return ids, nil
}

func (r *fakeRankRepo) ReplaceRank(_ context.Context, counts map[uint64]int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = make(map[uint64]int64, len(counts))
	for id, score := range counts {
		r.scores[id] = score
	}
	return nil
}

type fakeCacheRepo struct {
	mu    sync.Mutex
	posts []*vo.PostVO
}

func (r *fakeCacheRepo) SetHotPosts(_ context.Context, posts []*vo.PostVO) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = posts
	return nil
}

func (r *fakeCacheRepo) GetHotPosts(_ context.Context) ([]*vo.PostVO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.posts == nil {
		return nil, fmt.Errorf("hot posts cache empty: %w", myErrors.ErrCacheMiss)
	}
	return r.posts, nil
}

// --- object storage fake ---

type fakeCOSClient struct {
	mu       sync.Mutex
	uploaded []string
}

func (c *fakeCOSClient) UploadFile(_ context.Context, objectKey string, _ io.Reader, _ int64, _ string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploaded = append(c.uploaded, objectKey)
	return "https://cos.example.com/" + objectKey, nil
}

func (c *fakeCOSClient) DeleteObject(_ context.Context, _ string) error {
	return nil
}
