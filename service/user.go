package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/content_service/models/dto"
	"github.com/Xushengqwer/content_service/models/entities"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/models/vo"
	"github.com/Xushengqwer/content_service/myErrors"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
)

// UserClaims JWT 载荷，认证中间件解析后注入请求上下文
type UserClaims struct {
	UserID uint64         `json:"uid"`
	Role   enums.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// UserService 定义了用户注册、登录与查询的业务逻辑接口。
type UserService interface {
	// Register 注册新用户，用户名或邮箱已被占用时返回 ErrConflict。
	Register(ctx context.Context, req *dto.RegisterRequest) (*vo.UserVO, error)

	// Login 校验凭证并签发 JWT，凭证无效统一返回 ErrForbidden（不区分用户不存在与密码错误）。
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.TokenVO, error)

	// GetUserByID 返回用户的公开投影，未找到返回 ErrNotFound。
	GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error)
}

type userService struct {
	userRepo mysql.UserRepository
	jwtCfg   core.JWTConfig
	logger   *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(userRepo mysql.UserRepository, jwtCfg core.JWTConfig, logger *core.ZapLogger) UserService {
	return &userService{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		logger:   logger,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.UserVO, error) {
	taken, err := s.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking username/email availability: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("username or email already exists: %w", myErrors.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entities.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     enums.RoleUser,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("新用户注册成功", zap.Uint64("userID", user.ID), zap.String("username", user.Username))
	return vo.NewUserVO(user), nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.TokenVO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, myErrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", myErrors.ErrForbidden)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", myErrors.ErrForbidden)
	}

	expiresAt := time.Now().Add(time.Duration(s.jwtCfg.ExpireMinutes) * time.Minute)
	claims := UserClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &vo.TokenVO{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User:        *vo.NewUserVO(user),
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewUserVO(user), nil
}
