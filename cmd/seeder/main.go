package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/content_service/config"
	"github.com/Xushengqwer/content_service/dependencies"
	"github.com/Xushengqwer/content_service/mq/producer"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/content_service/repo/redis"
	"github.com/Xushengqwer/content_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numUsers, numCategories, numPosts int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numUsers, "users", 10, "要生成的用户数量 (默认: 10)")
	flag.IntVar(&numCategories, "categories", 5, "要生成的分类数量 (默认: 5)")
	flag.IntVar(&numPosts, "posts", 50, "要生成的帖子数量 (默认: 50)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 用户 / %d 分类 / %d 帖子...\n", absConfigFile, numUsers, numCategories, numPosts)

	if numUsers <= 0 || numCategories <= 0 || numPosts <= 0 {
		fmt.Println("错误: 生成数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.AppConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空，请检查配置文件或环境变量。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	} else {
		logger.Warn("未配置 Kafka brokers，Seeder 将不发送事件")
	}

	// --- 5. 初始化 Redis 与 COS（可选依赖，失败只降级） ---
	var rankRepo redisRepo.PostRankRepository
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，排行榜写入将被跳过", zap.Error(redisErr))
	} else {
		rankRepo = redisRepo.NewPostRankRepository(rdb, logger)
	}

	cos, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Warn("初始化 COS 客户端失败 (Seeder)，缩略图上传不可用", zap.Error(cosErr))
	}

	// --- 6. 初始化 Repositories 与 Services ---
	userRepo := mysql.NewUserRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	postRepo := mysql.NewPostRepository(db, logger)
	commentRepo := mysql.NewCommentRepository(db, logger)
	likeRepo := mysql.NewLikeRepository(db, logger)

	userSvc := service.NewUserService(userRepo, cfg.JWTConfig, logger)
	categorySvc := service.NewCategoryService(categoryRepo, logger)
	postSvc := service.NewPostService(postRepo, userRepo, categoryRepo, rankRepo, cos, kafkaProducer, logger)
	commentSvc := service.NewCommentService(commentRepo, postRepo, userRepo, kafkaProducer, logger)
	likeSvc := service.NewLikeService(likeRepo, postRepo, userRepo, kafkaProducer, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...",
		zap.Int("用户", numUsers),
		zap.Int("分类", numCategories),
		zap.Int("帖子", numPosts))

	Seed(ctx, &SeedServices{
		Users:      userSvc,
		Categories: categorySvc,
		Posts:      postSvc,
		Comments:   commentSvc,
		Likes:      likeSvc,
	}, logger, numUsers, numCategories, numPosts)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 8. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败 (Seeder)", zap.Error(err))
		}
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
}
