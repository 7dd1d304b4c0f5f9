package initialize

import (
	"fmt"
	"net/http"

	"adboard/app/controllers"
	"adboard/app/db"
	jwtutil "adboard/app/jwt"
	"adboard/app/middleware"
	"adboard/app/models"
	"adboard/app/repo"
	"adboard/app/services"
	"adboard/app/validate"
	"adboard/config"
	"adboard/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App wires the whole service once at startup. Nothing here is global: the
// DB handle and every collaborator travel by constructor.
type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Users  *services.UserService
	Ads    *services.AdvertisementService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Advertisement{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	app, err := buildWithDB(cfg, gdb)
	if err != nil {
		return nil, err
	}

	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limit := middleware.RateLimit(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
		app.Router = limit(app.Router)
	}
	app.Router = middleware.Logging(app.Router)

	return app, nil
}

// buildWithDB assembles repositories, services, controllers and routes on
// an already-open handle. Tests use it with a throwaway sqlite database.
func buildWithDB(cfg *config.Config, gdb *gorm.DB) (*App, error) {
	v := validate.New()

	userRepo := repo.NewUserRepository(gdb)
	adRepo := repo.NewAdvertisementRepository(gdb)
	userSvc := services.NewUserService(gdb, userRepo, adRepo, v)
	adSvc := services.NewAdvertisementService(gdb, adRepo, v)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	adCtrl := controllers.NewAdvertisementController(adSvc)
	userCtrl := controllers.NewUserController(userSvc)
	authCtrl := controllers.NewAuthController(userSvc, signer)

	h := router.NewRouter(adCtrl, userCtrl, authCtrl, mw)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc, Ads: adSvc}, nil
}

// BuildForTest wires the app against the given handle, skipping config
// files, redis and the logging wrapper.
func BuildForTest(cfg *config.Config, gdb *gorm.DB) (*App, error) {
	if err := gdb.AutoMigrate(&models.User{}, &models.Advertisement{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return buildWithDB(cfg, gdb)
}

// Close releases the connection pool.
func (a *App) Close() error { return db.Close(a.DB) }
