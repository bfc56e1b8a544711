package appcontext

import (
	"context"
	"fmt"
	"os"

	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ApplicationContext 集中建構與持有所有依賴，取代全域單例
// 測試可以自行組裝需要的部分，不必經過這裡
type ApplicationContext struct {
	Cf             *config.Config
	Logger         zerolog.Logger
	RedisClient    *redis.Client
	StateRepo      state_repo.IStateRepository
	CatalogService service.ICatalogService
	CartService    service.ICartService
	OrderService   service.IOrderService
	AuthService    service.IAuthService
	UserService    service.IUserService
	SessionService service.ISessionService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := &ApplicationContext{Cf: cf}
	if err := app.init(); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *ApplicationContext) init() error {
	app.setUpLogger()
	if err := app.setUpStateRepo(); err != nil {
		return err
	}
	app.setUpCatalogService()
	app.setUpStoreServices()
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	app.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("module", "storefront").
		Logger()
}

func (app *ApplicationContext) setUpStateRepo() error {
	app.Logger.Info().Str("addr", app.Cf.RedisAddr).Msg("setting up redis state repository")

	client := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
		DB:       app.Cf.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		// redis連不上就退回in-memory，單機demo仍可運作，只是不跨重啟
		app.Logger.Warn().Err(err).Msg("redis unavailable, falling back to in-memory session state")
		app.StateRepo = state_repo.NewMemStateRepo()
		return nil
	}

	app.RedisClient = client
	app.StateRepo = state_repo.NewRedisStateRepo(client, app.Cf.SessionTTL)
	return nil
}

func (app *ApplicationContext) setUpCatalogService() {
	app.Logger.Info().Str("base_url", app.Cf.CatalogBaseURL).Msg("setting up catalog service")
	client := catalog.NewClient(app.Cf.CatalogBaseURL)
	app.CatalogService = service.NewCatalogService(client, app.Cf.CatalogFreshFor)
}

func (app *ApplicationContext) setUpStoreServices() {
	app.CartService = service.NewCartService(app.StateRepo)
	app.OrderService = service.NewOrderService(app.StateRepo)
	app.AuthService = service.NewAuthService(app.StateRepo, app.Cf.AdminUsername, app.Cf.AdminPassword)
	app.UserService = service.NewUserService()
	app.SessionService = service.NewSessionService(app.StateRepo)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		if app.RedisClient != nil {
			app.Logger.Info().Msg("closing redis connection")
			if err := app.RedisClient.Close(); err != nil {
				done <- err
				return
			}
		}
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
