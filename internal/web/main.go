package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/config"
	fiberlogger "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/logger/adapter/fiber"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/storage"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/admin/dashboard"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/admin/profilesettings"
	adminprojects "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/admin/projects"
	adminskills "github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/admin/skills"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/home"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/login"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/logout"
	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/web/handler/project"
)

// CheckAlivePath is the load balancer health check endpoint. It reports 503
// once a graceful shutdown starts so the pod drops out of active targets.
const CheckAlivePath = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	store        storage.Store
}

// Start starts the web service on the configured address.
func (s *Service) Start(cfg *config.Config) error {
	var doneFiber = make(chan bool)

	addr := fmt.Sprintf("%s:%d", cfg.Webserver.Domain, cfg.Webserver.Port)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	// Wait interrupt or shutdown request through /shutdown
	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// checkAlive answers load balancer health checks.
func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendStatus(fiber.StatusOK)
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, store storage.Store) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if store == nil {
		panic("store cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
	// imageurl accepts both string map values and *string model fields
	templateEngine.AddFunc("imageurl", func(imagePath interface{}) string {
		var p string

		switch v := imagePath.(type) {
		case string:
			p = v
		case *string:
			if v != nil {
				p = *v
			}
		}

		if p == "" {
			return ""
		}

		return cfg.Storage.PublicBaseURL + "/" + p
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "GoPortfolio-Admin",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access log
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     false,
			},
		),
	)

	// serve uploaded images from disk; with minio the public URL points at the
	// bucket directly
	if cfg.Storage.Driver == config.StorageDriverDisk {
		app.Static(cfg.Storage.PublicBaseURL, cfg.Storage.Disk.Root)
	}

	// prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// admin auth middleware
	app.Use(AuthMiddleware)

	// init web service
	service := &Service{
		cfg:   cfg,
		App:   app,
		db:    db,
		store: store,
	}
	service.alive.Store(true)

	// load balancer health check
	app.Get(CheckAlivePath, service.checkAlive)

	// init handlers (they register their own routes)
	login.Handler.Init(app, cfg, db)
	logout.Handler.Init(app, cfg)
	home.Handler.Init(app, cfg, db)
	project.Handler.Init(app, cfg, db)
	dashboard.Handler.Init(app, cfg, db)
	adminprojects.Handler.Init(app, cfg, db, store)
	adminskills.Handler.Init(app, cfg, db)
	profilesettings.Handler.Init(app, cfg, db, store)

	return service
}
