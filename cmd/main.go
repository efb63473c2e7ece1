package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/scriptmark/config"
	"github.com/lshigami/scriptmark/database"
	_ "github.com/lshigami/scriptmark/docs"
	adminctrl "github.com/lshigami/scriptmark/internal/controller/admin"
	gradingctrl "github.com/lshigami/scriptmark/internal/controller/grading"
	"github.com/lshigami/scriptmark/internal/gemini"
	"github.com/lshigami/scriptmark/internal/logger"
	"github.com/lshigami/scriptmark/internal/model"
	"github.com/lshigami/scriptmark/internal/ocr"
	"github.com/lshigami/scriptmark/internal/repository"
	"github.com/lshigami/scriptmark/internal/service"
	"github.com/lshigami/scriptmark/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ScriptMark Grading API
// @version 1.0
// @description Handwritten answer grading: OCR transcription, optional teacher correction and AI marking against a model answer.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			storage.NewBlobStore,
			gemini.NewClient,
			ocr.NewEngine,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewClassRepository,
			repository.NewStudentRepository,
			repository.NewMarkingPrincipleRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
		),

		// Services
		fx.Provide(
			service.NewClassService,
			service.NewStudentService,
			service.NewMarkingPrincipleService,
			service.NewTestService,
			service.NewQuestionService,
			service.NewTextExtractionService,
			service.NewGradingService,
			service.NewModelAnswerService,
			service.NewEvaluationService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewClassController,
			adminctrl.NewStudentController,
			adminctrl.NewMarkingPrincipleController,
			adminctrl.NewTestController,
			adminctrl.NewQuestionController,
			gradingctrl.NewAnswerController,
			gradingctrl.NewModelAnswerController,
			gradingctrl.NewMediaController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	// Credentials cannot be combined with a wildcard origin.
	if len(cfg.Server.AllowedOrigins) == 0 || cfg.Server.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts every controller and ties the HTTP
// server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	classCtrl *adminctrl.ClassController,
	studentCtrl *adminctrl.StudentController,
	principleCtrl *adminctrl.MarkingPrincipleController,
	testCtrl *adminctrl.TestController,
	questionCtrl *adminctrl.QuestionController,
	answerCtrl *gradingctrl.AnswerController,
	modelAnswerCtrl *gradingctrl.ModelAnswerController,
	mediaCtrl *gradingctrl.MediaController,
) {
	api := router.Group("/api")
	classCtrl.RegisterRoutes(api)
	studentCtrl.RegisterRoutes(api)
	principleCtrl.RegisterRoutes(api)
	testCtrl.RegisterRoutes(api)
	questionCtrl.RegisterRoutes(api)
	answerCtrl.RegisterRoutes(api)
	modelAnswerCtrl.RegisterRoutes(api)
	mediaCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Grading API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
