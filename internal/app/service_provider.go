package app

import (
	baccaratAPI "casino/internal/api/baccarat"
	blackjackAPI "casino/internal/api/blackjack"
	fairnessAPI "casino/internal/api/fairness"
	pinballAPI "casino/internal/api/pinball"
	rouletteAPI "casino/internal/api/roulette"
	sicboAPI "casino/internal/api/sicbo"
	slotsAPI "casino/internal/api/slots"
	uthAPI "casino/internal/api/uth"
	walletAPI "casino/internal/api/wallet"
	wheelAPI "casino/internal/api/wheel"
	"casino/internal/config"
	"casino/internal/config/env"
	"casino/internal/fairness"
	"casino/internal/logger"
	casinoMiddleware "casino/internal/middleware"
	"casino/internal/model"
	"casino/internal/repository"
	"casino/internal/repository/audit_repo"
	"casino/internal/repository/session_repo"
	"casino/internal/repository/stats_repo"
	"casino/internal/repository/wallet_repo"
	"casino/internal/service"
	"casino/internal/service/achievement"
	"casino/internal/service/baccarat"
	"casino/internal/service/blackjack"
	fairnessServ "casino/internal/service/fairness"
	"casino/internal/service/ledger"
	"casino/internal/service/pinball"
	"casino/internal/service/roulette"
	"casino/internal/service/round"
	"casino/internal/service/sicbo"
	"casino/internal/service/slots"
	"casino/internal/service/uth"
	"casino/internal/service/wheel"
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Размер окна RTP в раундах
const statsWindow = 1000

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logger
	loggerCfg config.LoggerConfig
	log       *zap.Logger

	// Ledger bits
	walletRepo repository.WalletRepository
	auditRepo  repository.AuditRepository
	ledgerServ service.LedgerService
	walletHand *walletAPI.Handler

	// Round bits
	seedSource *fairness.Source
	statsRepo  repository.StatsRepository
	reporter   service.AchievementReporter
	runner     *round.Runner

	// Single-shot games
	gamesCfg     config.GamesConfig
	wheelHand    *wheelAPI.Handler
	slotsHand    *slotsAPI.Handler
	sicboHand    *sicboAPI.Handler
	rouletteHand *rouletteAPI.Handler
	pinballHand  *pinballAPI.Handler
	baccaratHand *baccaratAPI.Handler

	// Session games
	sessionCfg     config.SessionConfig
	blackjackStore *session_repo.Store[*model.BlackjackSession]
	uthStore       *session_repo.Store[*model.UTHSession]
	blackjackHand  *blackjackAPI.Handler
	uthHand        *uthAPI.Handler

	// Fairness
	fairnessHand *fairnessAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	jwtCfg  config.JWTConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LoggerCfg().Env())
		if err != nil {
			panic("failed to create logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) WalletRepo(ctx context.Context) repository.WalletRepository {
	if sp.walletRepo == nil {
		sp.walletRepo = wallet_repo.NewWalletRepository(sp.DBClient(ctx))
	}
	return sp.walletRepo
}

func (sp *ServiceProvider) AuditRepo(ctx context.Context) repository.AuditRepository {
	if sp.auditRepo == nil {
		sp.auditRepo = audit_repo.NewAuditRepository(sp.DBClient(ctx))
	}
	return sp.auditRepo
}

func (sp *ServiceProvider) LedgerService(ctx context.Context) service.LedgerService {
	if sp.ledgerServ == nil {
		sp.ledgerServ = ledger.NewLedgerService(sp.WalletRepo(ctx), sp.AuditRepo(ctx), sp.TXManager(ctx), sp.Logger())
	}
	return sp.ledgerServ
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.LedgerService(ctx), Log: sp.Logger()})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) SeedSource() *fairness.Source {
	if sp.seedSource == nil {
		sp.seedSource = fairness.NewSource()
	}
	return sp.seedSource
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(statsWindow)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) AchievementReporter() service.AchievementReporter {
	if sp.reporter == nil {
		sp.reporter = achievement.NewAchievementService(sp.StatsRepository(), sp.Logger())
	}
	return sp.reporter
}

func (sp *ServiceProvider) Runner(ctx context.Context) *round.Runner {
	if sp.runner == nil {
		sp.runner = round.NewRunner(sp.SeedSource(), sp.LedgerService(ctx), sp.AchievementReporter(), sp.Logger())
	}
	return sp.runner
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfig()
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{
			Serv: wheel.NewWheelService(sp.GamesCfg().WheelSegments(), sp.Runner(ctx)),
			Log:  sp.Logger(),
		})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) SlotsHandler(ctx context.Context) *slotsAPI.Handler {
	if sp.slotsHand == nil {
		sp.slotsHand = slotsAPI.NewHandler(slotsAPI.HandlerDeps{
			Serv: slots.NewSlotsService(sp.GamesCfg().SlotStrips(), sp.Runner(ctx)),
			Log:  sp.Logger(),
		})
	}
	return sp.slotsHand
}

func (sp *ServiceProvider) SicBoHandler(ctx context.Context) *sicboAPI.Handler {
	if sp.sicboHand == nil {
		sp.sicboHand = sicboAPI.NewHandler(sicboAPI.HandlerDeps{
			Serv: sicbo.NewSicBoService(sp.Runner(ctx)),
			Log:  sp.Logger(),
		})
	}
	return sp.sicboHand
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: roulette.NewRouletteService(sp.Runner(ctx)),
			Log:  sp.Logger(),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) PinballHandler(ctx context.Context) *pinballAPI.Handler {
	if sp.pinballHand == nil {
		sp.pinballHand = pinballAPI.NewHandler(pinballAPI.HandlerDeps{
			Serv: pinball.NewPinballService(sp.GamesCfg().PinballReels(), sp.Runner(ctx)),
			Log:  sp.Logger(),
		})
	}
	return sp.pinballHand
}

func (sp *ServiceProvider) BaccaratHandler(ctx context.Context) *baccaratAPI.Handler {
	if sp.baccaratHand == nil {
		sp.baccaratHand = baccaratAPI.NewHandler(baccaratAPI.HandlerDeps{
			Serv: baccarat.NewBaccaratService(sp.Runner(ctx)),
			Log:  sp.Logger(),
		})
	}
	return sp.baccaratHand
}

func (sp *ServiceProvider) SessionCfg() config.SessionConfig {
	if sp.sessionCfg == nil {
		cfg, err := env.NewSessionConfig()
		if err != nil {
			panic("failed to get session config: " + err.Error())
		}
		sp.sessionCfg = cfg
	}
	return sp.sessionCfg
}

func (sp *ServiceProvider) BlackjackStore() *session_repo.Store[*model.BlackjackSession] {
	if sp.blackjackStore == nil {
		sp.blackjackStore = session_repo.NewStore[*model.BlackjackSession]()
	}
	return sp.blackjackStore
}

func (sp *ServiceProvider) UTHStore() *session_repo.Store[*model.UTHSession] {
	if sp.uthStore == nil {
		sp.uthStore = session_repo.NewStore[*model.UTHSession]()
	}
	return sp.uthStore
}

func (sp *ServiceProvider) BlackjackHandler(ctx context.Context) *blackjackAPI.Handler {
	if sp.blackjackHand == nil {
		sp.blackjackHand = blackjackAPI.NewHandler(blackjackAPI.HandlerDeps{
			Serv: blackjack.NewBlackjackService(sp.Runner(ctx), sp.BlackjackStore(), sp.Logger()),
			Log:  sp.Logger(),
		})
	}
	return sp.blackjackHand
}

func (sp *ServiceProvider) UTHHandler(ctx context.Context) *uthAPI.Handler {
	if sp.uthHand == nil {
		sp.uthHand = uthAPI.NewHandler(uthAPI.HandlerDeps{
			Serv: uth.NewUTHService(sp.Runner(ctx), sp.UTHStore(), sp.Logger()),
			Log:  sp.Logger(),
		})
	}
	return sp.uthHand
}

func (sp *ServiceProvider) FairnessHandler(ctx context.Context) *fairnessAPI.Handler {
	if sp.fairnessHand == nil {
		sp.fairnessHand = fairnessAPI.NewHandler(fairnessAPI.HandlerDeps{
			Serv: fairnessServ.NewFairnessService(sp.AuditRepo(ctx), sp.Logger()),
			Log:  sp.Logger(),
		})
	}
	return sp.fairnessHand
}

// RunSweepers удаляет брошенные сессии блэкджека и UTH до отмены ctx
func (sp *ServiceProvider) RunSweepers(ctx context.Context) {
	cfg := sp.SessionCfg()
	go sp.BlackjackStore().RunSweeper(ctx, model.GameBlackjack, cfg.SweepInterval(), cfg.TTL(), sp.Logger())
	go sp.UTHStore().RunSweeper(ctx, model.GameUTH, cfg.SweepInterval(), cfg.TTL(), sp.Logger())
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		compress, err := casinoMiddleware.Compress()
		if err != nil {
			panic("failed to create compression middleware: " + err.Error())
		}

		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(casinoMiddleware.Logger(sp.Logger()))
		r.Use(middleware.Recoverer)
		r.Use(compress)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		fairnessHandler := sp.FairnessHandler(ctx)
		r.Post("/fairness/verify", fairnessHandler.Verify)

		r.Group(func(rr chi.Router) {
			rr.Use(casinoMiddleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))

			rr.Post("/wheel/spin", sp.WheelHandler(ctx).Spin)
			rr.Post("/slots/spin", sp.SlotsHandler(ctx).Spin)
			rr.Post("/sicbo/roll", sp.SicBoHandler(ctx).Roll)
			rr.Post("/roulette/spin", sp.RouletteHandler(ctx).Spin)
			rr.Post("/pinball/play", sp.PinballHandler(ctx).Play)
			rr.Post("/baccarat/deal", sp.BaccaratHandler(ctx).Deal)

			// Blackjack endpoints
			blackjackHandler := sp.BlackjackHandler(ctx)
			rr.Route("/blackjack", func(br chi.Router) {
				br.Post("/deal", blackjackHandler.Deal)
				br.Get("/{sessionID}", blackjackHandler.Get)
				br.Post("/{sessionID}/{action}", blackjackHandler.Act)
			})

			// UTH endpoints
			uthHandler := sp.UTHHandler(ctx)
			rr.Route("/uth", func(ur chi.Router) {
				ur.Post("/deal", uthHandler.Deal)
				ur.Get("/{sessionID}", uthHandler.Get)
				ur.Post("/{sessionID}/{action}", uthHandler.Act)
			})

			walletHandler := sp.WalletHandler(ctx)
			rr.Route("/wallet", func(wr chi.Router) {
				wr.Get("/balance", walletHandler.Balance)
				wr.Post("/deposit", walletHandler.Deposit)
			})

			rr.Get("/fairness/rounds/{auditID}", fairnessHandler.Reveal)
		})

		sp.router = r
	}

	return sp.router
}
