package deps

import (
	"carshare/internal/config"
	"carshare/internal/core/domain/car"
	dl "carshare/internal/core/domain/logging"
	drl "carshare/internal/core/domain/rate_limiter"
	"carshare/internal/core/domain/review"
	duow "carshare/internal/core/domain/unit_of_work"
	"carshare/internal/core/domain/user"
	dbcar "carshare/internal/db/car"
	dbreview "carshare/internal/db/review"
	uow "carshare/internal/db/unit_of_work"
	dbuser "carshare/internal/db/user"
	"carshare/internal/implementations/email"
	"carshare/internal/implementations/logging"
	passwordhasher "carshare/internal/implementations/password_hasher"
	passwordpolicy "carshare/internal/implementations/password_policy"
	randomstringgenerator "carshare/internal/implementations/random_string_generator"
	ratelimiter "carshare/internal/implementations/rate_limiter"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UnitOfWork            duow.UnitOfWork
	UserRepository        user.UserRepository
	SessionRepository     user.SessionRepository
	CoordinatesRepository user.CoordinatesRepository
	CarRepository         car.Repository
	ReviewRepository      review.Repository

	RateLimiter drl.RateLimiter

	PasswordHasher        user.PasswordHasher
	PasswordPolicy        user.PasswordPolicy
	SessionTokenGenerator user.SessionTokenGenerator
	ResetCodeGenerator    user.ResetCodeGenerator
	ResetCodeSender       user.ResetCodeSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.CoordinatesRepository = dbuser.NewPgxCoordinatesRepository(deps.DB)
	deps.CarRepository = dbcar.NewPgxRepository(deps.DB)
	deps.ReviewRepository = dbreview.NewPgxRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PasswordPolicy = passwordpolicy.NewPolicy()
	deps.SessionTokenGenerator = randomstringgenerator.NewGenerator()
	deps.ResetCodeGenerator = randomstringgenerator.NewGenerator()
	deps.ResetCodeSender = deps.initResetCodeSender()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initResetCodeSender() user.ResetCodeSender {
	if deps.Config.IsTestMode {
		return user.NewFakeResetCodeSender()
	}
	return email.NewResetCodeSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
	)
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
