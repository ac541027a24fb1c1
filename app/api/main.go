package main

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	gocrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/bnsapi/base/ctx"
	"github.com/x-xyz/bnsapi/base/database/mongoclient"
	"github.com/x-xyz/bnsapi/base/database/redisclient"
	"github.com/x-xyz/bnsapi/base/log"
	"github.com/x-xyz/bnsapi/base/metrics"
	bValidator "github.com/x-xyz/bnsapi/base/validator"
	"github.com/x-xyz/bnsapi/domain"
	"github.com/x-xyz/bnsapi/domain/bns"
	mmiddleware "github.com/x-xyz/bnsapi/middleware"
	"github.com/x-xyz/bnsapi/service/cache"
	compoundcache "github.com/x-xyz/bnsapi/service/cache/compoundCache"
	"github.com/x-xyz/bnsapi/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/bnsapi/service/cache/provider/redis"
	"github.com/x-xyz/bnsapi/service/ens"
	"github.com/x-xyz/bnsapi/service/redis"
	bns_delivery "github.com/x-xyz/bnsapi/stores/bns/delivery/http"
	bns_repository "github.com/x-xyz/bnsapi/stores/bns/repository"
	bns_usecase "github.com/x-xyz/bnsapi/stores/bns/usecase"
	hc_delivery "github.com/x-xyz/bnsapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/bnsapi/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/bnsapi/stores/healthcheck/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/bnsapi/app/api/docs"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "yaml config file")
	pflag.String("privatekey", "", "hex private key of the record signer")
	pflag.Int("ttl", 300, "seconds a forward lookup stays cached")
	pflag.String("ip", "127.0.0.1", "listen ip")
	pflag.Int("port", 8080, "listen port")
	pflag.String("json", "", "json file holding the name records")
	pflag.Bool("debug", false, "debug logging")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	// flags win over env, env wins over the config file
	for key, flag := range map[string]string{
		"signer.privateKey": "privatekey",
		"bns.ttl":           "ttl",
		"server.ip":         "ip",
		"server.port":       "port",
		"bns.json":          "json",
		"debug":             "debug",
	} {
		if f := pflag.Lookup(flag); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				panic(err)
			}
		}
	}
	for key, env := range map[string]string{
		"signer.privateKey": "PRIVATE_KEY",
		"bns.ttl":           "TTL",
		"server.ip":         "LISTEN_IP",
		"server.port":       "LISTEN_PORT",
		"bns.json":          "JSON_DB",
		"datadog_host":      "DATADOG_HOST",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			panic(err)
		}
	}

	if err := log.Init(viper.GetBool("debug")); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			BNS API
//	@version		1.0
//	@description	Forward and reverse lookup of Banano Name Service names.

// main
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	logSigner(context, viper.GetString("signer.privateKey"))

	namespace := viper.GetString("bns.domain")
	if namespace == "" {
		namespace = bns.DefaultDomain
	}

	// load name records
	context.Info("load name records")
	records, err := newRecordSource(context).Load(context)
	if err != nil {
		context.WithField("err", err).Panic("failed to load name records")
	}
	reverseIndex := bns_repository.NewReverseIndex(context, records, namespace, bns.CoinType())

	// init Redis service
	var redisService redis.Service
	if redisCacheURI := viper.GetString("redis_cache.uri"); redisCacheURI != "" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
			Retry:          true,
		})
		redisService = redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
	}

	recordRepo, err := newRecordRepo(context, records, redisService)
	if err != nil {
		context.WithField("err", err).Panic("failed to init record repo")
	}

	lookupUseCase := bns_usecase.NewLookup(&bns_usecase.LookupUseCaseCfg{
		RecordRepo:   recordRepo,
		ReverseIndex: reverseIndex,
		Domain:       namespace,
		Workers:      viper.GetInt("bns.batchWorkers"),
	})

	hcRepo := hc_repo.New(redisService)
	hcUseCase := hc_usecase.New(hcRepo, reverseIndex)

	responseCache := newCache(viper.GetInt("bns.ttl"), "httpCacheMiddleware", 64, redisService)

	hc_delivery.New(e, hcUseCase)
	bns_delivery.New(e, lookupUseCase, middL.CacheResponse(responseCache))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	address := net.JoinHostPort(viper.GetString("server.ip"), viper.GetString("server.port"))
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func newRecordSource(context ctx.Ctx) bns.RecordSource {
	switch source := viper.GetString("bns.source"); source {
	case "", "json":
		return bns_repository.NewJSONSource(viper.GetString("bns.json"))
	case "mongo":
		context.Info("init mongo")
		uri := viper.GetString("bns.mongo.uri")
		authDBName := viper.GetString("bns.mongo.authDBName")
		dbName := viper.GetString("bns.mongo.dbName")
		enableSSL := viper.GetBool("bns.mongo.enableSSL")
		mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, 2)
		return bns_repository.NewMongoSource(mongoClient, viper.GetString("bns.mongo.collection"))
	default:
		context.WithField("source", source).Panic("unknown record source")
		return nil
	}
}

// newRecordRepo answers forward lookups out of the loaded records, or out of ENS behind a cache
func newRecordRepo(context ctx.Ctx, records *bns.NameRecordMap, redisService redis.Service) (bns.RecordRepo, error) {
	switch backend := viper.GetString("bns.backend"); backend {
	case "", "store":
		return bns_repository.NewRecordRepo(records), nil
	case "ens":
		context.Info("init ens")
		return bns_repository.NewCachedRecordRepo(
			ens.New(viper.GetString("ens.rpcUrl"), viper.GetInt("ens.maxInFlight")),
			newCache(viper.GetInt("bns.ttl"), "bnsPfx", 64, redisService),
		), nil
	default:
		return nil, domain.ErrUnknownBackend
	}
}

// newCache is a local cache, backed by redis when one is configured
func newCache(ttlSeconds int, pfx string, localSizeMB int, redisService redis.Service) cache.Service {
	ttl := time.Duration(ttlSeconds) * time.Second
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   pfx,
			Cache: primitive.NewPrimitive(pfx, localSizeMB),
		}),
	}
	if redisService != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   pfx,
			Cache: redisCache.NewRedis(redisService),
		}))
	}
	return compoundcache.NewCompoundCache(layers)
}

// logSigner only reports the address the records are signed with, it isn't checked
func logSigner(context ctx.Ctx, privateKey string) {
	if privateKey == "" {
		context.Warn("no signer private key configured")
		return
	}

	key, err := gocrypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		context.WithField("err", err).Panic("failed to gocrypto.HexToECDSA")
	}
	context.WithField("signer", gocrypto.PubkeyToAddress(key.PublicKey).Hex()).Info("signer loaded")
}
