package main

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/server"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/app/service"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/config"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/logger"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/repository"
	"github.com/KodeVoid/CodeAlpha-url-shortener/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var s service.Storage

	if options.DatabaseDSN != "" {
		zapLogger.Info("using db storage")
		db := repository.InitDB(options.DatabaseDSN, zapLogger)
		defer db.Close()
		s = repository.CreateURLRepository(db, zapLogger)
		zapLogger.Info("Database connected and schema ready.")
	} else {
		zapLogger.Info("using in memory storage")

		mem, err := storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
		s = mem
	}

	gen, err := service.NewCodeGenerator(service.DefaultCodeLength)
	if err != nil {
		panic(err)
	}

	urlService := service.NewShortener(s, gen, zapLogger, options.BaseURL)
	r := server.Init(zapLogger, urlService)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:  autocert.DirCache("cache-dir"),
			Prompt: autocert.AcceptTOS,
		}
		if u, err := url.Parse(options.BaseURL); err == nil && u.Hostname() != "" {
			manager.HostPolicy = autocert.HostWhitelist(u.Hostname())
		}

		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", options.Port))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", options.Port))
		if err := http.ListenAndServe(options.Port, r); err != nil {
			panic(err)
		}
	}
}
