//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"errors"
	"flag"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/markkurossi/gmsm/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Config holds the server configuration read from the environment.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LogLevel     logrus.Level
	JSONLog      bool
}

func loadConfig() (*Config, error) {
	config := &Config{
		Addr:         ":8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		LogLevel:     logrus.InfoLevel,
	}
	if v := os.Getenv("SMSERVER_ADDR"); len(v) > 0 {
		config.Addr = v
	}
	if v := os.Getenv("SMSERVER_READ_TIMEOUT"); len(v) > 0 {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return nil, err
		}
		config.ReadTimeout = d
	}
	if v := os.Getenv("SMSERVER_WRITE_TIMEOUT"); len(v) > 0 {
		d, err := cast.ToDurationE(v)
		if err != nil {
			return nil, err
		}
		config.WriteTimeout = d
	}
	if v := os.Getenv("SMSERVER_LOG_LEVEL"); len(v) > 0 {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, err
		}
		config.LogLevel = level
	}
	if v := os.Getenv("SMSERVER_LOG_JSON"); len(v) > 0 {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return nil, err
		}
		config.JSONLog = b
	}
	return config, nil
}

func main() {
	envFile := flag.String("env", ".env", "dotenv `file` to load")
	flag.Parse()

	log := logrus.New()

	err := godotenv.Load(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("unable to load %s: %v", *envFile, err)
	}

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(config.LogLevel)
	if config.JSONLog {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	server := &http.Server{
		Addr:         config.Addr,
		Handler:      api.NewRouter(log),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
	log.WithField("addr", config.Addr).Info("listening")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
