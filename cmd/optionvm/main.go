// Copyright (C) 2022-2023, OptionVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/optionvm/optionvm/cmd/optionvm/version"
	"github.com/optionvm/optionvm/vm"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
}

var rootCmd = &cobra.Command{
	Use:        "optionvm",
	Short:      "OptionVM agent",
	SuggestFor: []string{"optionvm"},
	RunE:       runFunc,
}

func init() {
	cobra.EnablePrefixMatching = true
}

func init() {
	rootCmd.AddCommand(
		version.NewCommand(),
	)
	bindFlags(rootCmd.PersistentFlags())
}

func bindFlags(f *pflag.FlagSet) {
	f.String("http-addr", ":9090", "listen address for the JSON-RPC endpoint")
	f.String("genesis-file", "genesis.json", "genesis file path")
	f.String("config-file", "", "optional config file (overrides flag defaults)")
	f.Int("activity-cache-size", 0, "recent activity entries to retain (0 uses the default)")
	f.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "optionvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func runFunc(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if configFile := v.GetString("config-file"); len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
		log.Info("loaded config", "file", configFile)
	}

	genesisBytes, err := os.ReadFile(v.GetString("genesis-file"))
	if err != nil {
		return err
	}

	config := vm.Config{}
	config.SetDefaults()
	if s := v.GetInt("activity-cache-size"); s > 0 {
		config.ActivityCacheSize = s
	}

	// State lives in memory for a standalone agent. Deployments that embed
	// the vm package provide their own database.
	instance := vm.New(config)
	if err := instance.Initialize(memdb.New(), genesisBytes); err != nil {
		return err
	}

	handlers, err := instance.CreateHandlers()
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	for endpoint, handler := range handlers {
		mux.Handle(endpoint, handler)
	}

	httpAddr := v.GetString("http-addr")
	srv := &http.Server{
		Addr:    httpAddr,
		Handler: mux,
	}

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		log.Info("serving", "addr", httpAddr, "endpoint", vm.PublicEndpoint)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigs:
			log.Info("shutting down", "signal", sig)
		case <-gctx.Done():
			return gctx.Err()
		}

		ctx, cancel := context.WithTimeout(context.Background(), v.GetDuration("shutdown-timeout"))
		defer cancel()
		return srv.Shutdown(ctx)
	})

	serveErr := g.Wait()
	if err := instance.Shutdown(); err != nil {
		return err
	}
	return serveErr
}
