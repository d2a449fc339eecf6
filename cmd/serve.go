package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Leganyst/store-notes/internal/admin"
	"github.com/Leganyst/store-notes/internal/httpapi"
)

const (
	httpAddrFlag  = "http-addr"
	adminAddrFlag = "grpc-addr"

	shutdownTimeout = 10 * time.Second
)

var serveFlags = map[string]cobraflags.Flag{
	httpAddrFlag: &cobraflags.StringFlag{
		Name:  httpAddrFlag,
		Value: "",
		Usage: "HTTP listen address (overrides http.addr)",
	},
	adminAddrFlag: &cobraflags.StringFlag{
		Name:  adminAddrFlag,
		Value: "",
		Usage: "admin gRPC listen address (overrides admin.grpc_addr, empty disables)",
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the admin gRPC listener",
	RunE:  runServe,
}

func init() {
	cobraflags.RegisterMap(serveCmd, serveFlags)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed(httpAddrFlag) {
		cfg.HTTPAddr = serveFlags[httpAddrFlag].GetString()
	}
	if cmd.Flags().Changed(adminAddrFlag) {
		cfg.AdminAddr = serveFlags[adminAddrFlag].GetString()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(gormDB)

	svc, err := newServices(gormDB)
	if err != nil {
		return err
	}

	api := httpapi.NewAPI(httpapi.Services{
		Stores:     svc.stores,
		Categories: svc.categories,
		Contacts:   svc.contacts,
		Notes:      svc.notes,
		Reminders:  svc.reminders,
		Dashboard:  svc.dashboard,
	}, cfg.TimeZone, logger)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 2)

	var adminSrv *admin.Server
	if cfg.AdminAddr != "" {
		adminSrv, err = startAdmin(ctx, gormDB, errc)
		if err != nil {
			return err
		}
	}

	go func() {
		logger.Info("HTTP server listening", slog.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http serve: %w", err)
		}
	}()

	// Грейсфул-шатдаун по сигналу или при падении одного из серверов.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errc:
		logger.Error("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		logger.Warn("http shutdown", "error", serr)
	}
	if adminSrv != nil {
		adminSrv.Stop()
	}
	return err
}

// startAdmin поднимает health/reflection и переводит статус в SERVING после пинга БД.
func startAdmin(ctx context.Context, gormDB *gorm.DB, errc chan<- error) (*admin.Server, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("sql DB: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.AdminAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.AdminAddr, err)
	}

	srv := admin.NewServer(logger)
	go func() {
		if err := srv.Serve(lis); err != nil {
			errc <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.MarkReady(pingCtx, sqlDB); err != nil {
		// listener остаётся в NOT_SERVING, HTTP API всё равно поднимаем
		logger.Warn("admin health not ready", "error", err)
	}
	return srv, nil
}
