// Package cli implements the bloglist subcommands.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bloglist/app/auth"
	"bloglist/app/config"
	"bloglist/app/repositories"
	"bloglist/app/routes"

	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// ErrUsage is returned when a command is invoked with bad arguments.
var ErrUsage = errors.New("invalid usage")

// Runner executes commands against one configuration.
type Runner struct {
	Config *config.Config
	Log    zerolog.Logger
	In     io.Reader
	Out    io.Writer
}

// Serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func (r *Runner) Serve(ctx context.Context) error {
	if err := r.Config.Validate(); err != nil {
		return err
	}

	store, err := repositories.Open(repositories.Options{
		Path:     r.Config.Database.Path,
		InMemory: r.Config.Database.InMemory,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	router := routes.SetupRoutes(routes.Dependencies{
		Store:        store,
		Tokens:       auth.NewJWTManager(r.Config.Auth.Secret, r.Config.Auth.TokenTTL),
		Log:          r.Log,
		ProtectReads: r.Config.Auth.ProtectReads,
	})

	srv := &http.Server{
		Addr:         r.Config.Server.Addr(),
		Handler:      router,
		ReadTimeout:  r.Config.Server.ReadTimeout,
		WriteTimeout: r.Config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Log.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	r.Log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// HandleDB dispatches the db subcommands
func (r *Runner) HandleDB(args []string) error {
	if len(args) < 1 {
		r.printDBHelp()
		return ErrUsage
	}

	switch args[0] {
	case "backup":
		dir := filepath.Join(filepath.Dir(r.Config.Database.Path), "backups")
		if len(args) > 1 {
			dir = args[1]
		}
		_, err := r.Backup(dir)
		return err
	case "restore":
		if len(args) < 2 {
			fmt.Fprintln(r.Out, "Error: backup file path required for restore")
			return ErrUsage
		}
		return r.Restore(args[1])
	case "clean":
		return r.Clean()
	case "help":
		r.printDBHelp()
		return nil
	default:
		fmt.Fprintf(r.Out, "Unknown db command: %s\n\n", args[0])
		r.printDBHelp()
		return ErrUsage
	}
}

func (r *Runner) printDBHelp() {
	fmt.Fprintln(r.Out, `Usage: bloglist db <command> [options]

Commands:
  backup [dir]     Write a backup of the database (default data/backups)
  restore <file>   Replace the database with a backup
  clean            Delete the database
  help             Display this help message`)
}

// Backup writes a backup file into dir and returns its path
func (r *Runner) Backup(dir string) (string, error) {
	path := r.Config.Database.Path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(r.Out, "No database exists to backup")
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	store, err := repositories.Open(repositories.Options{Path: path})
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	backupFile := filepath.Join(dir, fmt.Sprintf("backup_%d.db", time.Now().UnixNano()))
	f, err := os.Create(backupFile)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if err := store.Backup(f); err != nil {
		return "", err
	}

	r.Log.Info().Str("file", backupFile).Msg("database backed up")
	fmt.Fprintf(r.Out, "Database backed up successfully to %s\n", backupFile)
	return backupFile, nil
}

// Restore replaces the database with the contents of backupFile
func (r *Runner) Restore(backupFile string) error {
	if _, err := os.Stat(backupFile); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupFile)
	}

	path := r.Config.Database.Path
	if _, err := os.Stat(path); err == nil {
		if !r.confirm("Existing database found. Do you want to replace it? [y/N] ") {
			fmt.Fprintln(r.Out, "Operation cancelled")
			return nil
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := repositories.Open(repositories.Options{Path: path})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	if err := store.Restore(f); err != nil {
		return err
	}

	r.Log.Info().Str("file", backupFile).Msg("database restored")
	fmt.Fprintln(r.Out, "Database restored successfully")
	return nil
}

// Clean removes the database directory after confirmation
func (r *Runner) Clean() error {
	path := r.Config.Database.Path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(r.Out, "Database is already clean (does not exist)")
		return nil
	}

	if !r.confirm("Are you sure you want to clean the database? This cannot be undone. [y/N] ") {
		fmt.Fprintln(r.Out, "Operation cancelled")
		return nil
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to clean database: %w", err)
	}
	fmt.Fprintln(r.Out, "Database cleaned successfully")
	return nil
}

func (r *Runner) confirm(prompt string) bool {
	fmt.Fprint(r.Out, prompt)
	if r.In == nil {
		return false
	}
	line, _ := bufio.NewReader(r.In).ReadString('\n')
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}
