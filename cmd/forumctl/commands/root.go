// Package commands implements forumctl, a read-only query tool over the
// forum database.
package commands

import (
	"fmt"
	"os"

	"github.com/anonto42/qa-forum/backend/internal/repositories"
	"github.com/anonto42/qa-forum/backend/pkg/config"
	"github.com/anonto42/qa-forum/backend/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openDatabase is swapped out in tests.
var openDatabase = func(cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, func(), error) {
	db, err := config.InitDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return db.Conn, db.CloseDB, nil
}

// app holds the state shared by every subcommand of one invocation.
type app struct {
	dbPath     string
	jsonOutput bool
	verbose    bool

	repos *repositories.Repositories
	close func()
}

// newRootCmd builds the command tree on a. The caller releases the database
// with a.shutdown once Execute returns, whether or not the command failed.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forumctl",
		Short: "Query the Q&A forum database",
		Long: `forumctl runs the forum's read-only finders against the configured database.

The database is selected with FORUM_DATABASE_DRIVER, FORUM_DATABASE_PATH and
FORUM_DATABASE_DSN, or with --db for a sqlite file.

Examples:
  forumctl question 1
  forumctl user --fname Ada --lname Lovelace
  forumctl most-liked -n 5 --json`,
		SilenceUsage:      true,
		PersistentPreRunE: a.open,
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path of the sqlite database file")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every SQL statement")

	rootCmd.AddCommand(
		newQuestionCmd(a),
		newLikesCmd(a),
		newUserCmd(a),
		newKarmaCmd(a),
		newReplyCmd(a),
		newChildrenCmd(a),
		newMostFollowedCmd(a),
		newMostLikedCmd(a),
	)
	return rootCmd
}

func (a *app) open(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database.Driver = "sqlite"
		cfg.Database.Path = a.dbPath
	}

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	log := logger.New("development", level)

	db, closeFn, err := openDatabase(cfg.Database, log)
	if err != nil {
		return err
	}
	if a.verbose {
		db = db.Debug()
	}
	a.repos = repositories.NewRepositories(db)
	a.close = closeFn
	return nil
}

func (a *app) shutdown() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}

// Execute runs the root command
func Execute() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
