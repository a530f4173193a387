package main

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/database"
	"Pulseboard/internal/pkg/logger"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/wire"
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configDir string
	cfg       *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pulsectl",
		Short:         "Operator tool for the Pulseboard analytics database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configDir)
			if err != nil {
				return err
			}
			logger.InitLogger(config.LogstashConfig{})
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "./configs", "directory containing config.yaml")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(platformsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, error) {
	dbCfg := cfg.DB
	return database.NewGormDB(&dbCfg)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema, including cascade foreign keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err = model.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func reconcileCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "reconcile-kpis",
		Short: "Recompute the Total Followers KPI of a date from follower snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, ok, err := util.ParseDate(date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}
			if !ok {
				day = util.Midnight(time.Now())
			}

			db, err := openDB()
			if err != nil {
				return err
			}
			// 重算后需要使缓存失效，Redis 可选
			if err = redis.InitRedis(cfg.Redis); err != nil {
				return err
			}
			app := wire.BuildServices(db, cfg)

			kpi, err := app.KpiSvc.ReconcileTotalFollowers(context.Background(), day)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(kpi)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date to reconcile (YYYY-MM-DD, default today in UTC)")
	return cmd
}

func platformsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "Inspect platforms",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List platforms with their latest follower counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			app := wire.BuildServices(db, cfg)

			stats, err := app.StatsSvc.GetPlatformStats(context.Background(), "")
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tICON\tCOLOR\tFOLLOWERS\tGROWTH")
			for _, p := range stats {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.2f%%\n", p.ID, p.Name, p.Icon, p.Color, p.Followers, p.Growth)
			}
			return w.Flush()
		},
	})
	return cmd
}
