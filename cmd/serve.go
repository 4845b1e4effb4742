package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if release, _ := cmd.Flags().GetBool("release"); release {
			gin.SetMode(gin.ReleaseMode)
		}

		var db *store.DB
		if noAnalytics, _ := cmd.Flags().GetBool("no-analytics"); !noAnalytics {
			db, err = store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()
			logging.Log.Infof("Visitor analytics stored in %s", cfg.DBPath)
		}

		if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
			logging.Log.Warn("Admin credentials not set. Set ADMIN_USERNAME and ADMIN_PASSWORD to enable the dashboard.")
		}

		srv, err := server.New(cfg, db, content.Default())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "Reload templates from template_dir when they change")
	serveCmd.Flags().Bool("release", false, "Run gin in release mode")
	serveCmd.Flags().Bool("no-analytics", false, "Disable visitor tracking and the admin numbers")

	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("watch_templates", serveCmd.Flags().Lookup("watch"))
}
