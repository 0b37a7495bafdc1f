package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"wishlist/internal/db"
	jwtutil "wishlist/internal/jwt"
	"wishlist/internal/logger"
	"wishlist/internal/store"
)

func migrateCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			gdb, err := db.OpenAndMigrate(cfg.DBURL)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(gdb) }()

			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			v, err := db.MigrationVersion(sqlDB)
			if err != nil {
				return err
			}
			logger.L().Info("db.migrated", "version", v)
			return nil
		},
	}
}

func adminCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			gdb, err := db.Open(cfg.DBURL)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close(gdb) }()

			u, err := store.New(gdb).CreateUser(cmd.Context(), email, string(hash))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.ID)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "login email (required)")
	create.Flags().StringVar(&password, "password", "", "login password (required)")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}

func tokenCmd(load loader) *cobra.Command {
	var sub string
	c := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			t, err := jwtutil.New(cfg.JWTSecret, cfg.JWTTTL()).Create(sub)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	c.Flags().StringVar(&sub, "sub", "", "token subject (required)")
	_ = c.MarkFlagRequired("sub")
	return c
}
