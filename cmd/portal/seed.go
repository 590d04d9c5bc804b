package main

import (
	"github.com/spf13/cobra"

	"portal-berita/internal/service"
)

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the demo user and sample products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := a.openStore(ctx, a.cfg.Database.AutoMigrate)
			if err != nil {
				return err
			}
			defer st.Close()

			seeder := service.NewSeeder(st.users, st.products, service.BcryptHasher, a.logger)
			if err := seeder.Seed(ctx); err != nil {
				return err
			}
			a.logger.Info("database seeded")
			return nil
		},
	}
}
