package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	"github.com/Andydrums87/bookabash-sub001/internal/observability"
	"github.com/Andydrums87/bookabash-sub001/internal/store/redis"
)

func newClassifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Persist a pricing model on every stored offering",
		Long: `classify walks the offering store and writes the keyword-derived pricing
model onto each offering that has none. Live quotes then use the stored model
and never re-read the free-text category.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			redisCfg := &config.RedisConfig{
				Addr:      v.GetString("redis-addr"),
				Password:  v.GetString("redis-password"),
				DB:        v.GetInt("redis-db"),
				KeyPrefix: v.GetString("redis-prefix"),
			}

			client, err := redis.NewClient(redisCfg)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := client.Close(); closeErr != nil {
					observability.FromContext(ctx).Warn("failed to close redis client", observability.Error(closeErr))
				}
			}()

			service := domain.NewQuoteService(redis.NewOfferingStore(client, redisCfg.KeyPrefix), nil)

			report, err := service.Reclassify(ctx, v.GetBool("force"), v.GetBool("dry-run"))
			if err != nil {
				return fmt.Errorf("reclassification failed: %w", err)
			}

			return writeJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().Bool("force", false, "reclassify offerings that already carry a model")
	cmd.Flags().Bool("dry-run", false, "report changes without writing them")
	cmd.Flags().String("redis-addr", "localhost:6379", "redis address")
	cmd.Flags().String("redis-password", "", "redis password")
	cmd.Flags().Int("redis-db", 0, "redis database")
	cmd.Flags().String("redis-prefix", "offering:", "offering key prefix")

	_ = v.BindPFlags(cmd.Flags())

	return cmd
}
