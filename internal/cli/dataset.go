package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Domenick1991/aerolinea/config"
	"github.com/Domenick1991/aerolinea/internal/bootstrap"
	"github.com/Domenick1991/aerolinea/internal/cache"
	"github.com/Domenick1991/aerolinea/internal/domain"
)

func exportCmd(flags *storageFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, cleanup, err := flags.open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			ds, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(ds.Normalize())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Destination file, - for stdout")
	return cmd
}

func importCmd(flags *storageFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Replace the dataset with a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			var ds domain.Dataset
			if err := json.NewDecoder(in).Decode(&ds); err != nil {
				return fmt.Errorf("decode dataset: %w", err)
			}
			if err := ds.Check(); err != nil {
				return fmt.Errorf("refusing to import: %w", err)
			}

			cfg, err := flags.load()
			if err != nil {
				return err
			}
			repo, cleanup, err := bootstrap.NewDatasetRepository(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			lock, err := lockDataset(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer lock.release(cmd.ErrOrStderr())

			current, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !force && total(current) > 0 {
				return fmt.Errorf("target already holds %d records, use --force to overwrite", total(current))
			}

			if err := repo.Save(cmd.Context(), ds.Normalize()); err != nil {
				return err
			}
			if err := lock.invalidate(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cached dataset not cleared: %v\n", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records\n", total(&ds))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite a non-empty dataset")
	return cmd
}

func statsCmd(flags *storageFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count records per collection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, cleanup, err := flags.open(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			ds, err := repo.Load(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COLLECTION\tTOTAL\tACTIVE")
			for _, row := range collectionStats(ds) {
				fmt.Fprintf(w, "%s\t%d\t%d\n", row.name, row.total, row.active)
			}
			return w.Flush()
		},
	}
}

// datasetLock is held while the CLI replaces the dataset so running servers
// cannot interleave their own writes. Without redis it does nothing.
type datasetLock struct {
	cache *cache.RedisCache
}

func lockDataset(ctx context.Context, cfg *config.Config) (datasetLock, error) {
	if !cfg.Redis.Enabled() {
		return datasetLock{}, nil
	}
	c := cache.NewRedisCache(cfg.Redis, cfg.Storage.Dataset, cfg.Store.CacheTTL())
	ok, err := c.AcquireLock(ctx, cfg.Store.LockTTL())
	if err != nil {
		c.Close()
		return datasetLock{}, fmt.Errorf("acquire dataset lock: %w", err)
	}
	if !ok {
		c.Close()
		return datasetLock{}, errors.New("dataset is locked by another writer, try again")
	}
	return datasetLock{cache: c}, nil
}

// invalidate drops the dataset cached by running servers.
func (l datasetLock) invalidate(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.InvalidateDataset(ctx)
}

func (l datasetLock) release(stderr io.Writer) {
	if l.cache == nil {
		return
	}
	if err := l.cache.ReleaseLock(context.Background()); err != nil {
		fmt.Fprintf(stderr, "warning: release dataset lock: %v\n", err)
	}
	l.cache.Close()
}

type statRow struct {
	name   string
	total  int
	active int
}

// collectionStats counts records in their initial status as active.
func collectionStats(ds *domain.Dataset) []statRow {
	return []statRow{
		{"aerolineas", len(ds.Airlines), countWhere(ds.Airlines, func(a domain.Airline) bool { return a.Status == domain.StatusActive })},
		{"pasajeros", len(ds.Passengers), countWhere(ds.Passengers, func(p domain.Passenger) bool { return p.Status == domain.StatusActive })},
		{"aviones", len(ds.Airplanes), countWhere(ds.Airplanes, func(a domain.Airplane) bool { return a.Status == domain.AirplaneStatusAvailable })},
		{"vuelos", len(ds.Flights), countWhere(ds.Flights, func(f domain.Flight) bool { return f.Status == domain.StatusActive })},
		{"asientos", len(ds.Seats), countWhere(ds.Seats, func(s domain.Seat) bool { return s.Status == domain.SeatStatusUnreserved })},
		{"pagos", len(ds.Payments), countWhere(ds.Payments, func(p domain.Payment) bool { return p.Status == domain.StatusActive })},
		{"boletas", len(ds.Tickets), countWhere(ds.Tickets, func(t domain.Ticket) bool { return t.Status == domain.TicketStatusPurchased })},
	}
}

func countWhere[T any](items []T, match func(T) bool) int {
	n := 0
	for _, item := range items {
		if match(item) {
			n++
		}
	}
	return n
}

func total(ds *domain.Dataset) int {
	return len(ds.Airlines) + len(ds.Passengers) + len(ds.Airplanes) + len(ds.Flights) +
		len(ds.Seats) + len(ds.Payments) + len(ds.Tickets)
}
