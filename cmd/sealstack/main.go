package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sealstack/internal/assemble"
	"sealstack/internal/coherence"
	"sealstack/internal/config"
	"sealstack/internal/coordinate"
	"sealstack/internal/engine"
	"sealstack/internal/lexicon"
	"sealstack/internal/pattern"
	"sealstack/internal/server"
)

var (
	// Global flags
	configPath   string
	verbose      bool
	patternPaths []string
	noEmbedded   bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sealstack",
	Short: "sealstack - semantic coordinate pattern retrieval",
	Long: `sealstack addresses reusable code patterns by semantic coordinates of the
form L<layer>.Q<quadrant>.<LEXICON>.<ENTITY>[C<class>] across seven seal
layers, from IDENTITY (what a thing is) to FULFILLMENT (how it is verified).

Free-text queries are interpreted into per-layer tag sets, routed across all
seven layers, scored for coherence, and assembled into a single module with
{entity} placeholders filled in.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if len(patternPaths) > 0 {
			cfg.Patterns.Paths = append(cfg.Patterns.Paths, patternPaths...)
		}
		if noEmbedded {
			cfg.Patterns.DisableEmbedded = true
		}
		if verbose {
			cfg.Logging.Level = zapcore.DebugLevel.String()
		}

		logger, err = cfg.Logging.NewLogger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// loadEngine assembles the store from the embedded corpus plus any external
// tables and wraps it in the retrieval engine.
func loadEngine() (*engine.Engine, error) {
	var patterns []lexicon.Pattern

	if !cfg.Patterns.DisableEmbedded {
		embedded, err := lexicon.Embedded()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, embedded...)
	}

	external, err := lexicon.LoadPaths(cfg.Patterns.Paths)
	if err != nil {
		return nil, err
	}
	patterns = append(patterns, external...)

	store, err := pattern.Load(patterns)
	if err != nil {
		return nil, err
	}
	logger.Debug("pattern store loaded", zap.Int("patterns", store.Len()))

	return engine.New(store), nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP retrieval service",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, eng, logger).Run(ctx)
	},
}

var retrieveCmd = &cobra.Command{
	Use:   "retrieve [coordinate]",
	Short: "Fetch one pattern by its exact coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		p, err := eng.Retrieve(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s  %s\n", p.Coordinate, p.Title)
		fmt.Printf("layer: %d (%s)  tags: %s\n\n", p.Coordinate.Layer,
			p.Coordinate.Layer.Name(), strings.Join(p.Tags, ", "))
		fmt.Println(p.Body)
		return nil
	},
}

var (
	searchLayer   int
	searchLexicon string
	searchLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search patterns by free-text query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		opts := engine.SearchOptions{
			Layer:   coordinate.SealLayer(searchLayer),
			Lexicon: searchLexicon,
			Limit:   searchLimit,
		}
		if searchLayer != 0 && !opts.Layer.Valid() {
			return fmt.Errorf("layer %d out of range 1-7", searchLayer)
		}

		results := eng.Search(strings.Join(args, " "), opts)
		if len(results) == 0 {
			fmt.Println("no matching patterns")
			return nil
		}
		for _, p := range results {
			fmt.Printf("%-45s  L%d %-11s  %s\n", p.Coordinate, p.Coordinate.Layer,
				p.Coordinate.Layer.Name(), p.Title)
		}
		return nil
	},
}

var (
	buildCoordinate string
	buildEntity     string
)

var buildCmd = &cobra.Command{
	Use:   "build [query...]",
	Short: "Assemble a module from a query or an explicit coordinate",
	Long: `Routes the query across all seven seal layers and assembles the selected
patterns into one module. Missing layers are reported, not fatal; the module
only fails when no layer matches at all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		var mod *assemble.Module
		switch {
		case buildCoordinate != "":
			coord, err := coordinate.Parse(buildCoordinate)
			if err != nil {
				return err
			}
			mod, err = eng.BuildModuleAt(coord, buildEntity)
			if err != nil {
				return err
			}
		case len(args) > 0:
			mod, err = eng.BuildModule(strings.Join(args, " "))
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("provide a query or --coordinate")
		}

		fmt.Fprintf(os.Stderr, "entity: %s  coherence: %d/%d  completeness: %.0f%%\n\n",
			mod.Entity, mod.Coherence, coherence.MaxScore, mod.Completeness*100)
		fmt.Println(mod.Output)
		return nil
	},
}

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "List the seven seal layers and their pattern counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		counts := eng.Store().CountByLayer()
		for _, layer := range coordinate.Layers() {
			fmt.Printf("L%d %-12s %3d patterns   %s\n", layer, layer.Name(),
				counts[layer], layer.Description())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringSliceVarP(&patternPaths, "patterns", "p", nil, "Extra pattern table files (YAML)")
	rootCmd.PersistentFlags().BoolVar(&noEmbedded, "no-embedded", false, "Skip the built-in pattern corpus")

	searchCmd.Flags().IntVar(&searchLayer, "layer", 0, "Restrict to one seal layer (1-7)")
	searchCmd.Flags().StringVar(&searchLexicon, "lexicon", "", "Restrict to one lexicon namespace")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Cap the number of results")

	buildCmd.Flags().StringVar(&buildCoordinate, "coordinate", "", "Anchor on an exact coordinate instead of a query")
	buildCmd.Flags().StringVar(&buildEntity, "entity", "", "Entity name for placeholder substitution (with --coordinate)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(retrieveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(layersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
