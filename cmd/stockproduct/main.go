package main

import (
	"fmt"
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SilvStei/QualityUseCase/stockproduct/internal/chaincode"
	"github.com/SilvStei/QualityUseCase/stockproduct/internal/config"
	"github.com/SilvStei/QualityUseCase/stockproduct/internal/contract"
	"github.com/SilvStei/QualityUseCase/stockproduct/internal/stockproduct"
	"github.com/SilvStei/QualityUseCase/stockproduct/pkg/logger"
)

var (
	configPath string
	mode       string
)

var rootCmd = &cobra.Command{
	Use:   "stockproduct",
	Short: "StockProduct chaincode for Hyperledger Fabric",
	Long: `Runs the StockProduct chaincode either launched by the peer or, when
CHAINCODE_SERVER_ADDRESS is set, as an external chaincode service.`,
	SilenceUsage: true,
	RunE:         runStart,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the chaincode",
	RunE:  runStart,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "dispatch mode: contract or shim (overrides CHAINCODE_MODE)")
	rootCmd.AddCommand(startCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stockproduct: %v\n", err)
		os.Exit(1)
	}
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Chaincode.Mode = mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	cc, err := buildChaincode(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to create chaincode", zap.Error(err))
		return err
	}

	appLogger.Info("starting chaincode",
		zap.String("mode", cfg.Chaincode.Mode),
		zap.String("version", cfg.Chaincode.Version),
		zap.String("address", cfg.Chaincode.ServerAddress),
	)

	if err := serve(cfg.Chaincode, cc); err != nil {
		appLogger.Error("chaincode stopped", zap.Error(err))
		return err
	}
	return nil
}

// buildChaincode wires the dispatcher into the binding selected by mode.
func buildChaincode(cfg *config.Config, base *zap.Logger) (shim.Chaincode, error) {
	handlers := stockproduct.NewHandlers(logger.Named(base, "handlers"))
	dispatcher := stockproduct.NewDispatcher(handlers, logger.Named(base, "dispatcher"))

	switch cfg.Chaincode.Mode {
	case config.ModeShim:
		return chaincode.New(dispatcher, logger.Named(base, "shim")), nil
	case config.ModeContract:
		return contract.New(dispatcher, cfg.Chaincode.Version, logger.Named(base, "contract"))
	default:
		return nil, fmt.Errorf("unknown chaincode mode %q", cfg.Chaincode.Mode)
	}
}

func serve(cfg config.Chaincode, cc shim.Chaincode) error {
	if cfg.ServerAddress == "" {
		return shim.Start(cc)
	}

	tls := shim.TLSProperties{Disabled: cfg.TLSDisabled}
	if !cfg.TLSDisabled {
		key, cert, clientCA, err := cfg.TLSMaterial()
		if err != nil {
			return err
		}
		tls.Key, tls.Cert, tls.ClientCACerts = key, cert, clientCA
	}

	server := &shim.ChaincodeServer{
		CCID:     cfg.ID,
		Address:  cfg.ServerAddress,
		CC:       cc,
		TLSProps: tls,
	}
	return server.Start()
}
