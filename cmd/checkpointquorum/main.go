package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethpandaops/checkpointquorum/pkg/api"
	"github.com/ethpandaops/checkpointquorum/pkg/checkpoint"
	"github.com/ethpandaops/checkpointquorum/pkg/config"
	"github.com/ethpandaops/checkpointquorum/pkg/human"
	"github.com/ethpandaops/checkpointquorum/pkg/metrics"
	"github.com/ethpandaops/checkpointquorum/pkg/presenter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var (
	endpointsPath string
	networkFlag   string
	slotFlag      string
	verbose       bool

	port              int
	probeIntervalFlag string
)

func main() {
	log := logrus.New()

	root := &cobra.Command{
		Use:   "checkpointquorum",
		Short: "Query several beacon-node endpoints and decide if they agree on the finalized checkpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(log)
		},
	}

	root.PersistentFlags().StringVarP(&endpointsPath, "endpoints", "e", config.DefaultConfigPath, "Path to config file where endpoints for network are listed")
	root.PersistentFlags().StringVar(&networkFlag, "network", "mainnet", "Network to query: mainnet, goerli, or sepolia")
	root.PersistentFlags().StringVar(&slotFlag, "slot", "finalized", `State id to query: "finalized" or a slot number`)
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Display verbose result or not")

	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Run in server mode, serving the classified result over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(log)
		},
	}

	serverCmd.Flags().IntVarP(&port, "port", "p", 7070, "Port for HTTP server")
	serverCmd.Flags().StringVar(&probeIntervalFlag, "probe-interval", "30s", "Interval between background endpoint reachability probes (e.g. 30s, 1m)")

	root.AddCommand(serverCmd)

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("checkpointquorum failed")
		os.Exit(1)
	}
}

func stateIDFromFlag() checkpoint.StateId {
	if slotFlag == "finalized" || slotFlag == "" {
		return checkpoint.Finalized()
	}

	slot := cast.ToUint64(slotFlag)

	return checkpoint.Slot(slot)
}

func runOnce(log logrus.FieldLogger) error {
	cfg, err := config.Load(endpointsPath)
	if err != nil {
		return err
	}

	network, err := config.ParseNetwork(networkFlag)
	if err != nil {
		return err
	}

	endpoints, err := cfg.Lookup(network)
	if err != nil {
		return err
	}

	transport := checkpoint.NewHTTPTransport(nil)
	client := checkpoint.NewClient(transport, endpoints)

	result := client.FetchFinalityCheckpoints(context.Background(), stateIDFromFlag())

	if verbose {
		presenter.RenderVerbose(os.Stdout, result)
	} else {
		presenter.RenderPlain(os.Stdout, result)
	}

	return nil
}

func runServer(log logrus.FieldLogger) error {
	cfg, err := config.Load(endpointsPath)
	if err != nil {
		return err
	}

	serverConfig := config.DefaultServerConfig()
	serverConfig.Port = port

	var probeInterval human.Duration
	if err := probeInterval.Unmarshal(probeIntervalFlag); err != nil {
		return fmt.Errorf("invalid --probe-interval %q: %w", probeIntervalFlag, err)
	}

	serverConfig.ProbeInterval = probeInterval

	transport := checkpoint.NewHTTPTransport(nil)
	m := metrics.New("checkpointquorum")

	clients := map[config.Network]*checkpoint.Client{}
	probers := map[config.Network]*checkpoint.Prober{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, network := range []config.Network{config.Mainnet, config.Goerli, config.Sepolia} {
		endpoints, err := cfg.Lookup(network)
		if err != nil {
			log.WithError(err).WithField("network", network).Debug("Network unavailable, skipping")

			continue
		}

		client := checkpoint.NewClient(transport, endpoints)
		clients[network] = client

		prober := checkpoint.NewProber(log, client, serverConfig.ProbeInterval.Duration)
		prober.OnProbeSucceeded(func(event *checkpoint.ProbeSucceededEvent) {
			m.ObserveProbe(event.Endpoint, "success", prober.Snapshot()[event.Endpoint])
		})
		prober.OnProbeFailed(func(event *checkpoint.ProbeFailedEvent) {
			m.ObserveProbe(event.Endpoint, "failure", prober.Snapshot()[event.Endpoint])
		})

		if err := prober.Start(ctx); err != nil {
			return fmt.Errorf("failed to start prober for %s: %w", network, err)
		}

		probers[network] = prober
	}

	if len(clients) == 0 {
		return checkpoint.NewEndpointsNotFoundError("no network has any configured endpoints")
	}

	healthSnapshot := func() map[string]bool {
		snapshot := map[string]bool{}

		for _, prober := range probers {
			for endpoint, healthy := range prober.Snapshot() {
				snapshot[endpoint] = healthy
			}
		}

		return snapshot
	}

	handler := api.NewHandler(log, func(network config.Network) (*checkpoint.Client, error) {
		client, ok := clients[network]
		if !ok {
			return nil, checkpoint.NewEndpointsNotFoundError(fmt.Sprintf("no endpoints configured for network %q", network))
		}

		return client, nil
	}, healthSnapshot, m)

	server := api.NewServer(log, serverConfig.Port, handler)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Start(sigCtx)
}
