package config

// defaultEndpoints are the built-in fallback endpoint lists per network,
// carried over from original_source/src/client.rs's DEFAULT_MAINNET /
// DEFAULT_GOERLI / DEFAULT_SEPOLIA constants. They're used only when no
// config file is supplied and none is found at the default path — a
// config file's own network entries always take precedence once loaded.
var defaultEndpoints = map[Network][]string{
	Mainnet: {
		"https://checkpointz.pietjepuk.net",
		"https://mainnet-checkpoint-sync.stakely.io",
		"https://beaconstate.ethstaker.cc",
		"https://beaconstate.info",
		"https://mainnet.checkpoint.sigp.io",
		"https://sync-mainnet.beaconcha.in",
		"https://sync.invis.tools",
		"https://mainnet-checkpoint-sync.attestant.io",
	},
	Goerli: {
		"https://sync-goerli.beaconcha.in",
		"https://goerli.beaconstate.info",
		"https://prater-checkpoint-sync.stakely.io",
		"https://goerli.beaconstate.ethstaker.cc",
		"https://goerli-sync.invis.tools",
		"https://goerli.checkpoint-sync.ethdevops.io",
	},
	Sepolia: {
		"https://sepolia.beaconstate.info",
		"https://sepolia.checkpoint-sync.ethdevops.io",
	},
}

// DefaultEndpoints returns the built-in endpoint list for network.
func DefaultEndpoints(network Network) []string {
	return defaultEndpoints[network]
}
