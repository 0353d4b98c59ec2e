package x402check

import (
	"regexp"
	"strings"
)

// AddressFamily identifies the validation rule-set for a network's
// account identifiers.
type AddressFamily int

const (
	// FamilyUnknown represents a network whose address rules cannot be
	// determined.
	FamilyUnknown AddressFamily = iota
	// FamilyChecksummedHex represents EVM-style 0x-prefixed addresses
	// with EIP-55 mixed-case checksums.
	FamilyChecksummedHex
	// FamilyRawBase58 represents Solana-style base58 public keys, which
	// carry no checksum.
	FamilyRawBase58
)

// String returns the family name used in messages.
func (f AddressFamily) String() string {
	switch f {
	case FamilyChecksummedHex:
		return "checksummed-hex"
	case FamilyRawBase58:
		return "raw-base58"
	default:
		return "unknown"
	}
}

// NetworkInfo describes one registered network.
type NetworkInfo struct {
	// Name is the human-readable network name.
	Name string

	// Family is the address family used by accounts on the network.
	Family AddressFamily

	// Testnet reports whether the network is a test network.
	Testnet bool
}

// AssetInfo describes one known token on a network.
type AssetInfo struct {
	// Symbol is the token symbol (e.g., "USDC").
	Symbol string

	// Address is the token contract address or mint address.
	Address string

	// Decimals is the number of decimal places for the token.
	Decimals int
}

// RegistryConfig is the source data for a Registry. Maps are keyed by
// canonical namespace:reference network identifiers except Families,
// which is keyed by namespace alone.
type RegistryConfig struct {
	Networks map[string]NetworkInfo
	Assets   map[string][]AssetInfo
	Aliases  map[string]string
	Families map[string]AddressFamily
}

// Registry holds the known networks, their assets, and friendly
// aliases. A Registry is immutable after construction and safe for
// concurrent use from any number of goroutines.
type Registry struct {
	networks map[string]NetworkInfo
	assets   map[string][]AssetInfo
	aliases  map[string]string
	families map[string]AddressFamily
}

// NewRegistry builds a Registry from explicit tables. The input maps
// are copied; later changes to them do not affect the registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	r := &Registry{
		networks: make(map[string]NetworkInfo, len(cfg.Networks)),
		assets:   make(map[string][]AssetInfo, len(cfg.Assets)),
		aliases:  make(map[string]string, len(cfg.Aliases)),
		families: make(map[string]AddressFamily, len(cfg.Families)),
	}
	for id, info := range cfg.Networks {
		r.networks[id] = info
	}
	for id, assets := range cfg.Assets {
		r.assets[id] = append([]AssetInfo(nil), assets...)
	}
	for alias, id := range cfg.Aliases {
		r.aliases[alias] = id
	}
	for ns, family := range cfg.Families {
		r.families[ns] = family
	}
	return r
}

// Network looks up a canonical network identifier.
func (r *Registry) Network(id string) (NetworkInfo, bool) {
	info, ok := r.networks[id]
	return info, ok
}

// Assets returns the known tokens on a network. The returned slice must
// not be modified.
func (r *Registry) Assets(networkID string) []AssetInfo {
	return r.assets[networkID]
}

// Asset finds a known token on a network by its contract or mint
// address. Hex addresses match case-insensitively; base58 addresses are
// case-sensitive.
func (r *Registry) Asset(networkID, address string) (AssetInfo, bool) {
	for _, asset := range r.assets[networkID] {
		if asset.Address == address {
			return asset, true
		}
		if strings.HasPrefix(asset.Address, "0x") && strings.EqualFold(asset.Address, address) {
			return asset, true
		}
	}
	return AssetInfo{}, false
}

// ResolveAlias maps a friendly network name to its canonical
// identifier.
func (r *Registry) ResolveAlias(name string) (string, bool) {
	id, ok := r.aliases[name]
	return id, ok
}

// NamespaceFamily returns the address family associated with a network
// namespace, for validating addresses on networks the registry does not
// list.
func (r *Registry) NamespaceFamily(namespace string) (AddressFamily, bool) {
	family, ok := r.families[namespace]
	return family, ok
}

// networkIDPattern matches namespace:reference identifiers: a namespace
// of 3-16 lowercase letters or hyphens and a reference of 3-47
// alphanumerics or hyphens.
var networkIDPattern = regexp.MustCompile(`^[a-z-]{3,16}:[a-zA-Z0-9-]{3,47}$`)

// validNetworkID reports whether id satisfies the namespace:reference
// syntax.
func validNetworkID(id string) bool {
	return networkIDPattern.MatchString(id)
}

// Canonical network identifiers for the supported chains.
const (
	NetworkBase          = "eip155:8453"
	NetworkBaseSepolia   = "eip155:84532"
	NetworkPolygon       = "eip155:137"
	NetworkPolygonAmoy   = "eip155:80002"
	NetworkAvalanche     = "eip155:43114"
	NetworkAvalancheFuji = "eip155:43113"
	NetworkSolana        = "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp"
	NetworkSolanaDevnet  = "solana:EtWTRABZaYq6iMfeYKouRu166VU2xqa1"
)

// defaultRegistry holds the built-in network and asset tables. USDC
// addresses verified 2025-10-28 against Circle's published contract
// lists; Base Sepolia re-verified 2025-10-30 via on-chain contract read.
var defaultRegistry = NewRegistry(RegistryConfig{
	Networks: map[string]NetworkInfo{
		NetworkBase:          {Name: "Base", Family: FamilyChecksummedHex, Testnet: false},
		NetworkBaseSepolia:   {Name: "Base Sepolia", Family: FamilyChecksummedHex, Testnet: true},
		NetworkPolygon:       {Name: "Polygon", Family: FamilyChecksummedHex, Testnet: false},
		NetworkPolygonAmoy:   {Name: "Polygon Amoy", Family: FamilyChecksummedHex, Testnet: true},
		NetworkAvalanche:     {Name: "Avalanche", Family: FamilyChecksummedHex, Testnet: false},
		NetworkAvalancheFuji: {Name: "Avalanche Fuji", Family: FamilyChecksummedHex, Testnet: true},
		NetworkSolana:        {Name: "Solana", Family: FamilyRawBase58, Testnet: false},
		NetworkSolanaDevnet:  {Name: "Solana Devnet", Family: FamilyRawBase58, Testnet: true},
	},
	Assets: map[string][]AssetInfo{
		NetworkBase:          {{Symbol: "USDC", Address: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Decimals: 6}},
		NetworkBaseSepolia:   {{Symbol: "USDC", Address: "0x036CbD53842c5426634e7929541eC2318f3dCF7e", Decimals: 6}},
		NetworkPolygon:       {{Symbol: "USDC", Address: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", Decimals: 6}},
		NetworkPolygonAmoy:   {{Symbol: "USDC", Address: "0x41E94Eb019C0762f9Bfcf9Fb1E58725BfB0e7582", Decimals: 6}},
		NetworkAvalanche:     {{Symbol: "USDC", Address: "0xB97EF9Ef8734C71904D8002F8b6Bc66Dd9c48a6E", Decimals: 6}},
		NetworkAvalancheFuji: {{Symbol: "USDC", Address: "0x5425890298aed601595a70AB815c96711a31Bc65", Decimals: 6}},
		NetworkSolana:        {{Symbol: "USDC", Address: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", Decimals: 6}},
		NetworkSolanaDevnet:  {{Symbol: "USDC", Address: "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU", Decimals: 6}},
	},
	Aliases: map[string]string{
		"base":           NetworkBase,
		"base-sepolia":   NetworkBaseSepolia,
		"polygon":        NetworkPolygon,
		"polygon-amoy":   NetworkPolygonAmoy,
		"avalanche":      NetworkAvalanche,
		"avalanche-fuji": NetworkAvalancheFuji,
		"solana":         NetworkSolana,
		"solana-devnet":  NetworkSolanaDevnet,
	},
	Families: map[string]AddressFamily{
		"eip155": FamilyChecksummedHex,
		"solana": FamilyRawBase58,
	},
})

// DefaultRegistry returns the built-in registry of supported networks:
//
//   - EVM: Base, Base Sepolia, Polygon, Polygon Amoy, Avalanche, Avalanche Fuji
//   - SVM: Solana, Solana Devnet
//
// The registry is shared and read-only; use NewRegistry for custom
// tables.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
