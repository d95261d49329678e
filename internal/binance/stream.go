package binance

import "strings"

// DefaultBaseURL is the Binance combined-stream endpoint.
const DefaultBaseURL = "wss://stream.binance.com:9443/stream"

// tickerSuffix selects the 24hr ticker stream for a symbol.
const tickerSuffix = "@ticker"

// StreamURL builds the combined-stream subscription URL for the given
// symbols: one multiplexed connection carrying every symbol's ticker
// stream. Symbols are lower-cased per the exchange convention and joined
// with slashes.
func StreamURL(base string, symbols []string) string {
	streams := make([]string, 0, len(symbols))
	for _, s := range symbols {
		streams = append(streams, strings.ToLower(s)+tickerSuffix)
	}
	return base + "?streams=" + strings.Join(streams, "/")
}
