package domain

const (
	// ZeroAddress is the Ethereum-style zero address used to signal "no receiver"
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// OneMillion is the denominator for cut-per-million fee rates
	OneMillion = 1_000_000

	// SecondsPerDay is the size of an analytics day bucket
	SecondsPerDay = 86400
)
