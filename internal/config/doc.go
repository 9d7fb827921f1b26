// Package config loads studioboard's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/studioboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults per field
//
// # Default Values
//
//   - API endpoint: 127.0.0.1:8787
//   - Data file: none (records come from the API)
//   - Currency symbol: ₹
//   - Default dashboard tab: sales
//   - Start route: /
//   - Poll interval: 5 seconds
//   - Log file: ~/.local/state/studioboard/studioboard.log
//
// # TOML Format
//
//	api_bind = "127.0.0.1:8787"
//	data_file = "~/studio/clients.yaml"
//	currency_symbol = "₹"
//	default_tab = "sales"
//	start_route = "/sales-analytics"
//	poll_seconds = 5
//	log_file = "~/.local/state/studioboard/studioboard.log"
//
// Every field is optional. Tilde expansion is performed for data_file and
// log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
package config
