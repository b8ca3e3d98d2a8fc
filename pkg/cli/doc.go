// Package cli implements the command-line interface for the pizza tool.
//
// # Commands
//
// menu - Print the menu:
//
//	pizza menu [--format text|json|yaml|table] [--output FILE] [--emoji=false]
//
// The text format (default) prints the classic listing:
//
//	Menu:
//	 -Pizza Margherita🍅: tomato sauce, mozzarella, L, tomatoes
//	 -Pizza Pepperoni🍕: tomato sauce, mozzarella, L, pepperoni
//	 -Pizza Hawaiian🍍: tomato sauce, mozzarella, L, chicken, pineapples
//
// order - Order a pizza:
//
//	pizza order [--delivery] PIZZA
//
// Prints "Delivered in <seconds>s" with --delivery, otherwise
// "Picked up in <seconds>s".
//
// # Global Flags
//
//	--config      Config file (default: $HOME/.pizza.yaml or ./.pizza.yaml)
//	--log-level   Logging verbosity (debug, info, warn, error)
//	--metrics     Write Prometheus metrics to a file after the command runs
//	--help, -h    Show command help
//	--version, -v Show version information
//
// # Environment Variables
//
//	LOG_LEVEL         Set logging verbosity
//	PIZZA_FORMAT      Default menu format
//	PIZZA_EMOJI       Decorate labels with emoji (true/false)
//
// # Exit Codes
//
//	0  Success
//	1  Any error (unknown pizza, invalid arguments, unreadable config)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pizzeria/pizza/pkg/cli.version=1.0.0'"
package cli
