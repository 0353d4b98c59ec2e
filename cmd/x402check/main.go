// Command x402check validates x402 payment configuration documents.
//
// Usage:
//
//	x402check config.json
//	x402check --json '{"accepts": []}'
//	cat config.json | x402check --strict
//	x402check fetch https://api.example.com/reports
//	x402check serve --addr :8402
//	x402check mcp
//
// Exit status is 0 for a valid document, 1 for an invalid one, and 2
// when the document could not be read at all.
package main

import "os"

func main() {
	os.Exit(Execute())
}
