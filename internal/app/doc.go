// Package app provides application initialization and lifecycle management.
// It wires configuration, logging, the analysis service, and the HTTP router
// together at startup and handles graceful shutdown.
//
// # Initialization Flow
//
// The typical initialization sequence:
//
//	1. Load configuration from environment and files
//	2. Initialize structured logging
//	3. Create the analysis service
//	4. Set up HTTP handlers and middleware
//	5. Configure and start the HTTP server
//	6. Set up graceful shutdown handlers
//
// # Graceful Shutdown
//
// Run handles SIGINT and SIGTERM and drains active requests within the
// configured shutdown timeout before exiting.
//
// # Error Handling
//
// All initialization errors are returned to the caller. The app does not
// call os.Exit() directly, allowing the main function to control the exit
// process.
package app
