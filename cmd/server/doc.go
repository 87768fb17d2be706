// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

/*
Package main is the entry point for the Learnloop recommendation server.

Learnloop suggests long-form videos that help a user progress on their
learning goals. For each request it reads the user's goals from DuckDB,
asks a text-completion service (Gemini or Ollama) for three search terms,
searches YouTube for each term, and returns the merged results with
duplicates and already-watched videos removed.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("learnloop")
	├── DataSupervisor ("data-layer")
	│   └── DuckDB checkpoint service
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB with users, goals and watch history
 4. Pipeline: completion client, YouTube client, recommendation engine
 5. Authentication: JWT bearer tokens or no-auth mode
 6. Supervisor Tree: Suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	DUCKDB_PATH=/data/learnloop.duckdb
	SEED_DEMO_DATA=false

	AUTH_MODE=jwt                # jwt or none
	JWT_SECRET=<32+ chars>

	COMPLETION_PROVIDER=gemini   # gemini or ollama
	GEMINI_API_KEY=<key>
	OLLAMA_URL=http://localhost:11434
	YOUTUBE_API_KEY=<key>

# Endpoints

	GET /recommendations?userId=<id>   bearer token required in jwt mode
	GET /health/live
	GET /health/ready
	GET /metrics

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to 10 seconds and the database is checkpointed
on close.
*/
package main
