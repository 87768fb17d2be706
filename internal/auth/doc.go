// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

/*
Package auth provides bearer-token authentication for the HTTP API.

Tokens are HS256-signed JWTs issued by JWTManager. The subject claim holds
the user ID and the role claim is either "user" or "admin". Authenticate
rejects requests without a valid token with 401 and stores the claims in
the request context for handlers:

	claims := auth.GetClaims(r.Context())

With AUTH_MODE=none the middleware passes every request through without
claims. Handlers treat a nil claims value as unrestricted access.
*/
package auth
