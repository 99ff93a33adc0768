// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation (X-API-Key) protecting the reconcile endpoints.
//   - RayID: assigns a Request ID (RayID) to every incoming request, stores it in
//     the context locals and echoes it in the X-Ray-ID response header.
//
// RayID is registered first so every log line of a request carries its id.
package middleware
